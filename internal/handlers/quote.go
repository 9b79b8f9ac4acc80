package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moktrading/tax-service/internal/repository"
	"github.com/moktrading/tax-service/internal/service"
)

// QuoteCartRequest asks for a tax quote on a cart shipped to a state.
type QuoteCartRequest struct {
	State string              `json:"state" binding:"required"`
	Items []service.QuoteItem `json:"items" binding:"required,min=1,dive"`
}

// QuoteItemRequest asks for a tax breakdown on a single product.
type QuoteItemRequest struct {
	State     string `json:"state" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

// QuoteCart handles POST /api/v1/tax/quote.
func (h *Handlers) QuoteCart(c *gin.Context) {
	var req QuoteCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summary, err := h.quotes.QuoteCart(c.Request.Context(), req.State, req.Items)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to quote cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate tax"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// QuoteItem handles POST /api/v1/tax/item.
func (h *Handlers) QuoteItem(c *gin.Context) {
	var req QuoteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	breakdown, err := h.quotes.QuoteItem(c.Request.Context(), req.ProductID, req.State, req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to quote item",
			zap.String("product_id", req.ProductID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate tax"})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}
