package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetJurisdiction handles GET /api/v1/tax/jurisdictions/:code.
func (h *Handlers) GetJurisdiction(c *gin.Context) {
	code := c.Param("code")

	summary, ok := h.quotes.JurisdictionSummary(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "jurisdiction not found"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListJurisdictions handles GET /api/v1/tax/jurisdictions.
func (h *Handlers) ListJurisdictions(c *gin.Context) {
	summaries := h.quotes.AllJurisdictions()

	c.JSON(http.StatusOK, gin.H{
		"jurisdictions": summaries,
		"count":         len(summaries),
	})
}
