package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moktrading/tax-service/internal/config"
	"github.com/moktrading/tax-service/internal/handlers"
)

type Server struct {
	config *config.Config
	router *gin.Engine
	http   *http.Server
}

func New(h *handlers.Handlers, cfg *config.Config) *Server {
	router := gin.Default()

	s := &Server{
		config: cfg,
		router: router,
	}

	s.setupRoutes(h)

	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes(h *handlers.Handlers) {
	s.router.GET("/health", h.Health)
	s.router.GET("/ready", h.Ready)
	s.router.GET("/live", h.Live)
	s.router.GET("/version", h.Version)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/tax/quote", h.QuoteCart)
		v1.POST("/tax/item", h.QuoteItem)
		v1.GET("/tax/jurisdictions", h.ListJurisdictions)
		v1.GET("/tax/jurisdictions/:code", h.GetJurisdiction)
	}
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
