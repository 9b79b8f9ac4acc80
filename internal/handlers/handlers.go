package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/moktrading/tax-service/internal/service"
)

// ReadyCheck pings a named dependency for the readiness probe.
type ReadyCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// Handlers holds all HTTP handlers for the tax service.
type Handlers struct {
	quotes    *service.QuoteService
	readiness []ReadyCheck
	logger    *zap.Logger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(quotes *service.QuoteService, readiness []ReadyCheck, logger *zap.Logger) *Handlers {
	return &Handlers{
		quotes:    quotes,
		readiness: readiness,
		logger:    logger,
	}
}
