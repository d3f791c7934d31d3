// Package server serves projections over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/etnz/equity"
	"github.com/etnz/equity/logger"
)

// Handler serves the projection endpoints. Request bodies are scenarios
// completed with the defaults.
type Handler struct {
	defaults equity.Scenario
}

// NewHandler returns a handler completing requests with defaults.
func NewHandler(defaults equity.Scenario) *Handler {
	return &Handler{defaults: defaults}
}

// NewRouter returns the routes of h, with recovery and request logging.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogging())

	r.GET("/healthz", h.Health)
	v1 := r.Group("/v1")
	v1.GET("/scenarios/default", h.DefaultScenario)
	v1.POST("/projections", h.Project)
	v1.POST("/sweeps", h.Sweep)
	v1.POST("/charts", h.Charts)
	return r
}

// Run serves handler on addr until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Get().Infow("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("cannot serve on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
