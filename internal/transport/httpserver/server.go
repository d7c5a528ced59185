package httpserver

import (
	"net/http"
	"time"

	"chitfund-app-go/internal/config"
)

// New builds the API server. Read and write timeouts leave room for document
// uploads on top of the 30s handler timeout.
func New(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
