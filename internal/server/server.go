package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// HTTPServer owns the listening http.Server.
type HTTPServer struct {
	httpServer *http.Server
}

// NewHTTPServer builds a server for handler on addr.
func NewHTTPServer(addr string, handler http.Handler, readTimeout time.Duration) HTTPServer {
	handler = http.TimeoutHandler(handler, 5*time.Second, "unavailable")
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readTimeout,
		IdleTimeout:       30 * time.Second,
	}
	return HTTPServer{s}
}

// Run serves until Close. stopFn is called when serving ends for any reason,
// so a listen failure takes the process down; the failure is passed as the
// cause, a clean Close passes nil.
func (s HTTPServer) Run(stopFn context.CancelCauseFunc) {
	const op = "HTTPServer.Run"
	log := slog.With("op", op)

	log.Info("listening", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		stopFn(nil)
		return
	}
	log.Error("unexpected server shutdown", "err", err)
	stopFn(fmt.Errorf("serve %s: %w", s.httpServer.Addr, err))
}

// Close shuts the server down gracefully within ctx.
func (s HTTPServer) Close(ctx context.Context) {
	const op = "HTTPServer.Close"
	log := slog.With("op", op)

	log.Info("closing http server...")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		log.Error("failed to shutdown gracefully", "err", err)
	}
	log.Info("http server is closed")
}
