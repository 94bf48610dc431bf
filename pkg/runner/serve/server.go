// Package serve exposes the timetable as a read-only JSON API.
package serve

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/store"
)

// Server runs the HTTP API.
type Server struct {
	Service *app.Service
	// Addr is the listen address, host:port.
	Addr string
	// Watch reloads the document when its file changes.
	Watch bool
	// AllowOrigins is the CORS origin list, "*" when empty.
	AllowOrigins string
	// RateLimit is requests per minute per client on /api. Zero disables it.
	RateLimit int
	// AccessLog receives one line per request. Defaults to stderr.
	AccessLog io.Writer
	// OnListening is called with the bound address once the listener is up.
	OnListening func(net.Addr)
}

// App builds the fiber app with all routes mounted.
func (s *Server) App() *fiber.App {
	a := fiber.New(fiber.Config{
		AppName:               "jadwal",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})
	a.Use(recovery())
	a.Use(requestID())
	a.Use(accessLog(s.AccessLog))
	a.Use(corsFor(s.AllowOrigins))
	for _, h := range performance() {
		a.Use(h)
	}

	h := newHandlers(s.Service)
	a.Get("/health", h.health)

	api := a.Group("/api", rateLimit(s.RateLimit))
	api.Get("/summary", h.summary)
	api.Get("/teachers", h.teachers)
	api.Get("/teachers/:id", h.teacher)
	api.Get("/classrooms", h.classRooms)
	api.Get("/subjects", h.subjects)
	api.Get("/timetable", h.grid)
	api.Get("/timetable/cell", h.cell)
	api.Get("/options", h.options)
	return a
}

// Do serves until ctx is done, then shuts down gracefully.
func (s *Server) Do(ctx context.Context) error {
	if s.Service == nil || s.Service.Catalog == nil {
		return errors.New("serve: no catalog configured")
	}
	addr := s.Addr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	if s.Watch {
		events, err := s.Service.Watch(ctx)
		if err != nil {
			return err
		}
		go logEvents(events)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if s.OnListening != nil {
		s.OnListening(ln.Addr())
	}

	a := s.App()
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Listener(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.ShutdownWithContext(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func logEvents(events <-chan store.Event) {
	for ev := range events {
		switch ev.Type {
		case store.EventReloaded:
			slog.Info("serve: timetable reloaded")
		case store.EventFailed:
			slog.Error("serve: timetable reload failed", "error", ev.Err)
		}
	}
}
