// Package web serves the task list as a small HTML application on a local
// address. All state changes go through the task store; the page is drawn
// from the store's Snapshot renderer.
package web

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"todo/internal/logger"
	"todo/internal/render"
	"todo/internal/task"
)

// ShutdownTimeout bounds graceful shutdown after the context is cancelled.
const ShutdownTimeout = 5 * time.Second

// Server is the browser front end for a task store.
type Server struct {
	app   *fiber.App
	store *task.Store
	snap  *render.Snapshot
	log   *logger.Logger
}

// New creates a Server. snap must be the renderer store was built with.
func New(store *task.Store, snap *render.Snapshot, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{
		store: store,
		snap:  snap,
		log:   log,
	}

	s.app = fiber.New(fiber.Config{
		ErrorHandler:          s.errorHandler,
		DisableStartupMessage: true,
		// form values and params end up in the store and outlive the request
		Immutable:             true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
	})
	s.app.Use(recover.New())
	s.app.Use(s.accessLog)

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/", s.page)
	s.app.Get("/api/tasks", s.apiTasks)
	s.app.Post("/tasks", s.add)
	s.app.Post("/tasks/:id/toggle", s.toggle)
	s.app.Post("/tasks/:id/delete", s.delete)

	return s
}

// App exposes the fiber app, e.g. for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// ListenAndServe binds addr and serves until ctx is cancelled. A bind
// failure is returned before anything is served.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down and waits for
// the serving goroutine to exit.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()
	s.log.Infow("web ui listening", "addr", "http://"+ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Infow("shutting down web ui")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	shutdownErr := s.app.ShutdownWithContext(shutdownCtx)
	// Shutdown only closes listeners the server has registered; close ours
	// in case the goroutine had not reached it yet.
	_ = ln.Close()

	if err := <-errCh; err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return shutdownErr
}

func (s *Server) page(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := render.WritePage(&buf, s.snap.View()); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (s *Server) apiTasks(c *fiber.Ctx) error {
	v := s.snap.View()
	if v.Items == nil {
		v.Items = []render.Item{}
	}
	return c.JSON(v)
}

func (s *Server) add(c *fiber.Ctx) error {
	t, added, err := s.store.Add(c.FormValue("text"))
	if err != nil {
		return err
	}
	if added {
		s.log.Debugw("task_added", "id", t.ID)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) toggle(c *fiber.Ctx) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}
	if _, err := s.store.Toggle(id); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) delete(c *fiber.Ctx) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}
	if _, err := s.store.Delete(id); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// taskID decodes the :id segment. The page path-escapes ids, so ids with
// spaces, slashes or non-ASCII text arrive percent-encoded.
func taskID(c *fiber.Ctx) (string, error) {
	id, err := url.PathUnescape(c.Params("id"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid task id")
	}
	return id, nil
}

func (s *Server) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.log.Infow("http_access",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return err
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.Errorw("request_failed", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
