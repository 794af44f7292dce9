// Package preview serves a generated archive over local HTTP so it can be
// checked in a browser before deployment. It serves the site under the same
// base path the production host would, so every absolute link behaves the
// way it will once published.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"keepsake/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server serves a generated site directory.
type Server struct {
	echo     *echo.Echo
	bind     string
	basePath string
	logger   *slog.Logger
}

// New builds a preview server for the site at dir, served under basePath.
func New(dir, basePath, bind string, logger *slog.Logger) *Server {
	log := logging.NewComponentLogger(logger, "preview")

	if basePath == "" {
		basePath = "/"
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))

	if prefix := strings.TrimSuffix(basePath, "/"); prefix == "" {
		e.Static("/", dir)
	} else {
		e.Static(prefix, dir)
		e.GET(prefix, func(c echo.Context) error {
			return c.Redirect(http.StatusMovedPermanently, basePath)
		})
		// The site lives under a prefix; send the bare root there too.
		e.GET("/", func(c echo.Context) error {
			return c.Redirect(http.StatusFound, basePath)
		})
	}

	return &Server{echo: e, bind: bind, basePath: basePath, logger: log}
}

// Handler exposes the underlying handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until ctx is canceled, then shuts the server down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(s.bind)
	}()

	s.logger.Info("preview server listening",
		logging.String("bind", s.bind),
		logging.String("base_path", s.basePath))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve preview: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown preview server: %w", err)
	}
	s.logger.Info("preview server stopped")
	return nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Commit the error response so the logged status is the
				// one the client saw.
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			attrs := []logging.Attr{
				logging.String("method", req.Method),
				logging.String("path", req.URL.Path),
				logging.Int("status", res.Status),
				logging.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			switch {
			case res.Status >= 500:
				logger.Error("request completed", logging.Args(attrs...)...)
			case res.Status >= 400:
				logger.Warn("request completed", logging.Args(attrs...)...)
			default:
				logger.Debug("request completed", logging.Args(attrs...)...)
			}
			return err
		}
	}
}
