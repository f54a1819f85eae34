package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/oarkflow/xid"

	"github.com/oarkflow/textlab/nlp/pipeline"
	"github.com/oarkflow/textlab/nlp/translate"
	"github.com/oarkflow/textlab/server/pkg/config"
	"github.com/oarkflow/textlab/server/pkg/handlers"
	"github.com/oarkflow/textlab/server/pkg/metrics"
	"github.com/oarkflow/textlab/server/pkg/views"
)

const shutdownTimeout = 10 * time.Second

// Server is the web front end and JSON API.
type Server struct {
	App *fiber.App

	cfg    config.Config
	logger *slog.Logger
	cache  *translate.Cache
}

// New wires the analyzer, the translator and the routes for cfg.
func New(cfg config.Config, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{cfg: cfg, logger: log}

	var (
		svc *translate.Service
		tr  translate.Translator
	)
	if cfg.Translate.Enabled {
		tr = translate.NewClient(cfg.Translate.ClientConfig())
		if cfg.Translate.CacheDSN != "" {
			cache, err := translate.OpenCache(cfg.Translate.CacheDSN)
			if err != nil {
				return nil, err
			}
			cache.OnHit = func() { metrics.AddCacheHits(1) }
			cache.Logger = log
			s.cache = cache
			tr = translate.Cached(tr, cache)
		}
		svc = translate.NewService(tr, log)
	}

	analyzer, err := pipeline.New(cfg.Analysis, pipeline.WithTranslator(tr), pipeline.WithLogger(log))
	if err != nil {
		s.Close()
		return nil, err
	}
	h, err := handlers.New(analyzer, svc, log)
	if err != nil {
		s.Close()
		return nil, err
	}

	if cfg.Server.BodyLimit == 0 {
		cfg.Server.BodyLimit = 1 << 20
	}
	app := fiber.New(fiber.Config{
		AppName:               cfg.Server.Name,
		ReadTimeout:           time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(cfg.Server.IdleTimeout) * time.Second,
		BodyLimit:             cfg.Server.BodyLimit,
		Views:                 views.Engine(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})

	for _, name := range cfg.GlobalMiddleware {
		mw, err := middleware(name, cfg.Server)
		if err != nil {
			s.Close()
			return nil, err
		}
		if mw != nil {
			app.Use(mw)
		}
	}
	if cfg.Server.HealthCheck.Enabled {
		path := cfg.Server.HealthCheck.Path
		if path == "" {
			path = "/health"
		}
		app.Get(path, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
		})
	}
	if cfg.Server.Metrics.Enabled {
		path := cfg.Server.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, metrics.Handler())
	}
	h.Register(app)

	s.App = app
	s.cfg = cfg
	return s, nil
}

// middleware builds a named global middleware. A nil handler means the
// middleware is disabled by configuration.
func middleware(name string, cfg config.Server) (fiber.Handler, error) {
	switch name {
	case "recover":
		return recover.New(), nil
	case "request_id":
		return requestid.New(requestid.Config{
			Generator: func() string {
				return xid.New().String()
			},
		}), nil
	case "logger":
		return logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}), nil
	case "compress":
		return compress.New(), nil
	case "cors":
		return cors.New(), nil
	case "ratelimit":
		if cfg.RateLimit <= 0 {
			return nil, nil
		}
		return limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: time.Minute,
			Next: func(c *fiber.Ctx) bool {
				return c.Method() == fiber.MethodGet
			},
		}), nil
	}
	return nil, fmt.Errorf("unsupported middleware: %s", name)
}

// Run listens until ctx is cancelled, then drains connections.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("address", s.cfg.Server.Address))
		errCh <- s.App.Listen(s.cfg.Server.Address)
	}()

	select {
	case err := <-errCh:
		s.Close()
		return err
	case <-ctx.Done():
	}
	s.logger.Info("draining server connections and shutting down")
	if err := s.App.ShutdownWithTimeout(shutdownTimeout); err != nil {
		s.logger.Warn("server shutdown timed out", slog.Any("error", err))
	}
	err := <-errCh
	s.Close()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close releases the translation cache.
func (s *Server) Close() error {
	if s.cache == nil {
		return nil
	}
	err := s.cache.Close()
	s.cache = nil
	return err
}
