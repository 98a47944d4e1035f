package http

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/woophysics/lessons/internal/config"
	"github.com/woophysics/lessons/internal/lesson"
	"github.com/woophysics/lessons/internal/logging"
	"github.com/woophysics/lessons/internal/metrics"
	"github.com/woophysics/lessons/internal/ratelimit"
)

// QuizBinary is the compiled quiz host expected under ASSETS_DIR.
const QuizBinary = "formative.wasm"

type Deps struct {
	Config  config.Config
	Log     *zap.Logger
	Catalog *lesson.Catalog
	Metrics *metrics.HTTP
	Limiter *ratelimit.PerIP
}

// NewRouter wires the site routes and middleware.
func NewRouter(d Deps) (http.Handler, error) {
	pages, err := NewPages(d.Catalog, d.Log)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, logging.RequestLogger(d.Log), middleware.Recoverer)
	r.Use(d.Metrics.Middleware)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.Config.CORSOrigins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", ReadyHandler(d.Config.AssetsDir))
	r.Handle("/metrics", d.Metrics.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(d.Limiter.Middleware)

		pr.Get("/", pages.Landing())
		pr.Get("/topics", pages.Topics())
		pr.Get("/lesson/{slug}", pages.Lesson())

		pr.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(StaticFS()))))
		pr.Handle("/wasm/*", http.StripPrefix("/wasm/", http.FileServer(http.Dir(d.Config.AssetsDir))))
	})
	return r, nil
}

// ReadyHandler reports ready once the quiz host binary is in place.
func ReadyHandler(assetsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(filepath.Join(assetsDir, QuizBinary)); err != nil {
			http.Error(w, "quiz host not built", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
