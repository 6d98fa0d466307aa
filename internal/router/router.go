package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "breeder-album/docs"
	cache "breeder-album/internal/adapters/storage/cached"
	mem "breeder-album/internal/adapters/storage/memory"
	pg "breeder-album/internal/adapters/storage/postgres"
	"breeder-album/internal/domain/breeders"
	"breeder-album/internal/domain/events"
	"breeder-album/internal/domain/familytree"
	"breeder-album/internal/domain/series"
	"breeder-album/internal/middleware"
)

type Options struct {
	Logger zerolog.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Logger))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	r.Use(middleware.NewHTTPMetrics(reg).Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		breederRepo breeders.Repository
		eventRepo   events.Repository
		seriesRepo  series.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				opts.Logger.Warn().Err(err).Msg("DB_DSN set but connection failed, falling back to in-memory")
			}
		}
	}

	if db != nil {
		breederRepo = pg.NewBreedersRepo(db)
		eventRepo = pg.NewEventsRepo(db)
		seriesRepo = pg.NewSeriesRepo(db)
	} else {
		breederRepo = mem.NewBreederRepo()
		eventRepo = mem.NewEventRepo()
		seriesRepo = mem.NewSeriesRepo()
	}

	// El armado de árboles martilla GetByID/GetByCode con los mismos códigos;
	// el decorador LRU los sirve de memoria y se invalida en cada alta/edición.
	if cached, err := cache.NewBreedersRepo(breederRepo, 0); err == nil {
		breederRepo = cached
	}

	// Services por módulo
	breedersSvc := breeders.NewService(breederRepo)
	eventsSvc := events.NewService(eventRepo, breederRepo)
	seriesSvc := series.NewService(seriesRepo)
	treeBuilder := familytree.NewBuilder(breederRepo)

	// Rutas por módulo
	breeders.RegisterRoutes(r, breedersSvc)
	events.RegisterRoutes(r, eventsSvc)
	familytree.RegisterRoutes(r, treeBuilder)
	series.RegisterRoutes(r, seriesSvc)

	return r
}
