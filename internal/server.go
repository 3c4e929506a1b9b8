package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/stridecoach/backend/internal/config"
	"github.com/stridecoach/backend/internal/db"
	"github.com/stridecoach/backend/internal/injuries"
	injuriesmcp "github.com/stridecoach/backend/internal/injuries/mcp"
	"github.com/stridecoach/backend/internal/middleware"
	"github.com/stridecoach/backend/internal/recommend"
	"github.com/stridecoach/backend/internal/telemetry/metrics"
	"github.com/stridecoach/backend/internal/telemetry/tracing"
	"github.com/stridecoach/backend/internal/training"
	"github.com/stridecoach/backend/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	injuriesService  *injuries.Service
	injuriesAnalyzer *injuries.Analyzer
	loadEvaluator    *training.Evaluator

	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("coach", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "coach-backend")
	if err != nil {
		return nil, err
	}

	injuriesRepo := injuries.NewRepo(dbPool)
	trainingRepo := training.NewRepo(dbPool)

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		injuriesService:  injuries.NewService(injuriesRepo),
		injuriesAnalyzer: injuries.NewAnalyzer(injuriesRepo),
		loadEvaluator: training.NewEvaluator(trainingRepo, training.Config{
			LookbackDays:    params.Config.TrainingLoadLookbackDays,
			MinCompleted:    params.Config.FatigueMinCompletedCount,
			MinHardSessions: params.Config.FatigueMinHardSessionCount,
		}),

		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	injuriesHandler := injuries.NewHandler(s.injuriesService, s.injuriesAnalyzer, s.metricsManager)

	injuriesRouter := r.PathPrefix("/users/{userId}/injuries").Subrouter()
	injuriesRouter.HandleFunc("", injuriesHandler.HandleReport).Methods("POST", "OPTIONS").Name("report-injury")
	injuriesRouter.HandleFunc("/active", injuriesHandler.HandleActive).Methods("GET", "OPTIONS").Name("active-injuries")
	injuriesRouter.HandleFunc("/history", injuriesHandler.HandleHistory).Methods("GET", "OPTIONS").Name("injury-history")
	injuriesRouter.HandleFunc("/{id}", injuriesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-injury")
	injuriesRouter.HandleFunc("/{id}", injuriesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-injury")
	injuriesRouter.HandleFunc("/{id}/updates", injuriesHandler.HandleAppendUpdate).Methods("POST", "OPTIONS").Name("update-injury")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	injuriesRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		"injuries",
		s.config.InjuryWriteRateLimitPerMin,
		s.metricsManager,
	))

	constraintsHandler := recommend.NewHandler(s.injuriesService, s.loadEvaluator)
	r.HandleFunc("/users/{userId}/workout-constraints", constraintsHandler.HandleGet).
		Methods("GET", "OPTIONS").Name("workout-constraints")

	// same MCP server can also run standalone over stdio (cmd/coach_mcp)
	mcpServer := injuriesmcp.NewServer(s.injuriesService, s.injuriesAnalyzer, s.loadEvaluator)
	r.PathPrefix("/mcp").Handler(mcpsdk.NewStreamableHTTPHandler(
		func(*http.Request) *mcpsdk.Server { return mcpServer },
		nil,
	))

	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
