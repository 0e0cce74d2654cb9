package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/velolab/paceline/internal/adaptation"
	"github.com/velolab/paceline/internal/config"
	"github.com/velolab/paceline/internal/db"
	"github.com/velolab/paceline/internal/ftp"
	"github.com/velolab/paceline/internal/middleware"
	"github.com/velolab/paceline/internal/progression"
	"github.com/velolab/paceline/internal/rides"
	"github.com/velolab/paceline/internal/telemetry/metrics"
	"github.com/velolab/paceline/internal/telemetry/tracing"
	"github.com/velolab/paceline/internal/trainingload"
	"github.com/velolab/paceline/internal/workouts"
	"github.com/velolab/paceline/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	appSecret         string
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient *redis.Client

	trainingLoadService *trainingload.Service
	progressionStore    *progression.Store
	progressionService  *progression.Service
	seeder              *progression.Seeder
	adaptationService   *adaptation.Service
	settingsRepo        *adaptation.SettingsRepo
	scheduler           *adaptation.Scheduler

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	AppSecret               string
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
		map[string]string{"db_name": "paceline_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("paceline", "main", promRegistry)
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

	otelShutdown, err := tracing.Setup(params.HoneycombTracingEnabled, "paceline")
	if err != nil {
		return nil, err
	}

	ridesRepo := rides.NewRepo(dbPool)
	workoutsRepo := workouts.NewRepo(dbPool)
	ftpRepo := ftp.NewRepo(dbPool)

	trainingLoadService := trainingload.NewService(
		ridesRepo,
		rdb,
		time.Duration(params.Config.TrainingLoadCacheTTLMinutes)*time.Minute,
	)

	progressionStore := progression.NewStore(dbPool)
	progressionService := progression.NewService(workoutsRepo, progressionStore, metricsManager)
	seeder := progression.NewSeeder(ridesRepo, ftpRepo, progressionStore, metricsManager)

	settingsRepo := adaptation.NewSettingsRepo(dbPool)
	adaptationService := adaptation.NewService(
		workoutsRepo,
		settingsRepo,
		adaptation.NewRepo(dbPool),
		trainingLoadService,
		progressionStore,
		metricsManager,
	)

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		appSecret:   params.AppSecret,
		versionInfo: params.VersionInfo,
		redisClient: rdb,

		trainingLoadService: trainingLoadService,
		progressionStore:    progressionStore,
		progressionService:  progressionService,
		seeder:              seeder,
		adaptationService:   adaptationService,
		settingsRepo:        settingsRepo,
		scheduler:           adaptation.NewScheduler(adaptationService),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("paceline-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "paceline")
	}).Methods("GET").Name("root")
	r.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "pong")
	}).Methods("GET").Name("ping")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	progressionHandler := progression.NewHandler(s.progressionService, s.seeder)
	r.HandleFunc("/progression/{userId}", progressionHandler.HandleLevels).
		Methods("GET", "OPTIONS").Name("progression-levels")
	r.HandleFunc("/progression/{userId}/{zone}/history", progressionHandler.HandleHistory).
		Methods("GET", "OPTIONS").Name("progression-history")
	r.HandleFunc("/progression/outcome/{workoutId}", progressionHandler.HandleOutcome).
		Methods("POST", "OPTIONS").Name("progression-outcome")
	r.HandleFunc("/progression/seed/{userId}", progressionHandler.HandleSeed).
		Methods("POST", "OPTIONS").Name("progression-seed")

	adaptationHandler := adaptation.NewHandler(s.adaptationService, s.settingsRepo)
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	r.Handle(
		"/adaptation/evaluate/{workoutId}",
		middleware.RateLimit(
			reqRateLimiter,
			"adaptation-evaluate",
			s.config.EvaluateRateLimitAllowedPerMin,
			s.metricsManager,
		)(http.HandlerFunc(adaptationHandler.HandleEvaluate)),
	).Methods("POST", "OPTIONS").Name("adaptation-evaluate")
	r.HandleFunc("/adaptation/respond/{decisionId}", adaptationHandler.HandleRespond).
		Methods("POST", "OPTIONS").Name("adaptation-respond")
	r.HandleFunc("/adaptation/decisions/{userId}", adaptationHandler.HandleDecisions).
		Methods("GET", "OPTIONS").Name("adaptation-decisions")
	r.HandleFunc("/adaptation/batch/{userId}", adaptationHandler.HandleRunBatch).
		Methods("POST", "OPTIONS").Name("adaptation-batch")
	r.HandleFunc("/adaptation/settings/{userId}", adaptationHandler.HandleGetSettings).
		Methods("GET", "OPTIONS").Name("adaptation-get-settings")
	r.HandleFunc("/adaptation/settings", adaptationHandler.HandleUpdateSettings).
		Methods("POST", "OPTIONS").Name("adaptation-update-settings")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.appSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

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

	if err := s.scheduler.Start(s.config.BatchScheduleSpec); err != nil {
		log.Fatalf("failed to start batch scheduler: %s", err)
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.scheduler.Stop()
	log.Trace("batch scheduler stopped ...")

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
