package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	apitypes "github.com/axie-uno/staking-client/api/http/types"
	"github.com/axie-uno/staking-client/sheets"
	"github.com/axie-uno/staking-client/uno"
)

// Server bundles dependencies for the HTTP gateway, which re-exposes the
// staking-API façade operations as JSON endpoints.
type Server struct {
	router   *chi.Mux
	client   *uno.Client
	funcs    *sheets.Funcs
	logger   logrus.FieldLogger
	registry *prometheus.Registry
	started  time.Time
}

// NewServer constructs a Server with registered routes.
func NewServer(client *uno.Client, logger logrus.FieldLogger, registry *prometheus.Registry) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	s := &Server{
		router:   chi.NewRouter(),
		client:   client,
		funcs:    sheets.NewFuncs(client),
		logger:   logger,
		registry: registry,
		started:  time.Now(),
	}

	s.router.Get("/healthz", s.healthzHandler)
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/prices", s.pricesHandler)
		r.Get("/pools", s.poolsHandler)
		r.Get("/userinfo", s.userInfoHandler)
		r.Get("/balance", s.balanceHandler)
		r.Get("/estimate", s.estimateHandler)
	})

	return s
}

// Handler exposes the underlying router for integration tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthzHandler(w http.ResponseWriter, r *http.Request) {
	resp := apitypes.HealthResponse{
		Status: "ok",
		Uptime: time.Since(s.started).Round(time.Millisecond).String(),
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) pricesHandler(w http.ResponseWriter, r *http.Request) {
	currency := r.URL.Query().Get("currency")
	if currency == "" {
		currency = sheets.DefaultCurrency
	}

	prices, err := s.client.Prices(r.Context(), currency)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, apitypes.PricesResponse{Currency: currency, Prices: prices})
}

func (s *Server) poolsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	player := q.Get("player")

	includeAbi := false
	if raw := q.Get("includeAbi"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, apitypes.ErrorResponse{Error: "includeAbi must be a boolean"})
			return
		}
		includeAbi = parsed
	}

	pools, err := s.client.Pools(r.Context(), player, includeAbi)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, apitypes.PoolsResponse{
		Player: uno.NormalizeAddress(player),
		Pools:  pools,
	})
}

func (s *Server) userInfoHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pool := q.Get("pool")
	player := q.Get("player")

	info, err := s.client.UserInfo(r.Context(), pool, player)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, apitypes.UserInfoResponse{
		RewardInfo:         *info,
		TimeUntilNextClaim: sheets.FormatSeconds(info.SecondsUntilNextClaim),
	})
}

func (s *Server) balanceHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	token := q.Get("token")
	player := q.Get("player")

	balance, err := s.client.Balance(r.Context(), token, player)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, apitypes.BalanceResponse{
		Token:   token,
		Player:  uno.NormalizeAddress(player),
		Balance: balance,
	})
}

func (s *Server) estimateHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pool := q.Get("pool")

	if raw := q.Get("stake"); raw != "" {
		stake, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, apitypes.ErrorResponse{Error: "stake must be numeric"})
			return
		}
		daily, err := s.funcs.SimulateDailyRewards(r.Context(), pool, stake)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, apitypes.EstimateResponse{Pool: pool, Stake: &stake, DailyReward: daily})
		return
	}

	player := q.Get("player")
	daily, err := s.funcs.EstimateDailyRewards(r.Context(), pool, player)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, apitypes.EstimateResponse{
		Pool:        pool,
		Player:      uno.NormalizeAddress(player),
		DailyReward: daily,
	})
}

// writeError maps façade error kinds onto HTTP statuses: allow-list
// violations are the caller's fault, upstream fetch/decode failures are a bad
// gateway, anything else is internal.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		enumErr   *uno.BadEnumError
		fetchErr  *uno.FetchError
		decodeErr *uno.DecodeError
	)
	switch {
	case errors.As(err, &enumErr):
		s.writeJSON(w, http.StatusBadRequest, apitypes.ErrorResponse{Error: enumErr.Error()})
	case errors.As(err, &fetchErr), errors.As(err, &decodeErr):
		s.logger.WithError(err).Warn("upstream request failed")
		s.writeJSON(w, http.StatusBadGateway, apitypes.ErrorResponse{Error: err.Error()})
	default:
		s.logger.WithError(err).Error("request failed")
		s.writeJSON(w, http.StatusInternalServerError, apitypes.ErrorResponse{Error: "internal error"})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to write response")
	}
}

// gatewayConfig is the optional YAML file config; unset fields fall back to
// the environment.
type gatewayConfig struct {
	Addr      string `yaml:"addr"`
	BaseURL   string `yaml:"base_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

func loadGatewayConfig(path string) (gatewayConfig, error) {
	var cfg gatewayConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func main() {
	var (
		addr       = flag.String("addr", envOr("API_HTTP_ADDR", ":8080"), "listen address")
		configPath = flag.String("config", os.Getenv("API_HTTP_CONFIG"), "optional YAML config file")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logger.WithField("component", "api-http")

	clientCfg, err := uno.FromEnv()
	if err != nil {
		log.WithError(err).Fatal("load client config")
	}

	if *configPath != "" {
		fileCfg, err := loadGatewayConfig(*configPath)
		if err != nil {
			log.WithError(err).Fatal("load gateway config")
		}
		if fileCfg.Addr != "" {
			*addr = fileCfg.Addr
		}
		if fileCfg.BaseURL != "" {
			clientCfg.BaseURL = fileCfg.BaseURL
		}
		if fileCfg.TimeoutMS > 0 {
			clientCfg.Timeout = time.Duration(fileCfg.TimeoutMS) * time.Millisecond
		}
		if err := clientCfg.Validate(); err != nil {
			log.WithError(err).Fatal("invalid client config")
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client, err := uno.New(clientCfg, log, registry)
	if err != nil {
		log.WithError(err).Fatal("init staking API client")
	}

	server := NewServer(client, log, registry)
	srv := &http.Server{
		Addr:    *addr,
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", *addr).Info("HTTP gateway listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("gateway exited")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
