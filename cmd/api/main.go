package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"interview-insights-go/internal/analyzer"
	"interview-insights-go/internal/config"
	"interview-insights-go/internal/dataset"
	"interview-insights-go/internal/httpserver"
	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/store"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "interview-insights-go").Info("starting service")

	cfg, err := config.Load(envOr("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	st := store.NewMemory()
	st.Subscribe(func() {
		log.Component("store").Debug("records changed; derived views recompute on next read")
	})

	// Optional bulk import of transcripts from a workbook.
	if cfg.Dataset.Path != "" {
		log.WithField("dataset_path", cfg.Dataset.Path).Info("importing interviews")
		interviews, err := dataset.LoadInterviews(cfg.Dataset.Path)
		if err != nil {
			log.WithError(err).Fatal("failed to import interviews")
		}
		for _, iv := range interviews {
			if err := st.CreateInterview(iv); err != nil {
				log.WithError(err).Fatal("failed to seed interview")
			}
		}
		log.WithField("count", len(interviews)).Info("interviews imported")
	}

	var an analyzer.Analyzer
	if cfg.OpenAI.Mock {
		log.Info("mock LLM mode ON - returning deterministic analyses")
		an = analyzer.Mock{}
	} else {
		if cfg.OpenAI.APIKey == "" {
			log.Fatal("OPENAI_API_KEY not configured (set openai.mock or USE_MOCK_LLM=true for offline runs)")
		}
		an = analyzer.NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	}
	batch := analyzer.NewBatch(st, an, cfg.Analysis.Concurrency, time.Duration(cfg.Analysis.SubmitDelayMs)*time.Millisecond)

	handler := httpserver.NewRouter(st, batch, cfg.Server.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
