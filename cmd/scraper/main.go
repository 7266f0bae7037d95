package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/naval41/discord-application/internal/cache"
	"github.com/naval41/discord-application/internal/config"
	"github.com/naval41/discord-application/internal/database"
	"github.com/naval41/discord-application/internal/extract"
	"github.com/naval41/discord-application/internal/leetcode"
	"github.com/naval41/discord-application/internal/logger"
	"github.com/naval41/discord-application/internal/notify"
	"github.com/naval41/discord-application/internal/pipeline"
	"github.com/naval41/discord-application/internal/repository"
	"github.com/naval41/discord-application/internal/scheduler"
	"github.com/naval41/discord-application/internal/status"
	"github.com/naval41/discord-application/internal/tracker"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	pool, err := database.Connect(ctx, cfg.DB.DSN)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if err := repo.EnsureVisitedTable(ctx); err != nil {
		sugar.Fatal(err)
	}

	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		rdb, err = cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			sugar.Warnw("redis unavailable, running postgres-only", "err", err)
			rdb = nil
		}
	}

	visited := tracker.New(repo, rdb, sugar)
	source := leetcode.NewClient(cfg.Scraper.PolitenessDelay, sugar)
	extractor := extract.NewExtractor(extract.NewClient(cfg.Groq.APIKey, cfg.Groq.Model, cfg.Groq.Timeout))
	notifier := notify.NewClient(cfg.Discord.BotToken, cfg.Discord.ChannelID)

	driver := pipeline.NewDriver(source, extractor, repo, visited, notifier,
		cfg.Scraper.MaxPages, cfg.Scraper.PageSize, sugar)

	stats := &pipeline.StatsHolder{}
	go status.NewServer(stats, cfg.StatusPort, cfg.IsDevelopment()).Run(sugar)

	sched := scheduler.New(driver, stats, cfg.Scraper.IntervalHours, sugar)
	if err := sched.Start(ctx); err != nil {
		sugar.Fatal(err)
	}
	defer sched.Stop()

	<-ctx.Done()
	sugar.Infow("shutting down")
}
