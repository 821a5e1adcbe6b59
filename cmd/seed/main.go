// Command seed loads season reference data (weeks, castaways) from a JSON
// file into the database. It is intended to be run once per season, not as
// part of the main server.
//
// Flags:
//
//	--file     path to the season JSON file (default: ./season.json)
//	--dry-run  parse the file without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/survivor-league/internal/adapter/postgres"
	"github.com/heartmarshall/survivor-league/internal/app"
	"github.com/heartmarshall/survivor-league/internal/config"
)

type seasonFile struct {
	Season int `json:"season"`
	Weeks  []struct {
		Episode  int       `json:"episode"`
		LockTime time.Time `json:"lockTime"`
	} `json:"weeks"`
	Castaways []struct {
		Name     string  `json:"name"`
		ImageURL *string `json:"imageUrl"`
	} `json:"castaways"`
}

func main() {
	filePath := flag.String("file", "./season.json", "path to season JSON file")
	dryRun := flag.Bool("dry-run", false, "parse without writing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		logger.Error("read season file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var season seasonFile
	if err := json.Unmarshal(raw, &season); err != nil {
		logger.Error("parse season file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if season.Season <= 0 {
		logger.Error("season must be > 0", slog.Int("season", season.Season))
		os.Exit(1)
	}

	logger.Info("season file parsed",
		slog.Int("season", season.Season),
		slog.Int("weeks", len(season.Weeks)),
		slog.Int("castaways", len(season.Castaways)),
	)

	if *dryRun {
		logger.Info("dry run, nothing written")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database); err != nil {
		logger.Error("apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	for _, w := range season.Weeks {
		_, err := pool.Exec(ctx,
			`INSERT INTO weeks (season, episode_number, lock_time)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (season, episode_number) DO UPDATE SET lock_time = EXCLUDED.lock_time`,
			season.Season, w.Episode, w.LockTime,
		)
		if err != nil {
			logger.Error("insert week", slog.Int("episode", w.Episode), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	for _, c := range season.Castaways {
		_, err := pool.Exec(ctx,
			`INSERT INTO castaways (id, name, season, image_url)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (name, season) DO UPDATE SET image_url = EXCLUDED.image_url`,
			uuid.New(), c.Name, season.Season, c.ImageURL,
		)
		if err != nil {
			logger.Error("insert castaway", slog.String("name", c.Name), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("season seeded",
		slog.Int("weeks", len(season.Weeks)),
		slog.Int("castaways", len(season.Castaways)),
	)
}
