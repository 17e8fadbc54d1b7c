package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"meetspace/internal/config"
	"meetspace/internal/database"
	"meetspace/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	flags := pflag.NewFlagSet("auth_cleanup", pflag.ExitOnError)
	dsn := flags.String("dsn", cfg.DatabaseURL, "database DSN (postgres URL or sqlite path)")
	retention := flags.Duration("retention", 30*24*time.Hour, "how long revoked refresh tokens are kept")
	_ = flags.Parse(os.Args[1:])

	db, err := database.Connect(*dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := repository.NewRefreshTokenRepository(db).DeleteStale(ctx, time.Now().UTC().Add(-*retention))
	if err != nil {
		log.Fatalf("cleanup refresh_tokens failed: %v", err)
	}
	log.Printf("auth cleanup completed: refresh_tokens=%d", n)
}
