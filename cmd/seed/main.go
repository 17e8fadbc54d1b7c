package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/pflag"

	"meetspace/internal/config"
	"meetspace/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	flags := pflag.NewFlagSet("seed", pflag.ExitOnError)
	dsn := flags.String("dsn", cfg.DatabaseURL, "database DSN (postgres URL or sqlite path)")
	fixturePath := flags.StringP("fixture", "f", "", "YAML file with offices and rooms to seed")
	adminEmail := flags.String("admin-email", cfg.AdminEmail, "email of the bootstrap admin")
	adminPassword := flags.String("admin-password", cfg.AdminPassword, "password of the bootstrap admin")
	_ = flags.Parse(os.Args[1:])

	db, err := database.Connect(*dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	ctx := context.Background()
	s := newSeeder(db)

	if *adminEmail != "" && *adminPassword != "" {
		created, err := s.ensureAdmin(ctx, *adminEmail, *adminPassword)
		if err != nil {
			log.Fatalf("seed admin: %v", err)
		}
		log.Printf("seed_admin email=%s created=%t", *adminEmail, created)
	} else {
		log.Println("seed_admin skipped: ADMIN_EMAIL/ADMIN_PASSWORD not set")
	}

	if *fixturePath == "" {
		return
	}
	fx, err := loadFixture(*fixturePath)
	if err != nil {
		log.Fatalf("fixture: %v", err)
	}
	offices, rooms, err := s.applyFixture(ctx, fx)
	if err != nil {
		log.Fatalf("seed offices: %v", err)
	}
	log.Printf("seed completed: offices=%d rooms=%d", offices, rooms)
}
