// File: cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"motofix-admin/internal/database"

	"github.com/joho/godotenv"
)

type seedMechanic struct {
	phone         string
	name          string
	location      string
	isVerified    bool
	rating        float64
	jobsCompleted int
}

var mechanics = []seedMechanic{
	{"+256701234567", "John Okello", "Kampala Central", true, 4.8, 156},
	{"+256702345678", "Peter Ssemwogerere", "Nakawa", true, 4.5, 98},
	{"+256703456789", "James Mugisha", "Makindye", false, 4.2, 45},
	{"+256704567890", "David Lubega", "Ntinda", true, 4.9, 201},
	{"+256705678901", "Moses Kasule", "Wandegeya", false, 3.8, 23},
}

func main() {
	reset := flag.Bool("reset", false, "先退回所有 migration 再重建")
	flag.Parse()

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("環境變數 DATABASE_URL 未設定")
	}

	if *reset {
		if err := database.RollbackAll(dbURL); err != nil {
			log.Fatalf("Rollback 執行失敗: %v", err)
		}
	}
	if err := database.RunMigrations(dbURL); err != nil {
		log.Fatalf("Migration 執行失敗: %v", err)
	}

	ctx := context.Background()
	db, err := database.NewPgxPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	for _, m := range mechanics {
		_, err := db.Exec(ctx,
			`INSERT INTO mechanics (phone, name, location, is_verified, rating, jobs_completed)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (phone) DO UPDATE
			   SET name = EXCLUDED.name,
			       location = EXCLUDED.location,
			       is_verified = EXCLUDED.is_verified,
			       rating = EXCLUDED.rating,
			       jobs_completed = EXCLUDED.jobs_completed`,
			m.phone,
			m.name,
			m.location,
			m.isVerified,
			m.rating,
			m.jobsCompleted,
		)
		if err != nil {
			log.Fatalf("seed %s 失敗: %v", m.phone, err)
		}
	}

	log.Print("Seeded mechanics successfully.")
}
