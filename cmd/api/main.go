package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	app "github.com/rosterhub/excelsync/internal/application/roster"
	"github.com/rosterhub/excelsync/internal/bootstrap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env file")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := getEnv("PORT", "8080")

	updatePolicy, err := app.ParseUpdatePolicy(os.Getenv("IMPORT_UPDATE_POLICY"))
	if err != nil {
		log.Fatalf("invalid IMPORT_UPDATE_POLICY: %v", err)
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("failed to create pgx pool: %v", err)
	}
	defer pool.Close()

	server := bootstrap.NewHTTPServer(db, pool, bootstrap.Config{
		ScratchDir:   getEnv("SCRATCH_DIR", "uploads"),
		BodyLimit:    getEnv("BODY_LIMIT", "10M"),
		UpdatePolicy: updatePolicy,
	})

	go func() {
		if err := server.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
