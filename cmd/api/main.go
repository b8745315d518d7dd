package main

import (
	"log"
	"os"

	"github.com/foundly-app/foundly-backend/internal/config"
	"github.com/foundly-app/foundly-backend/internal/db"
	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/foundly-app/foundly-backend/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	srv := server.New(nil, os.Getenv("GIT_SHA"), os.Getenv("BUILD_TIME"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	errCh := make(chan error, 1)

	go func() {
		log.Printf("starting server on %s", addr)
		errCh <- srv.Start(addr)
	}()

	// Connect in the background so the instance can come up (and serve
	// health checks) before the database is reachable.
	go func() {
		cfg, err := config.Load()
		if err != nil {
			log.Printf("config load error: %v", err)
			return
		}
		conn, err := db.Connect(cfg)
		if err != nil {
			log.Printf("db connect error: %v", err)
			return
		}
		srv.SetDB(conn)
		if err := conn.AutoMigrate(
			&model.Item{},
			&model.Match{},
			&model.Notification{},
			&model.ChatMessage{},
		); err != nil {
			log.Printf("auto migrate error: %v", err)
		}
	}()

	if err := <-errCh; err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
