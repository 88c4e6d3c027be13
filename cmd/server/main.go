package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/todo-webapp/app/internal/auth"
	"github.com/todo-webapp/app/internal/config"
	"github.com/todo-webapp/app/internal/handlers"
	"github.com/todo-webapp/app/internal/store"
)

func main() {
	cfg := config.Load()

	var (
		users store.UserStore
		todos store.TodoStore
	)

	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatalf("Error connecting to MongoDB: %v", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			log.Fatalf("Error pinging MongoDB: %v", err)
		}

		m := store.NewMongo(client, store.MongoConfig{Database: cfg.MongoDatabase})
		if err := m.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Error creating MongoDB indexes: %v", err)
		}

		users, todos = m, m
		log.Printf("Using MongoDB database %q", cfg.MongoDatabase)
	} else {
		s, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Error opening SQLite database: %v", err)
		}
		defer s.Close()

		users, todos = s, s
		log.Printf("Using SQLite database at %s", cfg.SQLitePath)
	}

	// The path is relative to where the binary is run; for development,
	// running from the project root works.
	if err := handlers.LoadTemplates("web/templates"); err != nil {
		log.Fatalf("Error loading templates: %v", err)
	}

	svc := auth.NewService(users)
	sessions := auth.NewSessions()
	router := handlers.NewRouter(svc, sessions, todos, "web/static")

	log.Printf("Server starting on %s\n", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
