package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vaughan-dsouza/BlogPosts/internal/config"
	"github.com/vaughan-dsouza/BlogPosts/internal/db"
	"github.com/vaughan-dsouza/BlogPosts/internal/handlers"
	"github.com/vaughan-dsouza/BlogPosts/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	postStore, closeStore, err := openStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer closeStore()

	h := handlers.NewHandler(postStore)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h.Routes(),
	}

	go func() {
		log.Printf("listening on %s (store: %s)", srv.Addr, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

// openStore connects the configured backend once; every request shares it.
func openStore(ctx context.Context, cfg config.Config) (store.PostStore, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		conn, err := db.ConnectPostgres(cfg.DatabaseURL, cfg.ConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		s := store.NewPGPostStore(conn)
		if err := s.EnsureSchema(ctx); err != nil {
			conn.Close()
			return nil, nil, err
		}
		log.Println("Postgres connected")
		return s, func() { conn.Close() }, nil

	default:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.ConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		log.Println("MongoDB connected")
		coll := client.Database(cfg.MongoDatabase).Collection(store.PostsCollection)
		return store.NewMongoPostStore(coll), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("mongo disconnect: %v", err)
			}
		}, nil
	}
}
