// Package database holds the optional document-store connection. All
// gameplay state lives in process memory; the connection exists so
// deployments that want durable snapshots can attach one without code
// changes. A missing or unreachable server is not an error.
package database

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client is nil when MONGO_URI is not configured or the connect failed.
var Client *mongo.Client

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}
	return def
}

// Connect dials the document store if MONGO_URI is set. Failures are
// logged and swallowed: the game runs entirely from in-memory data.
func Connect(ctx context.Context) {
	uri := strings.TrimSpace(os.Getenv("MONGO_URI"))
	if uri == "" {
		log.Println("[database] MONGO_URI not set - running with in-memory data only")
		return
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Printf("[database] connect failed (continuing without persistence): %v", err)
		return
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Printf("[database] ping failed (continuing without persistence): %v", err)
		_ = client.Disconnect(context.Background())
		return
	}

	Client = client
	log.Printf("[database] connected to %s", getenv("MONGO_DB", "bureausim"))
}

// Disconnect closes the document-store connection if one was established.
func Disconnect(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("[database] disconnect: %v", err)
	}
	Client = nil
}
