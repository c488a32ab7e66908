package testutils

import (
	"context"
	"log"
	"main/utils"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Add a mutex to protect environment variable access
var envMutex sync.Mutex

// SetupTestEnvironment sets up the test environment variables
func SetupTestEnvironment() {
	// Find and load the main .env file
	rootDir := findProjectRoot()
	if envPath := filepath.Join(rootDir, ".env"); rootDir != "" {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("Warning: Could not load .env file: %v", err)
		}
	}

	envMutex.Lock()
	defer envMutex.Unlock()

	os.Setenv("GO_ENV", "test")

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	os.Setenv("TEST_MONGO_URI", mongoURI)
	os.Setenv("MONGO_DB", "shinobiquests_test")
	os.Setenv("MONGO_DB_TEST", "shinobiquests_test")
	os.Setenv("MISSIONS_COLLECTION", "missions")
	os.Setenv("PROGRESS_COLLECTION", "progress")
	os.Setenv("MOODS_COLLECTION", "moods")
	os.Setenv("ACHIEVEMENTS_COLLECTION", "achievements")

	// Set connection pool settings
	os.Setenv("MONGO_MAX_POOL_SIZE", "100")
	os.Setenv("MONGO_MIN_POOL_SIZE", "10")
	os.Setenv("MONGO_MAX_CONN_IDLE_TIME", "60")
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// SetupTestDB sets up a test database and returns a cleanup function
func SetupTestDB(t *testing.T) (*mongo.Client, func()) {
	// Ensure test environment is set up
	if os.Getenv("GO_ENV") != "test" {
		SetupTestEnvironment()
	}

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Fatal("TEST_MONGO_URI environment variable not set")
	}

	// Configure MongoDB client options with connection pooling
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100)).
		SetMinPoolSize(utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10)).
		SetMaxConnIdleTime(time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second)

	// Connect to MongoDB with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Verify connection
	if err = client.Ping(ctx, nil); err != nil {
		t.Fatalf("Failed to ping MongoDB: %v", err)
	}

	// Setup cleanup function
	cleanup := func() {
		t.Helper()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// Drop test database
		dbName := os.Getenv("MONGO_DB_TEST")
		if dbName != "" {
			if err := client.Database(dbName).Drop(ctx); err != nil {
				t.Logf("Warning: Failed to drop test database %s: %v", dbName, err)
			}
		}

		// Disconnect client
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("Warning: Failed to disconnect: %v", err)
		}
	}

	return client, cleanup
}
