package sentracore

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type AppConfig struct {
	Mode    string
	ApiPort string
	Mongo   struct {
		URL      string
		Database string
	}
}

var config AppConfig

func InitConfig(envfile string) {
	// The env file is optional, every key has a default.
	_ = godotenv.Load(envfile)

	config = AppConfig{
		Mode:    GetEnv("RUN_MODE", "release"),
		ApiPort: GetEnv("API_PORT", ":8080"),
		Mongo: struct {
			URL      string
			Database string
		}{
			URL:      GetEnv("MONGODB_URL", "mongodb://localhost:27017"),
			Database: GetEnv("DATABASE_NAME", "sentra_core_db"),
		},
	}

	Mongo = connectToMongo(config.Mongo.URL)
	DB = Mongo.Database(config.Mongo.Database)
	Logger = initLogger()
}

func GetConfig() AppConfig {
	return config
}

func GetEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func connectToMongo(url string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB at %s: %v", url, err)
	}

	return client
}

// CloseMongo disconnects the shared client, called once at shutdown.
func CloseMongo() {
	if Mongo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Mongo.Disconnect(ctx); err != nil {
		Logger.Error().Err(err).Msg("Failed to close MongoDB connection")
	}
}

func initLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
		NoColor:    false,
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("  %s  ", i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s=", i)
		},
		FormatFieldValue: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
	}

	return zerolog.New(output).With().Timestamp().Caller().Logger()
}
