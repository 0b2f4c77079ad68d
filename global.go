package sentracore

import (
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	Mongo  *mongo.Client
	DB     *mongo.Database
	Logger zerolog.Logger
)
