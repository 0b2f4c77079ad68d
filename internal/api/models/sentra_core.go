package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LabelCategory values seen from the frontend palette. The field is an open
// string, nothing rejects categories outside this set.
const (
	CategoryMove = "move"
	CategoryTurn = "turn"
	CategoryGrip = "grip"
	CategoryWait = "wait"
)

// Label is one positioned action step in a configuration's 2D layout.
type Label struct {
	ID       string  `bson:"id" json:"id"`
	Text     string  `bson:"text" json:"text"`
	Value    string  `bson:"value" json:"value"`
	X        float64 `bson:"x" json:"x"`
	Y        float64 `bson:"y" json:"y"`
	Category string  `bson:"category" json:"category"`
}

// Connection is a directed edge between two labels. FromID/ToID are not
// checked against the label list, dangling references are stored as-is.
type Connection struct {
	ID     string `bson:"id" json:"id"`
	FromID string `bson:"from_id" json:"from_id"`
	ToID   string `bson:"to_id" json:"to_id"`
}

// SentraCore is the persisted configuration aggregate: a named graph of
// action labels and the connections between them.
type SentraCore struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Labels         []Label            `bson:"labels" json:"labels"`
	Connections    []Connection       `bson:"connections" json:"connections"`
	SelectedOption string             `bson:"selected_option" json:"selected_option"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
