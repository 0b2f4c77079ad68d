package response

import (
	"time"

	"sentracore/internal/api/models"
)

// SentraCore is the wire shape of a stored configuration
type SentraCore struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Labels         []models.Label      `json:"labels"`
	Connections    []models.Connection `json:"connections"`
	SelectedOption string              `json:"selected_option"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}
