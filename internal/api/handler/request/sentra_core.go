package request

import "sentracore/internal/api/models"

// CreateSentraCore is the request for creating a new configuration
type CreateSentraCore struct {
	Name           string              `json:"name" validate:"required"`
	Description    string              `json:"description"`
	Labels         []models.Label      `json:"labels"`
	Connections    []models.Connection `json:"connections"`
	SelectedOption string              `json:"selected_option"`
}

// UpdateSentraCore is the request for a partial update. Omitted fields are
// left untouched, clearing a field requires an explicit empty value.
type UpdateSentraCore struct {
	Name           *string              `json:"name,omitempty"`
	Description    *string              `json:"description,omitempty"`
	Labels         *[]models.Label      `json:"labels,omitempty"`
	Connections    *[]models.Connection `json:"connections,omitempty"`
	SelectedOption *string              `json:"selected_option,omitempty"`
}

// FrontendLabel is the editor's label shape, field-for-field the same as the
// persisted one.
type FrontendLabel struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Value    string  `json:"value"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Category string  `json:"category"`
}

// FrontendConnection is the editor's edge shape. The source field is named
// "from" on the wire, which the persisted shape avoids as a reserved word.
type FrontendConnection struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

// SaveState is the request for persisting the editor's current state
type SaveState struct {
	Name           string               `json:"name" validate:"required"`
	Description    string               `json:"description"`
	Labels         []FrontendLabel      `json:"labels"`
	Connections    []FrontendConnection `json:"connections"`
	SelectedOption string               `json:"selected_option"`
}
