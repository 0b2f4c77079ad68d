package mapper

import (
	"sentracore/internal/api/handler/request"
	"sentracore/internal/api/handler/response"
	"sentracore/internal/api/models"
	"sentracore/internal/api/repo"
)

type SentraCoreMapper struct{}

func NewSentraCoreMapper() SentraCoreMapper {
	return SentraCoreMapper{}
}

// CreateToModel converts a create request into an unsaved model. ID and
// timestamps are assigned by the repository.
func (m SentraCoreMapper) CreateToModel(req request.CreateSentraCore) models.SentraCore {
	return models.SentraCore{
		Name:           req.Name,
		Description:    req.Description,
		Labels:         req.Labels,
		Connections:    req.Connections,
		SelectedOption: req.SelectedOption,
	}
}

// UpdateToPatch converts an update request into a repository patch,
// carrying only the fields the caller supplied.
func (m SentraCoreMapper) UpdateToPatch(req request.UpdateSentraCore) repo.UpdatePatch {
	return repo.UpdatePatch{
		Name:           req.Name,
		Description:    req.Description,
		Labels:         req.Labels,
		Connections:    req.Connections,
		SelectedOption: req.SelectedOption,
	}
}

// SaveStateLabels converts the editor's label shape field-for-field.
func (m SentraCoreMapper) SaveStateLabels(labels []request.FrontendLabel) []models.Label {
	converted := make([]models.Label, 0, len(labels))
	for _, label := range labels {
		converted = append(converted, models.Label{
			ID:       label.ID,
			Text:     label.Text,
			Value:    label.Value,
			X:        label.X,
			Y:        label.Y,
			Category: label.Category,
		})
	}
	return converted
}

// SaveStateConnections converts the editor's {id, from, to} edges into the
// persisted {id, from_id, to_id} shape.
func (m SentraCoreMapper) SaveStateConnections(connections []request.FrontendConnection) []models.Connection {
	converted := make([]models.Connection, 0, len(connections))
	for _, connection := range connections {
		converted = append(converted, models.Connection{
			ID:     connection.ID,
			FromID: connection.From,
			ToID:   connection.To,
		})
	}
	return converted
}

// ToResponse converts a stored model into its wire shape.
func (m SentraCoreMapper) ToResponse(doc models.SentraCore) response.SentraCore {
	labels := doc.Labels
	if labels == nil {
		labels = []models.Label{}
	}
	connections := doc.Connections
	if connections == nil {
		connections = []models.Connection{}
	}
	return response.SentraCore{
		ID:             doc.ID.Hex(),
		Name:           doc.Name,
		Description:    doc.Description,
		Labels:         labels,
		Connections:    connections,
		SelectedOption: doc.SelectedOption,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

// ToResponses converts a page of stored models.
func (m SentraCoreMapper) ToResponses(docs []models.SentraCore) []response.SentraCore {
	responses := make([]response.SentraCore, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, m.ToResponse(doc))
	}
	return responses
}
