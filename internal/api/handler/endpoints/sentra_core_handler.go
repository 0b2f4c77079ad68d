package endpoints

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"sentracore"
	"sentracore/internal/api/handler/mapper"
	"sentracore/internal/api/handler/request"
	"sentracore/internal/api/handler/response"
	"sentracore/internal/api/models"
	"sentracore/internal/api/repo"
	"sentracore/pkg"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
	maxLimit     = 1000
)

// sentraCoreStore is what the handler needs from the repository, kept as an
// interface so tests can substitute a fake store.
type sentraCoreStore interface {
	Create(ctx context.Context, m models.SentraCore) (*models.SentraCore, error)
	FindByID(ctx context.Context, id string) (*models.SentraCore, error)
	FindAll(ctx context.Context, skip, limit int64) ([]models.SentraCore, error)
	Update(ctx context.Context, id string, patch repo.UpdatePatch) (*models.SentraCore, error)
	Delete(ctx context.Context, id string) (bool, error)
	SearchByName(ctx context.Context, name string, skip, limit int64) ([]models.SentraCore, error)
	Count(ctx context.Context) (int64, error)
	SaveState(ctx context.Context, name, description string, labels []models.Label, connections []models.Connection, selectedOption string) (*models.SentraCore, error)
}

type sentraCoreHandler struct {
	store  sentraCoreStore
	mapper mapper.SentraCoreMapper
	logger zerolog.Logger
}

func newSentraCoreHandler() *sentraCoreHandler {
	return &sentraCoreHandler{
		store:  repo.NewSentraCoreRepository(),
		mapper: mapper.NewSentraCoreMapper(),
		logger: sentracore.Logger,
	}
}

func SentraCoreHandler(router *graceful.Graceful) {
	h := newSentraCoreHandler()
	registerSentraCoreRoutes(router, h)
}

func registerSentraCoreRoutes(router gin.IRouter, h *sentraCoreHandler) {
	routes := router.Group("/api/sentra-core")
	{
		routes.POST("", h.create)
		routes.GET("", h.getAll)
		routes.GET("/:id", h.getByID)
		routes.PUT("/:id", h.update)
		routes.DELETE("/:id", h.delete)
		routes.GET("/search/", h.search)
		routes.GET("/count/", h.count)
		routes.POST("/save-state/", h.saveState)
	}
}

// create stores a new configuration
func (slf *sentraCoreHandler) create(c *gin.Context) {
	var req request.CreateSentraCore
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse create request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	created, err := slf.store.Create(c.Request.Context(), slf.mapper.CreateToModel(req))
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to create SentraCore configuration")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, slf.mapper.ToResponse(*created))
}

// getByID returns a single configuration
func (slf *sentraCoreHandler) getByID(c *gin.Context) {
	id := c.Param("id")

	doc, err := slf.store.FindByID(c.Request.Context(), id)
	if err != nil {
		slf.respondError(c, id, err, "Failed to get SentraCore configuration")
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, response.APIError{Message: "SentraCore configuration not found"})
		return
	}

	c.JSON(http.StatusOK, slf.mapper.ToResponse(*doc))
}

// getAll returns a page of configurations, most recent first
func (slf *sentraCoreHandler) getAll(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	docs, err := slf.store.FindAll(c.Request.Context(), skip, limit)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to list SentraCore configurations")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to retrieve configurations"})
		return
	}

	c.JSON(http.StatusOK, slf.mapper.ToResponses(docs))
}

// update merges the supplied fields into an existing configuration
func (slf *sentraCoreHandler) update(c *gin.Context) {
	id := c.Param("id")

	var req request.UpdateSentraCore
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse update request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	updated, err := slf.store.Update(c.Request.Context(), id, slf.mapper.UpdateToPatch(req))
	if err != nil {
		slf.respondError(c, id, err, "Failed to update SentraCore configuration")
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, response.APIError{Message: "SentraCore configuration not found"})
		return
	}

	c.JSON(http.StatusOK, slf.mapper.ToResponse(*updated))
}

// delete removes a configuration
func (slf *sentraCoreHandler) delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := slf.store.Delete(c.Request.Context(), id)
	if err != nil {
		slf.respondError(c, id, err, "Failed to delete SentraCore configuration")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, response.APIError{Message: "SentraCore configuration not found"})
		return
	}

	c.JSON(http.StatusOK, response.Message{Message: "SentraCore configuration deleted successfully"})
}

// search returns configurations whose name matches the term, case-insensitively
func (slf *sentraCoreHandler) search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Query parameter 'name' is required"})
		return
	}

	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	docs, err := slf.store.SearchByName(c.Request.Context(), name, skip, limit)
	if err != nil {
		slf.logger.Error().Err(err).Str("name", name).Msg("Failed to search SentraCore configurations")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to search configurations"})
		return
	}

	c.JSON(http.StatusOK, slf.mapper.ToResponses(docs))
}

// count returns the total number of stored configurations
func (slf *sentraCoreHandler) count(c *gin.Context) {
	total, err := slf.store.Count(c.Request.Context())
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to count SentraCore configurations")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to count configurations"})
		return
	}

	c.JSON(http.StatusOK, response.Count{Count: total})
}

// saveState persists the editor's current state, translating the frontend
// wire shape into the canonical one
func (slf *sentraCoreHandler) saveState(c *gin.Context) {
	var req request.SaveState
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse save-state request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	created, err := slf.store.SaveState(
		c.Request.Context(),
		req.Name,
		req.Description,
		slf.mapper.SaveStateLabels(req.Labels),
		slf.mapper.SaveStateConnections(req.Connections),
		req.SelectedOption,
	)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to save current state")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, slf.mapper.ToResponse(*created))
}

// respondError maps a repository failure on an ID-bound operation: malformed
// IDs are the caller's fault, everything else is a store failure.
func (slf *sentraCoreHandler) respondError(c *gin.Context, id string, err error, msg string) {
	if errors.Is(err, repo.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}
	slf.logger.Error().Err(err).Str("id", id).Msg(msg)
	c.JSON(http.StatusInternalServerError, response.APIError{Message: msg})
}

// parsePagination reads skip/limit query parameters, enforcing skip >= 0 and
// 1 <= limit <= 1000. Writes a 400 response itself when a bound is violated.
func parsePagination(c *gin.Context) (skip, limit int64, ok bool) {
	skip = defaultSkip
	limit = defaultLimit

	if raw := c.Query("skip"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || value < 0 {
			c.JSON(http.StatusBadRequest, response.APIError{Message: "Query parameter 'skip' must be a non-negative integer"})
			return 0, 0, false
		}
		skip = value
	}

	if raw := c.Query("limit"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || value < 1 || value > maxLimit {
			c.JSON(http.StatusBadRequest, response.APIError{Message: "Query parameter 'limit' must be between 1 and 1000"})
			return 0, 0, false
		}
		limit = value
	}

	return skip, limit, true
}
