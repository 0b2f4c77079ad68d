package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sentracore"
	"sentracore/internal/api/models"
)

const collectionName = "sentra_core"

type SentraCoreRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewSentraCoreRepository() *SentraCoreRepository {
	return NewSentraCoreRepositoryWithCollection(sentracore.DB.Collection(collectionName))
}

// NewSentraCoreRepositoryWithCollection builds a repository over an explicit
// collection, used by tests and by callers holding their own database handle.
func NewSentraCoreRepositoryWithCollection(coll *mongo.Collection) *SentraCoreRepository {
	return &SentraCoreRepository{coll: coll, now: time.Now}
}

// UpdatePatch carries the optional fields of a partial update. Nil means
// "leave untouched", a pointer to the zero value means "clear".
type UpdatePatch struct {
	Name           *string
	Description    *string
	Labels         *[]models.Label
	Connections    *[]models.Connection
	SelectedOption *string
}

// SetDocument returns the $set payload for the fields present in the patch.
// The map is empty when the patch carries no fields at all.
func (slf UpdatePatch) SetDocument() bson.M {
	set := bson.M{}
	if slf.Name != nil {
		set["name"] = *slf.Name
	}
	if slf.Description != nil {
		set["description"] = *slf.Description
	}
	if slf.Labels != nil {
		set["labels"] = *slf.Labels
	}
	if slf.Connections != nil {
		set["connections"] = *slf.Connections
	}
	if slf.SelectedOption != nil {
		set["selected_option"] = *slf.SelectedOption
	}
	return set
}

// Create inserts a new configuration with a fresh ID and both timestamps set
// to now, then re-reads it so the caller sees exactly what was persisted.
func (slf *SentraCoreRepository) Create(ctx context.Context, m models.SentraCore) (*models.SentraCore, error) {
	m.ID = primitive.NewObjectID()
	now := slf.now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Labels == nil {
		m.Labels = []models.Label{}
	}
	if m.Connections == nil {
		m.Connections = []models.Connection{}
	}

	if _, err := slf.coll.InsertOne(ctx, m); err != nil {
		return nil, persistence("create", err)
	}

	created, err := slf.findByObjectID(ctx, m.ID)
	if err != nil {
		return nil, persistence("create", err)
	}
	return created, nil
}

// FindByID retrieves a configuration by its hex ID. Returns (nil, nil) when
// no document matches, ErrInvalidID when the ID is malformed.
func (slf *SentraCoreRepository) FindByID(ctx context.Context, id string) (*models.SentraCore, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	doc, err := slf.findByObjectID(ctx, oid)
	if err != nil {
		return nil, persistence("find", err)
	}
	return doc, nil
}

// FindAll retrieves configurations sorted by created_at descending with
// skip/limit pagination. Bounds are enforced at the API layer.
func (slf *SentraCoreRepository) FindAll(ctx context.Context, skip, limit int64) ([]models.SentraCore, error) {
	return slf.findPage(ctx, "list", bson.M{}, skip, limit)
}

// Update merges the fields present in the patch into the stored document and
// refreshes updated_at. A patch with no fields performs no write and returns
// the document unchanged. Returns (nil, nil) when no document matches.
func (slf *SentraCoreRepository) Update(ctx context.Context, id string, patch UpdatePatch) (*models.SentraCore, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := patch.SetDocument()
	if len(set) == 0 {
		doc, err := slf.findByObjectID(ctx, oid)
		if err != nil {
			return nil, persistence("update", err)
		}
		return doc, nil
	}
	set["updated_at"] = slf.now().UTC()

	result, err := slf.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, persistence("update", err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	updated, err := slf.findByObjectID(ctx, oid)
	if err != nil {
		return nil, persistence("update", err)
	}
	return updated, nil
}

// Delete removes a configuration. Returns false, not an error, when no
// document matched the ID.
func (slf *SentraCoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}

	result, err := slf.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, persistence("delete", err)
	}
	return result.DeletedCount > 0, nil
}

// SearchByName matches name case-insensitively. The term is passed to the
// store's regex matcher as-is, so pattern metacharacters keep their meaning.
func (slf *SentraCoreRepository) SearchByName(ctx context.Context, name string, skip, limit int64) ([]models.SentraCore, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: name, Options: "i"}}
	return slf.findPage(ctx, "search", filter, skip, limit)
}

// Count returns the total number of stored configurations.
func (slf *SentraCoreRepository) Count(ctx context.Context) (int64, error) {
	count, err := slf.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, persistence("count", err)
	}
	return count, nil
}

// SaveState persists a configuration captured from the frontend editor. The
// wire-shape translation happens in the mapper, the repository receives the
// canonical shapes and delegates to Create.
func (slf *SentraCoreRepository) SaveState(ctx context.Context, name, description string, labels []models.Label, connections []models.Connection, selectedOption string) (*models.SentraCore, error) {
	return slf.Create(ctx, models.SentraCore{
		Name:           name,
		Description:    description,
		Labels:         labels,
		Connections:    connections,
		SelectedOption: selectedOption,
	})
}

func (slf *SentraCoreRepository) findByObjectID(ctx context.Context, oid primitive.ObjectID) (*models.SentraCore, error) {
	var doc models.SentraCore
	err := slf.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (slf *SentraCoreRepository) findPage(ctx context.Context, op string, filter bson.M, skip, limit int64) ([]models.SentraCore, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := slf.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, persistence(op, err)
	}

	docs := make([]models.SentraCore, 0, limit)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, persistence(op, err)
	}
	return docs, nil
}
