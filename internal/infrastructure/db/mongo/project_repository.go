package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projectpulse/project-management/internal/core/domain"
)

const projectCollection = "projects"

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectCollection)}
}

type mongoProject struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Description string               `bson:"description,omitempty"`
	Deadline    time.Time            `bson:"deadline"`
	Priority    string               `bson:"priority"`
	Status      string               `bson:"status"`
	Owner       primitive.ObjectID   `bson:"owner"`
	Members     []primitive.ObjectID `bson:"members"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func (mp *mongoProject) toDomain() *domain.Project {
	members := make([]string, len(mp.Members))
	for i, m := range mp.Members {
		members[i] = m.Hex()
	}
	return &domain.Project{
		ID:          mp.ID.Hex(),
		Name:        mp.Name,
		Description: mp.Description,
		Deadline:    mp.Deadline,
		Priority:    domain.ProjectPriority(mp.Priority),
		Status:      domain.ProjectStatus(mp.Status),
		Owner:       mp.Owner.Hex(),
		Members:     members,
		CreatedAt:   mp.CreatedAt,
		UpdatedAt:   mp.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	owner, err := primitive.ObjectIDFromHex(project.Owner)
	if err != nil {
		return nil, domain.ErrProjectInvalid
	}
	members := make([]primitive.ObjectID, len(project.Members))
	for i, m := range project.Members {
		oid, err := primitive.ObjectIDFromHex(m)
		if err != nil {
			return nil, domain.ErrProjectInvalid
		}
		members[i] = oid
	}

	now := time.Now().UTC()
	doc := mongoProject{
		Name:        project.Name,
		Description: project.Description,
		Deadline:    project.Deadline.UTC(),
		Priority:    string(project.Priority),
		Status:      string(project.Status),
		Owner:       owner,
		Members:     members,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, domain.ErrProjectCreateFailed
	}

	created, err := r.FindByID(ctx, id.Hex())
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return nil, domain.ErrProjectCreateFailed
		}
		return nil, err
	}
	return created, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return mp.toDomain(), nil
}
