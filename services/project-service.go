package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/models"
	"github.com/rahulranjandev/trello-clone/repositories"
)

// ProjectService orchestrates project operations. Ownership is re-derived
// from the stored document on every mutating call, never cached.
type ProjectService struct {
	projectRepo repositories.ProjectRepository
	hierarchy   *HierarchyService
}

func NewProjectService(projectRepo repositories.ProjectRepository, hierarchy *HierarchyService) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, hierarchy: hierarchy}
}

func (s *ProjectService) Create(ctx context.Context, userID primitive.ObjectID, name, description string) (*models.Project, error) {
	project := &models.Project{
		Name:        name,
		Description: description,
		UserID:      userID,
		TaskBoards:  []primitive.ObjectID{},
		CreatedAt:   time.Now(),
	}

	return s.projectRepo.Create(ctx, project)
}

func (s *ProjectService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Project, error) {
	return s.projectRepo.GetByUser(ctx, userID)
}

// GetOwned resolves the project id and verifies the caller owns it.
// Validation order: id syntax, existence, ownership.
func (s *ProjectService) GetOwned(ctx context.Context, projectID string, userID primitive.ObjectID) (*models.Project, error) {
	id, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: project id", ErrInvalidID)
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project", ErrNotFound)
	}
	if project.UserID != userID {
		return nil, fmt.Errorf("%w: project belongs to another user", ErrForbidden)
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, projectID string, userID primitive.ObjectID, name, description *string) (*models.Project, error) {
	project, err := s.GetOwned(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.projectRepo.Update(ctx, project.ID, repositories.ProjectUpdate{Name: name, Description: description})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: project", ErrNotFound)
	}
	return updated, nil
}

// Delete removes the project and cascades to its boards and their tasks.
func (s *ProjectService) Delete(ctx context.Context, projectID string, userID primitive.ObjectID) error {
	project, err := s.GetOwned(ctx, projectID, userID)
	if err != nil {
		return err
	}

	return s.hierarchy.CascadeDeleteProject(ctx, project)
}
