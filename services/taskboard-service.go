package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/models"
	"github.com/rahulranjandev/trello-clone/repositories"
)

// TaskBoardService orchestrates task board operations. Boards carry no owner
// of their own: ownership is resolved by walking board -> project -> user on
// every call.
type TaskBoardService struct {
	projectRepo repositories.ProjectRepository
	boardRepo   repositories.TaskBoardRepository
	hierarchy   *HierarchyService
}

func NewTaskBoardService(
	projectRepo repositories.ProjectRepository,
	boardRepo repositories.TaskBoardRepository,
	hierarchy *HierarchyService,
) *TaskBoardService {
	return &TaskBoardService{projectRepo: projectRepo, boardRepo: boardRepo, hierarchy: hierarchy}
}

// Create adds a board under a project owned by the caller and records it in
// the project's taskBoards array.
func (s *TaskBoardService) Create(ctx context.Context, projectID string, userID primitive.ObjectID, name string) (*models.TaskBoard, error) {
	project, err := s.ownedProject(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	board := &models.TaskBoard{
		ProjectID: project.ID,
		Name:      name,
		Tasks:     []primitive.ObjectID{},
		CreatedAt: time.Now(),
	}

	return s.hierarchy.AttachTaskBoard(ctx, board)
}

func (s *TaskBoardService) ListByProject(ctx context.Context, projectID string, userID primitive.ObjectID) ([]*models.TaskBoard, error) {
	project, err := s.ownedProject(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	return s.boardRepo.GetByProject(ctx, project.ID)
}

func (s *TaskBoardService) Update(ctx context.Context, boardID string, userID primitive.ObjectID, name *string) (*models.TaskBoard, error) {
	board, err := s.GetOwned(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.boardRepo.Update(ctx, board.ID, repositories.TaskBoardUpdate{Name: name})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: task board", ErrNotFound)
	}
	return updated, nil
}

// Delete removes the board, its tasks, and the reference held by the project.
func (s *TaskBoardService) Delete(ctx context.Context, boardID string, userID primitive.ObjectID) error {
	board, err := s.GetOwned(ctx, boardID, userID)
	if err != nil {
		return err
	}

	return s.hierarchy.DetachTaskBoard(ctx, board)
}

// GetOwned resolves the board id and walks the chain up to the owning user.
// Validation order: id syntax, board existence, project existence, ownership.
func (s *TaskBoardService) GetOwned(ctx context.Context, boardID string, userID primitive.ObjectID) (*models.TaskBoard, error) {
	id, err := primitive.ObjectIDFromHex(boardID)
	if err != nil {
		return nil, fmt.Errorf("%w: task board id", ErrInvalidID)
	}

	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, fmt.Errorf("%w: task board", ErrNotFound)
	}

	project, err := s.projectRepo.GetByID(ctx, board.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project", ErrNotFound)
	}
	if project.UserID != userID {
		return nil, fmt.Errorf("%w: task board belongs to another user", ErrForbidden)
	}

	return board, nil
}

func (s *TaskBoardService) ownedProject(ctx context.Context, projectID string, userID primitive.ObjectID) (*models.Project, error) {
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
