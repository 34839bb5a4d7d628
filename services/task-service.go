package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/models"
	"github.com/rahulranjandev/trello-clone/repositories"
)

// CreateTaskInput carries the task fields accepted on creation.
type CreateTaskInput struct {
	Name        string
	Description string
	Status      models.TaskStatus
	Tags        []string
	DueDate     time.Time
	Assignees   []primitive.ObjectID
}

// UpdateTaskInput is a partial update; nil fields are left untouched.
type UpdateTaskInput struct {
	Name        *string
	Description *string
	Status      *models.TaskStatus
	Tags        *[]string
	DueDate     *time.Time
	Assignees   *[]primitive.ObjectID
}

// TaskService orchestrates task operations. Ownership is resolved by walking
// task -> board -> project -> user on every call.
type TaskService struct {
	projectRepo repositories.ProjectRepository
	boardRepo   repositories.TaskBoardRepository
	taskRepo    repositories.TaskRepository
	hierarchy   *HierarchyService
}

func NewTaskService(
	projectRepo repositories.ProjectRepository,
	boardRepo repositories.TaskBoardRepository,
	taskRepo repositories.TaskRepository,
	hierarchy *HierarchyService,
) *TaskService {
	return &TaskService{
		projectRepo: projectRepo,
		boardRepo:   boardRepo,
		taskRepo:    taskRepo,
		hierarchy:   hierarchy,
	}
}

// Create adds a task under a board owned by the caller and records it in the
// board's tasks array. Status defaults to Backlog.
func (s *TaskService) Create(ctx context.Context, boardID string, userID primitive.ObjectID, input CreateTaskInput) (*models.Task, error) {
	board, err := s.ownedBoard(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = models.StatusBacklog
	}
	if !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown task status %q", ErrValidation, input.Status)
	}
	if input.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", ErrValidation)
	}

	task := &models.Task{
		TaskBoardID: board.ID,
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		Tags:        input.Tags,
		DueDate:     input.DueDate,
		Assignees:   input.Assignees,
		CreatedAt:   time.Now(),
	}

	return s.hierarchy.AttachTask(ctx, task)
}

func (s *TaskService) Get(ctx context.Context, taskID string, userID primitive.ObjectID) (*models.Task, error) {
	return s.getOwned(ctx, taskID, userID)
}

func (s *TaskService) ListByBoard(ctx context.Context, boardID string, userID primitive.ObjectID) ([]*models.Task, error) {
	board, err := s.ownedBoard(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.GetByTaskBoard(ctx, board.ID)
}

func (s *TaskService) Update(ctx context.Context, taskID string, userID primitive.ObjectID, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.getOwned(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown task status %q", ErrValidation, *input.Status)
	}

	updated, err := s.taskRepo.Update(ctx, task.ID, repositories.TaskUpdate{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		Tags:        input.Tags,
		DueDate:     input.DueDate,
		Assignees:   input.Assignees,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: task", ErrNotFound)
	}
	return updated, nil
}

// Move reparents the task onto another board. Both boards must belong to
// projects owned by the caller.
func (s *TaskService) Move(ctx context.Context, taskID, toBoardID string, userID primitive.ObjectID) (*models.Task, error) {
	task, err := s.getOwned(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	target, err := s.ownedBoard(ctx, toBoardID, userID)
	if err != nil {
		return nil, err
	}

	if target.ID == task.TaskBoardID {
		return task, nil
	}

	if err := s.hierarchy.MoveTask(ctx, task, target.ID); err != nil {
		return nil, err
	}

	task.TaskBoardID = target.ID
	return task, nil
}

// Delete removes the task and the reference held by its board.
func (s *TaskService) Delete(ctx context.Context, taskID string, userID primitive.ObjectID) error {
	task, err := s.getOwned(ctx, taskID, userID)
	if err != nil {
		return err
	}

	return s.hierarchy.DetachTask(ctx, task)
}

// getOwned resolves the task id and walks the chain up to the owning user.
// Validation order: id syntax, task existence, board existence, project
// existence, ownership.
func (s *TaskService) getOwned(ctx context.Context, taskID string, userID primitive.ObjectID) (*models.Task, error) {
	id, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, fmt.Errorf("%w: task id", ErrInvalidID)
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task", ErrNotFound)
	}

	board, err := s.boardRepo.GetByID(ctx, task.TaskBoardID)
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
		return nil, fmt.Errorf("%w: task belongs to another user", ErrForbidden)
	}

	return task, nil
}

func (s *TaskService) ownedBoard(ctx context.Context, boardID string, userID primitive.ObjectID) (*models.TaskBoard, error) {
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
