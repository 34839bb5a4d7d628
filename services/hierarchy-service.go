package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/models"
	"github.com/rahulranjandev/trello-clone/repositories"
)

// HierarchyService keeps parent reference arrays consistent with child
// back-references across attach, detach, move and cascade operations.
//
// Every operation is a sequence of single-document writes. There is no
// transaction: a failure after the first write leaves the hierarchy partially
// updated (an orphan child, or a stale array entry). Callers surface the
// error; no compensating rollback is attempted.
type HierarchyService struct {
	projectRepo repositories.ProjectRepository
	boardRepo   repositories.TaskBoardRepository
	taskRepo    repositories.TaskRepository
}

func NewHierarchyService(
	projectRepo repositories.ProjectRepository,
	boardRepo repositories.TaskBoardRepository,
	taskRepo repositories.TaskRepository,
) *HierarchyService {
	return &HierarchyService{
		projectRepo: projectRepo,
		boardRepo:   boardRepo,
		taskRepo:    taskRepo,
	}
}

// AttachTaskBoard creates the board with its back-reference set, then appends
// its id to the parent project's taskBoards array.
func (s *HierarchyService) AttachTaskBoard(ctx context.Context, board *models.TaskBoard) (*models.TaskBoard, error) {
	created, err := s.boardRepo.Create(ctx, board)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.AddTaskBoard(ctx, created.ProjectID, created.ID); err != nil {
		return nil, fmt.Errorf("board created but not attached to project: %w", err)
	}
	return created, nil
}

// DetachTaskBoard deletes the board, its tasks, and pulls the board id from
// the parent project's taskBoards array, in that order.
func (s *HierarchyService) DetachTaskBoard(ctx context.Context, board *models.TaskBoard) error {
	if _, err := s.boardRepo.Delete(ctx, board.ID); err != nil {
		return err
	}

	if _, err := s.taskRepo.DeleteByTaskBoards(ctx, []primitive.ObjectID{board.ID}); err != nil {
		return err
	}

	return s.projectRepo.RemoveTaskBoard(ctx, board.ProjectID, board.ID)
}

// AttachTask creates the task with its back-reference set, then appends its id
// to the parent board's tasks array.
func (s *HierarchyService) AttachTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	created, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	if err := s.boardRepo.AddTask(ctx, created.TaskBoardID, created.ID); err != nil {
		return nil, fmt.Errorf("task created but not attached to board: %w", err)
	}
	return created, nil
}

// DetachTask deletes the task, then pulls its id from the parent board's
// tasks array.
func (s *HierarchyService) DetachTask(ctx context.Context, task *models.Task) error {
	if _, err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		return err
	}

	return s.boardRepo.RemoveTask(ctx, task.TaskBoardID, task.ID)
}

// MoveTask reparents the task onto toBoardID. Order is fixed: update the
// child's back-reference, pull from the old board, push onto the new one.
func (s *HierarchyService) MoveTask(ctx context.Context, task *models.Task, toBoardID primitive.ObjectID) error {
	if err := s.taskRepo.SetTaskBoard(ctx, task.ID, toBoardID); err != nil {
		return err
	}

	if err := s.boardRepo.RemoveTask(ctx, task.TaskBoardID, task.ID); err != nil {
		return err
	}

	return s.boardRepo.AddTask(ctx, toBoardID, task.ID)
}

// CascadeDeleteProject deletes the project, then its boards, then the tasks
// of those boards.
func (s *HierarchyService) CascadeDeleteProject(ctx context.Context, project *models.Project) error {
	boards, err := s.boardRepo.GetByProject(ctx, project.ID)
	if err != nil {
		return err
	}

	if _, err := s.projectRepo.Delete(ctx, project.ID); err != nil {
		return err
	}

	if _, err := s.boardRepo.DeleteByProject(ctx, project.ID); err != nil {
		return err
	}

	boardIDs := make([]primitive.ObjectID, 0, len(boards))
	for _, board := range boards {
		boardIDs = append(boardIDs, board.ID)
	}

	_, err = s.taskRepo.DeleteByTaskBoards(ctx, boardIDs)
	return err
}
