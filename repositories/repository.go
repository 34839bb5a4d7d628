// Package repositories contains the persistence access layer: one repository
// per entity, each exposing point operations against a single collection.
// Update methods use merge semantics, fields left nil are untouched. Delete
// methods return the pre-delete snapshot, or nil when the entity was absent.
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, update ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	AddTaskBoard(ctx context.Context, projectID, taskBoardID primitive.ObjectID) error
	RemoveTaskBoard(ctx context.Context, projectID, taskBoardID primitive.ObjectID) error
}

type TaskBoardRepository interface {
	Create(ctx context.Context, board *models.TaskBoard) (*models.TaskBoard, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.TaskBoard, error)
	GetByProject(ctx context.Context, projectID primitive.ObjectID) ([]*models.TaskBoard, error)
	Update(ctx context.Context, id primitive.ObjectID, update TaskBoardUpdate) (*models.TaskBoard, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.TaskBoard, error)
	DeleteByProject(ctx context.Context, projectID primitive.ObjectID) (int64, error)
	AddTask(ctx context.Context, boardID, taskID primitive.ObjectID) error
	RemoveTask(ctx context.Context, boardID, taskID primitive.ObjectID) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	GetByTaskBoard(ctx context.Context, boardID primitive.ObjectID) ([]*models.Task, error)
	Update(ctx context.Context, id primitive.ObjectID, update TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	DeleteByTaskBoards(ctx context.Context, boardIDs []primitive.ObjectID) (int64, error)
	SetTaskBoard(ctx context.Context, taskID, boardID primitive.ObjectID) error
}

// UserUpdate is a partial update; nil fields are left as they are.
type UserUpdate struct {
	Name  *string
	Email *string
}

type ProjectUpdate struct {
	Name        *string
	Description *string
}

type TaskBoardUpdate struct {
	Name *string
}

type TaskUpdate struct {
	Name        *string
	Description *string
	Status      *models.TaskStatus
	Tags        *[]string
	DueDate     *time.Time
	Assignees   *[]primitive.ObjectID
}
