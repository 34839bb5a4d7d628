package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusBacklog      TaskStatus = "Backlog"
	StatusInDiscussion TaskStatus = "In Discussion"
	StatusInProgress   TaskStatus = "In Progress"
	StatusDone         TaskStatus = "Done"
)

// IsValid reports whether s is one of the four known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusBacklog, StatusInDiscussion, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	TaskBoardID primitive.ObjectID   `bson:"taskBoardId" json:"taskBoardId"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Status      TaskStatus           `bson:"status" json:"status"`
	Tags        []string             `bson:"tags" json:"tags"`
	DueDate     time.Time            `bson:"dueDate" json:"dueDate"`
	Assignees   []primitive.ObjectID `bson:"assignees" json:"assignees"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
}
