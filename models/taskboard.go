package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskBoard belongs to exactly one project. Tasks mirrors the set of tasks
// whose taskBoardId points back at this board.
type TaskBoard struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ProjectID primitive.ObjectID   `bson:"projectId" json:"projectId"`
	Name      string               `bson:"name" json:"name"`
	Tasks     []primitive.ObjectID `bson:"tasks" json:"tasks"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}
