package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is owned by exactly one user. TaskBoards mirrors the set of task
// boards whose projectId points back at this project.
type Project struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	UserID      primitive.ObjectID   `bson:"userId" json:"userId"`
	TaskBoards  []primitive.ObjectID `bson:"taskBoards" json:"taskBoards"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
}
