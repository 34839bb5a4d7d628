package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rahulranjandev/trello-clone/models"
)

type MongoTaskRepository struct {
	collection *mongo.Collection
}

func NewMongoTaskRepository(collection *mongo.Collection) *MongoTaskRepository {
	return &MongoTaskRepository{collection: collection}
}

func (r *MongoTaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}
	if task.Assignees == nil {
		task.Assignees = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %v", err)
	}

	task.ID = result.InsertedID.(primitive.ObjectID)
	return task, nil
}

func (r *MongoTaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *MongoTaskRepository) GetByTaskBoard(ctx context.Context, boardID primitive.ObjectID) ([]*models.Task, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"taskBoardId": boardID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %v", err)
	}
	defer cursor.Close(ctx)

	tasks := []*models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %v", err)
	}
	return tasks, nil
}

func (r *MongoTaskRepository) Update(ctx context.Context, id primitive.ObjectID, update TaskUpdate) (*models.Task, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.DueDate != nil {
		set["dueDate"] = *update.DueDate
	}
	if update.Assignees != nil {
		set["assignees"] = *update.Assignees
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var task models.Task
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %v", err)
	}
	return &task, nil
}

func (r *MongoTaskRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %v", err)
	}
	return &task, nil
}

func (r *MongoTaskRepository) DeleteByTaskBoards(ctx context.Context, boardIDs []primitive.ObjectID) (int64, error) {
	if len(boardIDs) == 0 {
		return 0, nil
	}

	result, err := r.collection.DeleteMany(ctx, bson.M{"taskBoardId": bson.M{"$in": boardIDs}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete tasks: %v", err)
	}
	return result.DeletedCount, nil
}

func (r *MongoTaskRepository) SetTaskBoard(ctx context.Context, taskID, boardID primitive.ObjectID) error {
	filter := bson.M{"_id": taskID}
	update := bson.M{"$set": bson.M{"taskBoardId": boardID}}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to move task: %v", err)
	}
	return nil
}
