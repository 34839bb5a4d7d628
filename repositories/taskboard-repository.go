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

type MongoTaskBoardRepository struct {
	collection *mongo.Collection
}

func NewMongoTaskBoardRepository(collection *mongo.Collection) *MongoTaskBoardRepository {
	return &MongoTaskBoardRepository{collection: collection}
}

func (r *MongoTaskBoardRepository) Create(ctx context.Context, board *models.TaskBoard) (*models.TaskBoard, error) {
	if board.ID.IsZero() {
		board.ID = primitive.NewObjectID()
	}
	if board.Tasks == nil {
		board.Tasks = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to create task board: %v", err)
	}

	board.ID = result.InsertedID.(primitive.ObjectID)
	return board, nil
}

func (r *MongoTaskBoardRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.TaskBoard, error) {
	var board models.TaskBoard
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&board)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *MongoTaskBoardRepository) GetByProject(ctx context.Context, projectID primitive.ObjectID) ([]*models.TaskBoard, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve task boards: %v", err)
	}
	defer cursor.Close(ctx)

	boards := []*models.TaskBoard{}
	if err := cursor.All(ctx, &boards); err != nil {
		return nil, fmt.Errorf("failed to decode task boards: %v", err)
	}
	return boards, nil
}

func (r *MongoTaskBoardRepository) Update(ctx context.Context, id primitive.ObjectID, update TaskBoardUpdate) (*models.TaskBoard, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var board models.TaskBoard
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&board)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task board: %v", err)
	}
	return &board, nil
}

func (r *MongoTaskBoardRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.TaskBoard, error) {
	var board models.TaskBoard
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&board)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete task board: %v", err)
	}
	return &board, nil
}

func (r *MongoTaskBoardRepository) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete task boards: %v", err)
	}
	return result.DeletedCount, nil
}

func (r *MongoTaskBoardRepository) AddTask(ctx context.Context, boardID, taskID primitive.ObjectID) error {
	filter := bson.M{"_id": boardID}
	update := bson.M{"$push": bson.M{"tasks": taskID}}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add task to board: %v", err)
	}
	return nil
}

func (r *MongoTaskBoardRepository) RemoveTask(ctx context.Context, boardID, taskID primitive.ObjectID) error {
	filter := bson.M{"_id": boardID}
	update := bson.M{"$pull": bson.M{"tasks": taskID}}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove task from board: %v", err)
	}
	return nil
}
