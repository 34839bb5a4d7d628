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

type MongoProjectRepository struct {
	collection *mongo.Collection
}

func NewMongoProjectRepository(collection *mongo.Collection) *MongoProjectRepository {
	return &MongoProjectRepository{collection: collection}
}

func (r *MongoProjectRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	if project.TaskBoards == nil {
		project.TaskBoards = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %v", err)
	}

	project.ID = result.InsertedID.(primitive.ObjectID)
	return project, nil
}

func (r *MongoProjectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *MongoProjectRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve projects: %v", err)
	}
	defer cursor.Close(ctx)

	// Decode into a non-nil slice so an owner without records lists as [].
	projects := []*models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %v", err)
	}
	return projects, nil
}

func (r *MongoProjectRepository) Update(ctx context.Context, id primitive.ObjectID, update ProjectUpdate) (*models.Project, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var project models.Project
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %v", err)
	}
	return &project, nil
}

func (r *MongoProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete project: %v", err)
	}
	return &project, nil
}

// AddTaskBoard pushes the board id onto the project's taskBoards array. The
// push does not deduplicate.
func (r *MongoProjectRepository) AddTaskBoard(ctx context.Context, projectID, taskBoardID primitive.ObjectID) error {
	filter := bson.M{"_id": projectID}
	update := bson.M{"$push": bson.M{"taskBoards": taskBoardID}}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add task board to project: %v", err)
	}
	return nil
}

func (r *MongoProjectRepository) RemoveTaskBoard(ctx context.Context, projectID, taskBoardID primitive.ObjectID) error {
	filter := bson.M{"_id": projectID}
	update := bson.M{"$pull": bson.M{"taskBoards": taskBoardID}}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove task board from project: %v", err)
	}
	return nil
}
