package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for user progress
func GetProgressRepo(client *mongo.Client) *ProgressRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("PROGRESS_COLLECTION")
	return &ProgressRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Fetches progress for a user; returns nil without error when none exists yet
func (r *ProgressRepo) GetProgress(ctx context.Context, userID string) (*model.UserProgress, error) {
	timer := utils.TrackDBOperation("find", "progress")
	defer timer.ObserveDuration()

	var progress model.UserProgress
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "progress_fetch_failed")
		return nil, err
	}
	return &progress, nil
}

// Writes the full progress document, creating it on first use
func (r *ProgressRepo) SaveProgress(ctx context.Context, progress *model.UserProgress) error {
	timer := utils.TrackDBOperation("upsert", "progress")
	defer timer.ObserveDuration()

	if progress.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	progress.UpdatedAt = time.Now()
	if progress.CreatedAt.IsZero() {
		progress.CreatedAt = progress.UpdatedAt
	}

	filter := bson.M{"user_id": progress.UserID}
	update := bson.M{"$set": progress}

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "progress_save_failed")
		return err
	}

	return nil
}
