package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MoodsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for mood entries
func GetMoodsRepo(client *mongo.Client) *MoodsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("MOODS_COLLECTION")
	return &MoodsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Records a mood entry
func (r *MoodsRepo) InsertMood(ctx context.Context, entry *model.MoodEntry) error {
	timer := utils.TrackDBOperation("insert", "moods")
	defer timer.ObserveDuration()

	if entry.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, entry)
	if err != nil {
		utils.TrackError("database", "mood_creation_failed")
		return err
	}

	return nil
}

// Retrieves the most recent mood entries for a user, newest first
func (r *MoodsRepo) GetUserMoods(ctx context.Context, userID string, limit int) ([]*model.MoodEntry, error) {
	timer := utils.TrackDBOperation("find", "moods")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	var entries []*model.MoodEntry
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "mood_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "mood_decode_failed")
		return nil, err
	}
	return entries, nil
}

// Counts all mood entries for a user
func (r *MoodsRepo) CountUserMoods(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx,
		bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
