package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AchievementsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for unlocked achievements
func GetAchievementsRepo(client *mongo.Client) *AchievementsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("ACHIEVEMENTS_COLLECTION")
	return &AchievementsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Records an unlocked achievement
func (r *AchievementsRepo) InsertAchievement(ctx context.Context, achievement *model.Achievement) error {
	timer := utils.TrackDBOperation("insert", "achievements")
	defer timer.ObserveDuration()

	if achievement.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, achievement)
	if err != nil {
		utils.TrackError("database", "achievement_creation_failed")
		return err
	}

	return nil
}

// Reports whether the user already unlocked the given achievement
func (r *AchievementsRepo) HasAchievement(ctx context.Context, userID string, achievementID string) (bool, error) {
	timer := utils.TrackDBOperation("count", "achievements")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx,
		bson.M{"user_id": userID, "achievement_id": achievementID})
	if err != nil {
		utils.TrackError("database", "achievement_count_failed")
		return false, err
	}
	return count > 0, nil
}

// Retrieves all unlocked achievements for a user
func (r *AchievementsRepo) GetUserAchievements(ctx context.Context, userID string) ([]*model.Achievement, error) {
	timer := utils.TrackDBOperation("find", "achievements")
	defer timer.ObserveDuration()

	var achievements []*model.Achievement
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "achievement_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &achievements); err != nil {
		utils.TrackError("database", "achievement_decode_failed")
		return nil, err
	}
	return achievements, nil
}
