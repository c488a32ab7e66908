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
)

type MissionsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for missions
func GetMissionsRepo(client *mongo.Client) *MissionsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("MISSIONS_COLLECTION")
	return &MissionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Inserts a single mission into the database
func (r *MissionsRepo) InsertMission(ctx context.Context, mission *model.Mission) error {
	timer := utils.TrackDBOperation("insert", "missions")
	defer timer.ObserveDuration()

	if mission.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, mission)
	if err != nil {
		utils.TrackError("database", "mission_creation_failed")
		return err
	}

	return nil
}

// Retrieves all missions for a user
func (r *MissionsRepo) GetUserMissions(ctx context.Context, userID string) ([]*model.Mission, error) {
	timer := utils.TrackDBOperation("find", "missions")
	defer timer.ObserveDuration()

	var missions []*model.Mission
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "mission_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &missions); err != nil {
		utils.TrackError("database", "mission_decode_failed")
		return nil, err
	}
	return missions, nil
}

// Marks a mission completed and stamps the completion time
func (r *MissionsRepo) MarkCompleted(ctx context.Context, missionID string, userID string, completedAt time.Time) error {
	timer := utils.TrackDBOperation("update", "missions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":          missionID,
		"user_id":      userID,
		"is_completed": false,
	}

	update := bson.M{
		"$set": bson.M{
			"is_completed": true,
			"completed_at": completedAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "mission_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "mission_not_found")
		return errors.New("mission not found")
	}

	return nil
}

// Replaces the full mission set for one frequency: deletes the superseded
// cycle and inserts the replacement in its place.
func (r *MissionsRepo) ReplaceSet(ctx context.Context, userID string, frequency model.Frequency, missions []*model.Mission) error {
	timer := utils.TrackDBOperation("replace", "missions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":   userID,
		"frequency": frequency,
	}

	if _, err := r.MongoCollection.DeleteMany(ctx, filter); err != nil {
		utils.TrackError("database", "mission_set_delete_failed")
		return err
	}

	if len(missions) == 0 {
		return nil
	}

	docs := make([]interface{}, len(missions))
	for i, m := range missions {
		docs[i] = m
	}

	if _, err := r.MongoCollection.InsertMany(ctx, docs); err != nil {
		utils.TrackError("database", "mission_set_insert_failed")
		return err
	}

	return nil
}

// Counts completed missions for a user and frequency
func (r *MissionsRepo) CompletedCount(ctx context.Context, userID string, frequency model.Frequency) (int, error) {
	timer := utils.TrackDBOperation("count", "missions")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx,
		bson.M{"user_id": userID, "frequency": frequency, "is_completed": true})
	if err != nil {
		utils.TrackError("database", "mission_count_failed")
		return 0, err
	}
	return int(count), nil
}
