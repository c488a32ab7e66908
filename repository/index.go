package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize collections
	missionsCollection := db.Collection("missions")
	progressCollection := db.Collection("progress")
	moodsCollection := db.Collection("moods")
	achievementsCollection := db.Collection("achievements")

	// Define indexes
	missionIndexes := []mongo.IndexModel{
		// Frequency set lookup (reset and replace operate per set)
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "frequency", Value: 1},
			},
			Options: options.Index().
				SetName("user_frequency_set").
				SetUnique(false),
		},
		// Reset sweep index
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "reset_time", Value: 1},
			},
			Options: options.Index().
				SetName("user_reset_time"),
		},
	}

	progressIndexes := []mongo.IndexModel{
		// One progress document per user
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_progress_unique").
				SetUnique(true),
		},
	}

	moodIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().
				SetName("user_moods_date"),
		},
	}

	achievementIndexes := []mongo.IndexModel{
		// Each achievement unlocks at most once per user
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "achievement_id", Value: 1},
			},
			Options: options.Index().
				SetName("user_achievement_unique").
				SetUnique(true),
		},
	}

	// Create indexes for missions
	_, err := missionsCollection.Indexes().CreateMany(ctx, missionIndexes)
	if err != nil {
		return fmt.Errorf("failed to create missions indexes: %w", err)
	}

	// Create indexes for progress
	_, err = progressCollection.Indexes().CreateMany(ctx, progressIndexes)
	if err != nil {
		return fmt.Errorf("failed to create progress indexes: %w", err)
	}

	// Create indexes for moods
	_, err = moodsCollection.Indexes().CreateMany(ctx, moodIndexes)
	if err != nil {
		return fmt.Errorf("failed to create moods indexes: %w", err)
	}

	// Create indexes for achievements
	_, err = achievementsCollection.Indexes().CreateMany(ctx, achievementIndexes)
	if err != nil {
		return fmt.Errorf("failed to create achievements indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
