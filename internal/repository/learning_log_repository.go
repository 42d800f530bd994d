package repository

import (
	"context"

	"listening-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LearningLogRepository struct {
	Col *mongo.Collection
}

func NewLearningLogRepository(db *mongo.Database) *LearningLogRepository {
	return &LearningLogRepository{Col: db.Collection("learning_logs")}
}

func (r *LearningLogRepository) Create(ctx context.Context, log *models.LearningLog) error {
	res, err := r.Col.InsertOne(ctx, log)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		log.ID = oid.Hex()
	}
	return nil
}

// FindByUser returns a user's full attempt history in chronological order.
// The created_at sort is tie-broken by _id so the "recent attempts" window in
// profile analysis is stable.
func (r *LearningLogRepository) FindByUser(ctx context.Context, userID string) ([]models.LearningLog, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var logs []models.LearningLog
	for cur.Next(ctx) {
		var l models.LearningLog
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, cur.Err()
}

// FindRecentByUser returns the user's newest logs, newest first.
func (r *LearningLogRepository) FindRecentByUser(ctx context.Context, userID string, limit int64) ([]models.LearningLog, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var logs []models.LearningLog
	for cur.Next(ctx) {
		var l models.LearningLog
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, cur.Err()
}

// PlayStats aggregates attempt counts and average score per question across
// all users, in a single pipeline.
func (r *LearningLogRepository) PlayStats(ctx context.Context) (map[string]models.PlayStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"question_id": bson.M{"$ne": ""}}}},
		{{Key: "$group", Value: bson.M{
			"_id":        "$question_id",
			"play_count": bson.M{"$sum": 1},
			"avg_score":  bson.M{"$avg": "$score"},
		}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	stats := make(map[string]models.PlayStats)
	for cur.Next(ctx) {
		var s models.PlayStats
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		stats[s.QuestionID] = s
	}
	return stats, cur.Err()
}
