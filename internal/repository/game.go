package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain/game"
	errs "goban/internal/errors"
)

const recordsCollection = "records"

// GameRepository keeps record summaries (with the raw SGF) in MongoDB and
// caches the raw SGF text in Redis.
type GameRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
	mongo *mongo.Database
}

func NewGameRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client, mongo *mongo.Database) *GameRepository {
	return &GameRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
		mongo: mongo,
	}
}

func (g *GameRepository) GenerateRecordID() string {
	return uuid.New().String()
}

func sgfKey(recordID string) string {
	return "sgf:" + recordID
}

func (g *GameRepository) PutRecord(ctx context.Context, rec game.Record) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := g.mongo.Collection(recordsCollection).InsertOne(ctx, rec)
	if err != nil {
		g.log.Errorf("failed to insert record to database: %v", err)
		return fmt.Errorf("%w: %v", errs.ErrInternal, err)
	}

	if err = g.SaveSGFToRedis(ctx, rec.RecordID, rec.SGF); err != nil {
		// mongo already has the text, the cache is refilled on read
		g.log.Warnw("failed to cache record sgf", "record_id", rec.RecordID, "error", err)
	}

	g.log.Infof("record inserted successfully with id: %s", rec.RecordID)
	return nil
}

func (g *GameRepository) GetRecord(ctx context.Context, recordID string) (game.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec game.Record
	err := g.mongo.Collection(recordsCollection).FindOne(ctx, bson.M{"record_id": recordID}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return game.Record{}, fmt.Errorf("%w: %s", errs.ErrRecordNotFound, recordID)
	} else if err != nil {
		g.log.Error(err)
		return game.Record{}, fmt.Errorf("%w: %v", errs.ErrInternal, err)
	}
	return rec, nil
}

// LoadSGF reads the cached text and falls back to the archive on a miss.
func (g *GameRepository) LoadSGF(ctx context.Context, recordID string) (string, error) {
	text, err := g.LoadSGFFromRedis(ctx, recordID)
	if err == nil {
		return text, nil
	}
	if !errors.Is(err, redis.Nil) {
		g.log.Warnw("redis read failed, falling back to mongo", "record_id", recordID, "error", err)
	}

	rec, err := g.GetRecord(ctx, recordID)
	if err != nil {
		return "", err
	}
	if err = g.SaveSGFToRedis(ctx, recordID, rec.SGF); err != nil {
		g.log.Warnw("failed to refill sgf cache", "record_id", recordID, "error", err)
	}
	return rec.SGF, nil
}

func (g *GameRepository) SaveSGFToRedis(ctx context.Context, recordID string, sgfText string) error {
	ttl := time.Duration(g.cfg.RecordTTLHours) * time.Hour
	return g.redis.Set(ctx, sgfKey(recordID), sgfText, ttl).Err()
}

func (g *GameRepository) LoadSGFFromRedis(ctx context.Context, recordID string) (string, error) {
	return g.redis.Get(ctx, sgfKey(recordID)).Result()
}
