package repo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain/game"
	errs "goban/internal/errors"
)

const storedSGF = "(;SZ[19]\nAB[dd][pp]\n;B[dp];W[pd]\n"

func newTestRepository(mt *mtest.T) (*GameRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(mt)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	mt.Cleanup(func() { _ = client.Close() })

	cfg := bootstrap.Config{RecordTTLHours: 24}
	return NewGameRepository(cfg, zap.NewNop().Sugar(), client, mt.DB), mr
}

func recordDoc(mt *mtest.T, batch ...bson.D) bson.D {
	return mtest.CreateCursorResponse(0, mt.DB.Name()+"."+recordsCollection, mtest.FirstBatch, batch...)
}

func TestGenerateRecordID(t *testing.T) {
	r := NewGameRepository(bootstrap.Config{}, zap.NewNop().Sugar(), nil, nil)

	first := r.GenerateRecordID()
	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, r.GenerateRecordID())
}

func TestSgfKey(t *testing.T) {
	assert.Equal(t, "sgf:rec-1", sgfKey("rec-1"))
}

func TestLoadSGF(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	stored := bson.D{{Key: "record_id", Value: "rec-1"}, {Key: "sgf", Value: storedSGF}}

	mt.Run("cache hit", func(mt *mtest.T) {
		r, mr := newTestRepository(mt)
		require.NoError(mt, mr.Set(sgfKey("rec-1"), storedSGF))

		// no mongo replies are scripted, a database read would fail
		text, err := r.LoadSGF(ctx, "rec-1")
		require.NoError(mt, err)
		assert.Equal(mt, storedSGF, text)
	})

	mt.Run("cache miss refills from mongo", func(mt *mtest.T) {
		r, mr := newTestRepository(mt)
		mt.AddMockResponses(recordDoc(mt, stored))

		text, err := r.LoadSGF(ctx, "rec-1")
		require.NoError(mt, err)
		assert.Equal(mt, storedSGF, text)

		cached, err := mr.Get(sgfKey("rec-1"))
		require.NoError(mt, err)
		assert.Equal(mt, storedSGF, cached)
		assert.Equal(mt, 24*time.Hour, mr.TTL(sgfKey("rec-1")))
	})

	mt.Run("redis down falls back to mongo", func(mt *mtest.T) {
		r, mr := newTestRepository(mt)
		mr.Close()
		mt.AddMockResponses(recordDoc(mt, stored))

		text, err := r.LoadSGF(ctx, "rec-1")
		require.NoError(mt, err)
		assert.Equal(mt, storedSGF, text)
	})

	mt.Run("not found", func(mt *mtest.T) {
		r, _ := newTestRepository(mt)
		mt.AddMockResponses(recordDoc(mt))

		_, err := r.LoadSGF(ctx, "missing")
		assert.ErrorIs(mt, err, errs.ErrRecordNotFound)
	})
}

func TestGetRecord(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("found", func(mt *mtest.T) {
		r, _ := newTestRepository(mt)
		mt.AddMockResponses(recordDoc(mt, bson.D{
			{Key: "record_id", Value: "rec-1"},
			{Key: "winner", Value: "black"},
			{Key: "moves", Value: 2},
		}))

		rec, err := r.GetRecord(ctx, "rec-1")
		require.NoError(mt, err)
		assert.Equal(mt, "rec-1", rec.RecordID)
		assert.Equal(mt, "black", rec.Winner)
		assert.Equal(mt, 2, rec.Moves)
	})

	mt.Run("no documents", func(mt *mtest.T) {
		r, _ := newTestRepository(mt)
		mt.AddMockResponses(recordDoc(mt))

		_, err := r.GetRecord(ctx, "missing")
		assert.ErrorIs(mt, err, errs.ErrRecordNotFound)
	})

	mt.Run("database error", func(mt *mtest.T) {
		r, _ := newTestRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad query",
		}))

		_, err := r.GetRecord(ctx, "rec-1")
		assert.ErrorIs(mt, err, errs.ErrInternal)
		assert.NotErrorIs(mt, err, errs.ErrRecordNotFound)
	})
}

func TestPutRecord(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	rec := game.Record{RecordID: "rec-1", Winner: "black", SGF: storedSGF}

	mt.Run("stores and caches", func(mt *mtest.T) {
		r, mr := newTestRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, r.PutRecord(ctx, rec))
		cached, err := mr.Get(sgfKey("rec-1"))
		require.NoError(mt, err)
		assert.Equal(mt, storedSGF, cached)
	})

	mt.Run("cache failure is tolerated", func(mt *mtest.T) {
		r, mr := newTestRepository(mt)
		mr.Close()
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, r.PutRecord(ctx, rec))
	})

	mt.Run("insert failure", func(mt *mtest.T) {
		r, mr := newTestRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Name:    "DuplicateKey",
			Message: "duplicate key",
		}))

		err := r.PutRecord(ctx, rec)
		assert.ErrorIs(mt, err, errs.ErrInternal)
		assert.False(mt, mr.Exists(sgfKey("rec-1")))
	})
}
