package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/to404hanga/hydro_gateway/constants"
	"github.com/to404hanga/hydro_gateway/model"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
	"github.com/to404hanga/hydro_gateway/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// mockSession 复用 mtest 的客户端, Close 只计数
type mockSession struct {
	db     *mongo.Database
	closed int
}

func (s *mockSession) Database() *mongo.Database {
	return s.db
}

func (s *mockSession) Close(context.Context) error {
	s.closed++
	return nil
}

type mockConnector struct {
	sess     *mockSession
	err      error
	connects int
}

func (c *mockConnector) Connect(context.Context) (mongodb.Session, error) {
	c.connects++
	if c.err != nil {
		return nil, c.err
	}
	return c.sess, nil
}

func newMockConnector(mt *mtest.T) *mockConnector {
	return &mockConnector{sess: &mockSession{db: mt.DB}}
}

func ns(coll string) string {
	return "hydro." + coll
}

func lastFilter(mt *mtest.T) bson.Raw {
	return mt.GetStartedEvent().Command.Lookup("filter").Document()
}

func TestDocumentServiceListContests(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("shapes contests", func(mt *mtest.T) {
		id1, id2, contestDocID := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
		begin := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(constants.DocumentCollection), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id1},
				{Key: "docId", Value: contestDocID},
				{Key: "title", Value: "Weekly Round"},
				{Key: "beginAt", Value: primitive.NewDateTimeFromTime(begin)},
				{Key: "pids", Value: bson.A{int32(1001), int32(1002)}},
			},
			bson.D{
				{Key: "_id", Value: id2},
				{Key: "docId", Value: int32(7)},
				{Key: "title", Value: "Draft"},
			},
		))

		conn := newMockConnector(mt)
		items, err := NewDocumentService(conn, logger.NewNopLogger()).ListContests(context.Background(), "system")
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, id1.Hex(), items[0].ID)
		assert.Equal(t, contestDocID.Hex(), items[0].DocID)
		assert.Equal(t, "Weekly Round", *items[0].Title)
		require.NotNil(t, items[0].BeginAt)
		assert.Equal(t, "Wed, 01 May 2024 12:00:00 GMT", items[0].BeginAt.String())
		assert.Equal(t, []int64{1001, 1002}, items[0].Pids)

		assert.Equal(t, "7", items[1].DocID)
		assert.Nil(t, items[1].BeginAt)
		assert.Equal(t, []int64{}, items[1].Pids)

		filter := lastFilter(mt)
		assert.Equal(t, "system", filter.Lookup("domainId").StringValue())
		assert.Equal(t, int64(model.DocTypeContest), filter.Lookup("docType").AsInt64())
		assert.Equal(t, 1, conn.sess.closed)
	})

	mt.Run("empty result", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(constants.DocumentCollection), mtest.FirstBatch))

		items, err := NewDocumentService(newMockConnector(mt), logger.NewNopLogger()).ListContests(context.Background(), "none")
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	mt.Run("missing title", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(constants.DocumentCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}},
		))

		conn := newMockConnector(mt)
		_, err := NewDocumentService(conn, logger.NewNopLogger()).ListContests(context.Background(), "system")
		require.Error(t, err)
		assert.True(t, model.IsMissingField(err))
		assert.Contains(t, err.Error(), `missing field "title"`)
		assert.Equal(t, 1, conn.sess.closed)
	})
}

func TestDocumentServiceListProblems(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("scores and annotates", func(mt *mtest.T) {
		good, bad, nullCfg := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(constants.DocumentCollection), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: good},
				{Key: "docId", Value: int32(1001)},
				{Key: "title", Value: "A+B"},
				{Key: "pid", Value: "P1001"},
				{Key: "config", Value: "subtasks:\n  - score: 40\n  - score: 60\n  - {}\n"},
			},
			bson.D{
				{Key: "_id", Value: bad},
				{Key: "docId", Value: int32(1002)},
				{Key: "title", Value: "Broken"},
				{Key: "pid", Value: "P1002"},
				{Key: "config", Value: "subtasks: [\n"},
			},
			bson.D{
				{Key: "_id", Value: nullCfg},
				{Key: "docId", Value: int32(1003)},
				{Key: "title", Value: "No config"},
				{Key: "pid", Value: nil},
				{Key: "config", Value: nil},
			},
		))

		conn := newMockConnector(mt)
		items, err := NewDocumentService(conn, logger.NewNopLogger()).ListProblems(context.Background(), "system")
		require.NoError(t, err)
		require.Len(t, items, 3)

		assert.Equal(t, good.Hex(), items[0].ID)
		assert.Equal(t, int32(1001), items[0].DocID)
		assert.Equal(t, "P1001", *items[0].Pid)
		assert.Equal(t, float64(100), items[0].Score)
		assert.Empty(t, items[0].Error)

		assert.Equal(t, bad.Hex(), items[1].ID)
		assert.Zero(t, items[1].Score)
		assert.Equal(t, constants.MsgInvalidConfigFormat, items[1].Error)

		assert.Nil(t, items[2].Pid)
		assert.Equal(t, constants.MsgInvalidConfigFormat, items[2].Error)

		assert.Equal(t, int64(model.DocTypeProblem), lastFilter(mt).Lookup("docType").AsInt64())
		assert.Equal(t, 1, conn.sess.closed)
	})

	mt.Run("missing pid", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(constants.DocumentCollection), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "docId", Value: int32(1)},
				{Key: "title", Value: "t"},
				{Key: "config", Value: ""},
			},
		))

		_, err := NewDocumentService(newMockConnector(mt), logger.NewNopLogger()).ListProblems(context.Background(), "system")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing field "pid"`)
	})

	mt.Run("query error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad query",
		}))

		conn := newMockConnector(mt)
		_, err := NewDocumentService(conn, logger.NewNopLogger()).ListProblems(context.Background(), "system")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad query")
		assert.Equal(t, 1, conn.sess.closed)
	})
}

func TestRecordServiceListRecords(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("shapes records", func(mt *mtest.T) {
		contest, rid := primitive.NewObjectID(), primitive.NewObjectID()
		judged := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(constants.RecordCollection), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: rid},
				{Key: "status", Value: int32(1)},
				{Key: "uid", Value: int32(2)},
				{Key: "pid", Value: int32(1001)},
				{Key: "score", Value: 66.5},
				{Key: "judgeAt", Value: primitive.NewDateTimeFromTime(judged)},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "status", Value: int32(0)},
				{Key: "uid", Value: int32(3)},
				{Key: "pid", Value: int32(1002)},
				{Key: "score", Value: int32(0)},
			},
		))

		conn := newMockConnector(mt)
		items, err := NewRecordService(conn, logger.NewNopLogger()).ListRecords(context.Background(), "system", contest)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, rid.Hex(), items[0].ID)
		assert.Equal(t, int64(1), *items[0].Status)
		assert.Equal(t, int64(2), *items[0].UID)
		assert.Equal(t, int64(1001), *items[0].Pid)
		assert.Equal(t, 66.5, *items[0].Score)
		require.NotNil(t, items[0].JudgeAt)
		assert.Nil(t, items[1].JudgeAt)

		filter := lastFilter(mt)
		assert.Equal(t, "system", filter.Lookup("domainId").StringValue())
		assert.Equal(t, contest, filter.Lookup("contest").ObjectID())
		assert.Equal(t, 1, conn.sess.closed)
	})

	mt.Run("missing score", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(constants.RecordCollection), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "status", Value: int32(1)},
				{Key: "uid", Value: int32(2)},
				{Key: "pid", Value: int32(3)},
			},
		))

		_, err := NewRecordService(newMockConnector(mt), logger.NewNopLogger()).
			ListRecords(context.Background(), "system", primitive.NewObjectID())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing field "score"`)
	})
}

func TestUserServiceGetUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(constants.UserCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int32(42)}, {Key: "uname", Value: "alice"}},
		))

		conn := newMockConnector(mt)
		user, err := NewUserService(conn, logger.NewNopLogger()).GetUser(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "alice", *user.Uname)
		assert.Equal(t, int64(42), lastFilter(mt).Lookup("_id").AsInt64())
		assert.Equal(t, 1, conn.sess.closed)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(constants.UserCollection), mtest.FirstBatch))

		conn := newMockConnector(mt)
		_, err := NewUserService(conn, logger.NewNopLogger()).GetUser(context.Background(), 42)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Equal(t, 1, conn.sess.closed)
	})

	mt.Run("missing uname", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(constants.UserCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int32(42)}},
		))

		_, err := NewUserService(newMockConnector(mt), logger.NewNopLogger()).GetUser(context.Background(), 42)
		require.Error(t, err)
		assert.True(t, model.IsMissingField(err))
	})
}

func TestUserServiceListUserGroups(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("shapes groups", func(mt *mtest.T) {
		gid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(constants.UserGroupCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: gid}, {Key: "name", Value: "class-1"}, {Key: "uids", Value: bson.A{int32(2), int32(3)}}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "empty"}},
		))

		conn := newMockConnector(mt)
		items, err := NewUserService(conn, logger.NewNopLogger()).ListUserGroups(context.Background(), "system")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, gid.Hex(), items[0].ID)
		assert.Equal(t, "class-1", *items[0].Name)
		assert.Equal(t, []int64{2, 3}, items[0].Uids)
		assert.Equal(t, []int64{}, items[1].Uids)
		assert.Equal(t, "system", lastFilter(mt).Lookup("domainId").StringValue())
		assert.Equal(t, 1, conn.sess.closed)
	})
}

func TestServicesConnectFailure(t *testing.T) {
	ctx := context.Background()
	conn := &mockConnector{err: mongodb.ErrConnect}
	l := logger.NewNopLogger()

	_, err := NewDocumentService(conn, l).ListContests(ctx, "system")
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)

	_, err = NewDocumentService(conn, l).ListProblems(ctx, "system")
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)

	_, err = NewRecordService(conn, l).ListRecords(ctx, "system", primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)

	_, err = NewUserService(conn, l).GetUser(ctx, 1)
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)

	_, err = NewUserService(conn, l).ListUserGroups(ctx, "system")
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)

	assert.Equal(t, 5, conn.connects)
}
