package mongodb

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/to404hanga/hydro_gateway/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeSession struct {
	closed int
}

func (s *fakeSession) Database() *mongo.Database {
	return nil
}

func (s *fakeSession) Close(context.Context) error {
	s.closed++
	return nil
}

type fakeConnector struct {
	sess *fakeSession
	err  error
}

func (c *fakeConnector) Connect(context.Context) (Session, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.sess, nil
}

func TestWithSessionReleases(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	testCases := []struct {
		name    string
		fn      func(db *mongo.Database) error
		wantErr error
	}{
		{
			name: "success",
			fn:   func(*mongo.Database) error { return nil },
		},
		{
			name:    "query failure",
			fn:      func(*mongo.Database) error { return boom },
			wantErr: boom,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sess := &fakeSession{}
			err := WithSession(ctx, &fakeConnector{sess: sess}, logger.NewNopLogger(), tc.fn)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, sess.closed)
		})
	}
}

func TestWithSessionConnectFailure(t *testing.T) {
	called := false
	err := WithSession(context.Background(), &fakeConnector{err: ErrConnect}, logger.NewNopLogger(),
		func(*mongo.Database) error {
			called = true
			return nil
		})
	assert.ErrorIs(t, err, ErrConnect)
	assert.False(t, called)
}

func TestClientConnectorUnreachable(t *testing.T) {
	// 占用一个端口后立即关闭, 保证该端口上没有监听者
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	c := NewClientConnector("127.0.0.1", port, "hydro", 200*time.Millisecond, logger.NewNopLogger())

	start := time.Now()
	sess, err := c.Connect(context.Background())
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, ErrConnect)
	assert.Less(t, time.Since(start), 5*time.Second)
}
