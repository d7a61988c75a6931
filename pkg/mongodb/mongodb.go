package mongodb

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/to404hanga/hydro_gateway/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrConnect 在规定时间内无法连上 MongoDB
var ErrConnect = errors.New("failed to connect to MongoDB")

// Session 单个请求独占的数据库连接, 使用完必须 Close
type Session interface {
	Database() *mongo.Database
	Close(ctx context.Context) error
}

// Connector 每次调用都建立一个新的连接
type Connector interface {
	Connect(ctx context.Context) (Session, error)
}

type ClientConnector struct {
	opts     *options.ClientOptions
	database string
	timeout  time.Duration
	log      logger.Logger
}

var _ Connector = (*ClientConnector)(nil)

func NewClientConnector(host string, port int, database string, timeout time.Duration, log logger.Logger) *ClientConnector {
	opts := options.Client().
		SetHosts([]string{net.JoinHostPort(host, strconv.Itoa(port))}).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout).
		SetRetryReads(false).
		SetRetryWrites(false).
		SetMaxPoolSize(1)
	return &ClientConnector{
		opts:     opts,
		database: database,
		timeout:  timeout,
		log:      log,
	}
}

// Connect 建立连接并 ping 一次, ping 失败时释放客户端, 不重试
func (c *ClientConnector) Connect(ctx context.Context) (Session, error) {
	start := time.Now()
	client, err := mongo.Connect(ctx, c.opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		if derr := client.Disconnect(context.WithoutCancel(ctx)); derr != nil {
			c.log.WarnContext(ctx, "Connect disconnect after ping failure failed", logger.Error(derr))
		}
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	c.log.DebugContext(ctx, "Connect mongo connected", logger.Duration("elapsed", time.Since(start)))

	return &clientSession{
		client: client,
		db:     client.Database(c.database),
	}, nil
}

type clientSession struct {
	client *mongo.Client
	db     *mongo.Database
}

func (s *clientSession) Database() *mongo.Database {
	return s.db
}

func (s *clientSession) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// WithSession 获取连接后执行 fn, 无论 fn 如何返回都会释放连接
func WithSession(ctx context.Context, connector Connector, log logger.Logger, fn func(db *mongo.Database) error) error {
	sess, err := connector.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sess.Close(context.WithoutCancel(ctx)); cerr != nil {
			log.WarnContext(ctx, "WithSession close session failed", logger.Error(cerr))
		}
	}()
	return fn(sess.Database())
}
