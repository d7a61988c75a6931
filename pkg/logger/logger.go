package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	DebugContext(ctx context.Context, msg string, fields ...Field)
	InfoContext(ctx context.Context, msg string, fields ...Field)
	WarnContext(ctx context.Context, msg string, fields ...Field)
	ErrorContext(ctx context.Context, msg string, fields ...Field)
}

type fieldsKey struct{}

// FieldsKey 请求上下文中日志字段的 key
var FieldsKey = fieldsKey{}

// ContextWithFields 在上下文中追加日志字段, 已有字段会被保留
func ContextWithFields(ctx context.Context, fields ...Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	exist := FieldsFromContext(ctx)
	merged := make([]Field, 0, len(exist)+len(fields))
	merged = append(merged, exist...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, FieldsKey, merged)
}

// FieldsFromContext 获取上下文中的日志字段
func FieldsFromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(FieldsKey).([]Field)
	return fields
}

type ZapLogger struct {
	l *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{l: l}
}

// NewNopLogger 不输出任何日志, 用于测试
func NewNopLogger() *ZapLogger {
	return &ZapLogger{l: zap.NewNop()}
}

// New 按级别构造 zap 日志, development 为 true 时输出可读格式
func New(level string, development bool) (*ZapLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q failed: %w", level, err)
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build zap logger failed: %w", err)
	}
	return NewZapLogger(l), nil
}

func (z *ZapLogger) Debug(msg string, fields ...Field) {
	z.l.Debug(msg, fields...)
}

func (z *ZapLogger) Info(msg string, fields ...Field) {
	z.l.Info(msg, fields...)
}

func (z *ZapLogger) Warn(msg string, fields ...Field) {
	z.l.Warn(msg, fields...)
}

func (z *ZapLogger) Error(msg string, fields ...Field) {
	z.l.Error(msg, fields...)
}

func (z *ZapLogger) DebugContext(ctx context.Context, msg string, fields ...Field) {
	z.l.Debug(msg, withContext(ctx, fields)...)
}

func (z *ZapLogger) InfoContext(ctx context.Context, msg string, fields ...Field) {
	z.l.Info(msg, withContext(ctx, fields)...)
}

func (z *ZapLogger) WarnContext(ctx context.Context, msg string, fields ...Field) {
	z.l.Warn(msg, withContext(ctx, fields)...)
}

func (z *ZapLogger) ErrorContext(ctx context.Context, msg string, fields ...Field) {
	z.l.Error(msg, withContext(ctx, fields)...)
}

// Sync 刷新缓冲区
func (z *ZapLogger) Sync() error {
	return z.l.Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	ctxFields := FieldsFromContext(ctx)
	if len(ctxFields) == 0 {
		return fields
	}
	return append(append(make([]Field, 0, len(ctxFields)+len(fields)), ctxFields...), fields...)
}
