package xcontext

import (
	"context"
	"net/http"
	"time"

	"github.com/yatube-lab/backend/config"
	"github.com/yatube-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	configsKey     struct{}
	loggerKey      struct{}
	dbKey          struct{}
	dbTxKey        struct{}
	userIDKey      struct{}
	httpRequestKey struct{}
	httpWriterKey  struct{}
	responseKey    struct{}
	errorKey       struct{}
	startTimeKey   struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	return getValue[config.Configs](ctx, configsKey{})
}

func WithLogger(ctx context.Context, logger logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func Logger(ctx context.Context) logger.Logger {
	return getValue[logger.Logger](ctx, loggerKey{})
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the running transaction if there is one, otherwise the database
// connection bound to the context.
func DB(ctx context.Context) *gorm.DB {
	if tx := getValue[*gorm.DB](ctx, dbTxKey{}); tx != nil {
		return tx
	}

	db := getValue[*gorm.DB](ctx, dbKey{})
	if db == nil {
		return nil
	}

	return db.WithContext(ctx)
}

// WithDBTransaction begins a transaction. Every later call of DB on the
// returned context uses this transaction until it is committed or rolled
// back.
func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTxKey{}, DB(ctx).Begin())
}

// WithCommitDBTransaction commits the running transaction. The returned
// context no longer holds a transaction, even if the commit failed.
func WithCommitDBTransaction(ctx context.Context) (context.Context, error) {
	var err error
	if tx := getValue[*gorm.DB](ctx, dbTxKey{}); tx != nil {
		err = tx.Commit().Error
	}

	return context.WithValue(ctx, dbTxKey{}, (*gorm.DB)(nil)), err
}

// WithRollbackDBTransaction rolls back the transaction if it is still running.
// It is safe to call after WithCommitDBTransaction.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	if tx := getValue[*gorm.DB](ctx, dbTxKey{}); tx != nil {
		tx.Rollback()
	}

	return context.WithValue(ctx, dbTxKey{}, (*gorm.DB)(nil))
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

func RequestUserID(ctx context.Context) string {
	return getValue[string](ctx, userIDKey{})
}

func WithHTTPRequest(ctx context.Context, req *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, req)
}

func HTTPRequest(ctx context.Context) *http.Request {
	return getValue[*http.Request](ctx, httpRequestKey{})
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	return getValue[http.ResponseWriter](ctx, httpWriterKey{})
}

func WithResponse(ctx context.Context, resp any) context.Context {
	return context.WithValue(ctx, responseKey{}, resp)
}

func Response(ctx context.Context) any {
	return ctx.Value(responseKey{})
}

func WithError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errorKey{}, err)
}

func Error(ctx context.Context) error {
	return getValue[error](ctx, errorKey{})
}

func WithStartTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, startTimeKey{}, t)
}

func StartTime(ctx context.Context) time.Time {
	return getValue[time.Time](ctx, startTimeKey{})
}

func getValue[T any](ctx context.Context, key any) T {
	var zero T
	value, ok := ctx.Value(key).(T)
	if !ok {
		return zero
	}

	return value
}
