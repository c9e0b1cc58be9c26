package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/migrations"
)

// retryBackoff is the pause between a transient statement failure and its
// single retry attempt.
const retryBackoff = 100 * time.Millisecond

type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error codes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// retryable runs op and retries it once when the backend's classificator
// deems the failure transient (lost connection, deadlock rollback,
// serialization failure). Backends without a classificator run op exactly
// once.
func (db *DB) retryable(ctx context.Context, op func() error) error {
	if db.errorClassificator == nil {
		return op()
	}

	backoff := retry.WithMaxRetries(1, retry.NewConstant(retryBackoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op()
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Msg("transient DB error, retrying statement")
			return retry.RetryableError(err)
		}

		return err
	})
}

// isUniqueViolation reports whether err is a unique-constraint violation on
// either supported backend.
func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation || sqliteUniqueViolation(err)
}
