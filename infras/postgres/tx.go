package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./tx.go -destination=./mocks/tx_mock.go -package=mocks

import (
	"context"
	"fmt"

	"holdhive/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// TxRunner scopes a sequence of statements to a single database
// transaction. Check-then-write flows (booking admission, cascade
// deletes) run under it so no qualifying row can appear between the
// check and the final write.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// WithinTx begins a transaction on the write connection, runs fn, and
// commits. fn returning an error rolls everything back and the error is
// passed through untouched. A failed commit is reported as its own
// failure kind since the statements themselves succeeded.
func (c *Connection) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return failure.FromStore(err) //nolint:wrapcheck
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back transaction after panic")
			}

			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return failure.CommitFailed(fmt.Errorf("commit failed: %w", err)) //nolint:wrapcheck
	}

	return nil
}
