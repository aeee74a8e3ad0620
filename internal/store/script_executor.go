package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-module-installer/internal/logger"
)

// scriptExecutor runs each script in its own transaction.
type scriptExecutor struct {
	db     *DB
	logger *logger.Logger
}

// NewScriptExecutor constructs a [ScriptExecutor] backed by db.
func NewScriptExecutor(db *DB, logger *logger.Logger) ScriptExecutor {
	logger.Debug().Msg("creating script executor")
	return &scriptExecutor{
		db:     db,
		logger: logger,
	}
}

// ExecuteScript reads the file at path and executes its content as one
// batch inside a transaction. A failing script is rolled back as a whole;
// scripts that ran before it stay committed.
//
// Scripts that contain only whitespace are skipped.
func (e *scriptExecutor) ExecuteScript(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	content, err := os.ReadFile(path)
	if err != nil {
		log.Err(err).Str("func", "*scriptExecutor.ExecuteScript").Str("script", path).Msg("error reading script")
		return fmt.Errorf("%w %s: %w", ErrReadingScript, path, err)
	}

	script := string(content)
	if strings.TrimSpace(script) == "" {
		log.Warn().Str("script", path).Msg("script is empty, nothing to execute")
		return nil
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*scriptExecutor.ExecuteScript").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if _, err = tx.ExecContext(ctx, script); err != nil {
		_ = tx.Rollback()
		log.Err(err).
			Str("func", "*scriptExecutor.ExecuteScript").
			Str("script", path).
			Stringer("class", e.classify(err)).
			Msg("error executing script")
		return fmt.Errorf("%w %s: %w", ErrExecutingScript, path, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*scriptExecutor.ExecuteScript").Str("script", path).Msg("error committing script")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("script", path).Msg("script executed")
	return nil
}

func (e *scriptExecutor) classify(err error) ErrorClassification {
	if e.db.errorClassificator == nil {
		return NonRetryable
	}
	return e.db.errorClassificator.Classify(err)
}
