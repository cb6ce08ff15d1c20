package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes
// that Ent/Atlas cannot express. These must match the constraints in
// migrations/000001_init.up.sql. Also called by the test harness after
// Ent's Schema.Create, which does not know about them.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one non-terminal execution per agent (single-flight).
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS execution_agent_id_non_terminal
		ON executions (agent_id)
		WHERE state IN ('pending', 'running')`)
	if err != nil {
		return fmt.Errorf("failed to create single-flight index: %w", err)
	}

	return nil
}
