package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is checked before anything runs; its presence means the schema is in place.
const sentinelTable = "public.founders"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_startups",
		SQL: `CREATE TABLE IF NOT EXISTS startups (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name         TEXT        NOT NULL,
  description  TEXT        NOT NULL DEFAULT '',
  website      TEXT        NOT NULL DEFAULT '',
  industry     TEXT        NOT NULL DEFAULT '',
  stage        TEXT        NOT NULL DEFAULT '',
  founded_year INTEGER     NOT NULL DEFAULT 0,
  logo_url     TEXT        NOT NULL DEFAULT '',
  visible      BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_startups_name",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS startups_name_lower_key ON startups (lower(name));`,
	},
	{
		Name: "create_table_skills",
		SQL: `CREATE TABLE IF NOT EXISTS skills (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL,
  category   TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_skills_name",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS skills_name_lower_key ON skills (lower(name));`,
	},
	{
		Name: "create_table_hobbies",
		SQL: `CREATE TABLE IF NOT EXISTS hobbies (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_hobbies_name",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS hobbies_name_lower_key ON hobbies (lower(name));`,
	},
	{
		Name: "create_table_events",
		SQL: `CREATE TABLE IF NOT EXISTS events (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title       TEXT        NOT NULL,
  description TEXT        NOT NULL DEFAULT '',
  location    TEXT        NOT NULL DEFAULT '',
  url         TEXT        NOT NULL DEFAULT '',
  starts_at   TIMESTAMPTZ NOT NULL,
  ends_at     TIMESTAMPTZ CHECK (ends_at IS NULL OR ends_at >= starts_at),
  visible     BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_events_starts_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_events_starts_at ON events (starts_at);`,
	},
	{
		Name: "create_table_founders",
		SQL: `CREATE TABLE IF NOT EXISTS founders (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name         TEXT        NOT NULL,
  email        TEXT        NOT NULL,
  bio          TEXT        NOT NULL DEFAULT '',
  location     TEXT        NOT NULL DEFAULT '',
  linkedin_url TEXT        NOT NULL DEFAULT '',
  image_url    TEXT        NOT NULL DEFAULT '',
  startup_id   UUID        REFERENCES startups (id) ON DELETE SET NULL,
  visible      BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_founders_email",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS founders_email_lower_key ON founders (lower(email));`,
	},
	{
		Name: "create_index_founders_startup_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_founders_startup_id ON founders (startup_id);`,
	},
	{
		Name: "create_table_founder_skills",
		SQL: `CREATE TABLE IF NOT EXISTS founder_skills (
  founder_id UUID NOT NULL REFERENCES founders (id) ON DELETE CASCADE,
  skill_id   UUID NOT NULL REFERENCES skills (id) ON DELETE CASCADE,
  PRIMARY KEY (founder_id, skill_id)
);`,
	},
	{
		Name: "create_table_founder_hobbies",
		SQL: `CREATE TABLE IF NOT EXISTS founder_hobbies (
  founder_id UUID NOT NULL REFERENCES founders (id) ON DELETE CASCADE,
  hobby_id   UUID NOT NULL REFERENCES hobbies (id) ON DELETE CASCADE,
  PRIMARY KEY (founder_id, hobby_id)
);`,
	},
	{
		Name: "create_table_help_requests",
		SQL: `CREATE TABLE IF NOT EXISTS help_requests (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  founder_id  UUID        NOT NULL REFERENCES founders (id) ON DELETE CASCADE,
  skill_id    UUID        REFERENCES skills (id) ON DELETE SET NULL,
  title       TEXT        NOT NULL,
  description TEXT        NOT NULL DEFAULT '',
  status      TEXT        NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'in_progress', 'resolved')),
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_help_requests_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_help_requests_status ON help_requests (status, created_at);`,
	},
}

// EnsureMigrated checks if the 'founders' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := fmt.Sprintf("SELECT to_regclass('%s') IS NOT NULL", sentinelTable)
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"), zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
