//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const testDBName = "stridecoach_test"

type Suite struct {
	DBPool     *pgxpool.Pool
	dockerPool *dockertest.Pool
	teardown   []func()
}

func newSuite(ctx context.Context) (*Suite, error) {
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	var err error
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	if err := suite.postgresSetup(ctx); err != nil {
		suite.cleanup()
		return nil, fmt.Errorf("postgres setup: %w", err)
	}

	return suite, nil
}

func (s *Suite) cleanup() {
	if s.DBPool != nil {
		s.DBPool.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func (s *Suite) postgresSetup(ctx context.Context) error {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return fmt.Errorf("dockerpool run postgres: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := pgResource.Close(); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	})

	dsn := fmt.Sprintf(
		"postgres://postgres@localhost:%s/%s?sslmode=disable",
		pgResource.GetPort("5432/tcp"), testDBName,
	)
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("parse db config: %w", err)
	}

	s.DBPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("create connection pool: %w", err)
	}

	if err := s.dockerPool.Retry(func() error {
		return s.DBPool.Ping(ctx)
	}); err != nil {
		return fmt.Errorf("connect to db: %w", err)
	}

	if _, err := s.DBPool.Exec(ctx, initSQL); err != nil {
		return fmt.Errorf("run init script: %w", err)
	}

	return nil
}

// mirrors scripts/db_schema.sql
const initSQL = `
CREATE TABLE injury (
    id                      TEXT PRIMARY KEY,
    user_id                 TEXT        NOT NULL,
    injury_type             TEXT        NOT NULL,
    affected_area           TEXT        NOT NULL,
    severity                TEXT        NOT NULL,
    initial_pain            INT         NOT NULL,
    current_pain            INT         NOT NULL,
    status                  TEXT        NOT NULL,
    injury_date             TIMESTAMPTZ NOT NULL,
    reported_date           TIMESTAMPTZ NOT NULL,
    expected_recovery_date  TIMESTAMPTZ,
    actual_recovery_date    TIMESTAMPTZ,
    last_update_date        TIMESTAMPTZ,
    description             TEXT        NOT NULL DEFAULT '',
    symptoms                TEXT        NOT NULL DEFAULT '',
    treatment_plan          TEXT        NOT NULL DEFAULT '',
    restrictions            JSONB       NOT NULL DEFAULT '{}'::jsonb,
    version                 INT         NOT NULL DEFAULT 0
);

CREATE INDEX injury_user_status_idx ON injury (user_id, status);
CREATE INDEX injury_user_reported_idx ON injury (user_id, reported_date DESC);

CREATE TABLE injury_update (
    id                   TEXT PRIMARY KEY,
    seq                  BIGSERIAL,
    injury_id            TEXT        NOT NULL REFERENCES injury (id) ON DELETE CASCADE,
    user_id              TEXT        NOT NULL,
    update_date          TIMESTAMPTZ NOT NULL,
    pain_level           INT,
    status               TEXT,
    improvement          TEXT,
    notes                TEXT        NOT NULL DEFAULT '',
    activities_performed TEXT        NOT NULL DEFAULT '',
    pain_triggers        TEXT        NOT NULL DEFAULT ''
);

CREATE INDEX injury_update_injury_idx ON injury_update (injury_id, update_date);

CREATE TABLE workout_plan (
    id               TEXT PRIMARY KEY,
    user_id          TEXT        NOT NULL,
    plan_date        TIMESTAMPTZ NOT NULL,
    status           TEXT        NOT NULL DEFAULT 'pending',
    workout_type     TEXT        NOT NULL DEFAULT '',
    duration_minutes INT         NOT NULL DEFAULT 0,
    high_intensity   BOOLEAN     NOT NULL DEFAULT FALSE
);

CREATE INDEX workout_plan_user_date_idx ON workout_plan (user_id, plan_date DESC);
`
