//go:build e2e

// Package e2e drives the fully wired HTTP application against a real
// PostgreSQL container.
package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"parking-reservation/cmd/bootstrap"
	"parking-reservation/cmd/bootstrap/components"
	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/pkg/password"
	"parking-reservation/internal/testutil/pgtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

// buildApp wires everything except the outbox worker, which would race the
// assertions on reservation_events.
func buildApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config) {
	t.Helper()

	var (
		router *gin.Engine
		cfg    config.Config
	)

	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	// One limiter serves the whole suite and every request comes from the same address.
	testConfig.RateLimit.LoginAttempts = 100

	app := fx.New(
		fx.Module("testdb", fx.Provide(func() *pgxpool.Pool { return pool })),
		fx.Module("testconfig", fx.Provide(func() config.Config { return testConfig })),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.RedisModule,
		bootstrap.MessagingModule,
		bootstrap.ObservabilityModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fx app failed to start")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, cfg
}

type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	pool, dbConfig := pgtest.NewDatabase(s.T())
	s.DB = pool
	s.Router, s.Config = buildApp(s.T(), pool, dbConfig)
}

func (s *SharedSuite) SetupTest() {
	pgtest.Reset(s.T(), s.DB)
}

// CreateAdmin inserts an admin directly; registration only ever creates users.
func (s *SharedSuite) CreateAdmin(username, plain string) int64 {
	hash, err := password.NewHasherWithCost(bcrypt.MinCost).Hash(plain)
	s.Require().NoError(err)

	var id int64
	err = s.DB.QueryRow(context.Background(), `
		INSERT INTO users (username, email, phone, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4, $5, 'admin')
		RETURNING id`,
		username, username+"@example.com", "9000000001", hash, "Site Admin").Scan(&id)
	s.Require().NoError(err, fmt.Sprintf("failed to insert admin %s", username))
	return id
}
