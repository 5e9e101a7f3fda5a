//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"barbershop-booking/cmd/bootstrap"
	"barbershop-booking/cmd/bootstrap/components"
	"barbershop-booking/internal/infra/db"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/usecase/shared"
	"barbershop-booking/migrations"
	"barbershop-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "booking"
	pgPassword = "booking"

	// Migrated and seeded once, then cloned per suite.
	templateDB = "booking_template"
	// Advisory lock serializing template preparation across test binaries.
	templateLockKey = 20240601
)

var (
	containerOnce sync.Once
	pgHost        string
	pgPort        nat.Port
	containerErr  error
)

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool // スイート専用DBへの接続
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	startPostgres(t)
	dbConfig := cloneTemplate(t)

	s.DB, s.Router, s.Config = startApp(t, dbConfig)
	require.NotNil(t, s.DB, "DBのセットアップに失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
}

// 各サブテストは予約のない状態（理容師2名のみ）から始まる
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "DBのリセットに失敗")
}

// ------------------------------------------------------------
// PostgreSQLコンテナ（テストバイナリ間で共有）
// ------------------------------------------------------------
func startPostgres(t *testing.T) {
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var c testcontainers.Container
		c, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				Name:         "barbershop-booking-e2e",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
					"TZ":                "Asia/Tokyo",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				// 耐久性は不要
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port)
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
			// 並行して走る別パッケージのテストと同じコンテナを使う。後始末はryukに任せる
			Reuse: true,
		})
		if containerErr != nil {
			return
		}

		pgPort, containerErr = c.MappedPort(ctx, "5432/tcp")
		if containerErr != nil {
			return
		}
		pgHost, containerErr = c.Host(ctx)
	})
	require.NoError(t, containerErr, "PostgreSQLコンテナの起動に失敗")
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

func dbConfigFor(name string) config.DBConfig {
	return config.DBConfig{
		Host:     pgHost,
		Port:     pgPort.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		MaxConns: 20,
	}
}

// ------------------------------------------------------------
// スキーマ適用済みテンプレートからスイート専用DBを複製
// ------------------------------------------------------------
func cloneTemplate(t *testing.T) config.DBConfig {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(pgHost, pgPort))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	conn, err := admin.Acquire(ctx)
	require.NoError(t, err)
	defer conn.Release()

	_, err = conn.Exec(ctx, "SELECT pg_advisory_lock($1)", templateLockKey)
	require.NoError(t, err)
	defer func() {
		_, _ = conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", templateLockKey)
	}()

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", templateDB).Scan(&exists)
	require.NoError(t, err)
	if !exists {
		_, err = conn.Exec(ctx, "CREATE DATABASE "+templateDB)
		require.NoError(t, err, "テンプレートDBの作成に失敗")
		require.NoError(t, prepareTemplate(), "テンプレートDBの準備に失敗")
	}

	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = conn.Exec(ctx, "CREATE DATABASE "+name+" TEMPLATE "+templateDB)
	require.NoError(t, err, "スイート用DBの複製に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(pgHost, pgPort))
		if err != nil {
			slog.Warn("スイート用DBの削除に失敗しました", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("スイート用DBの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return dbConfigFor(name)
}

// prepareTemplate applies every embedded migration in file order and seeds the
// barber roster. The pool is closed before returning; a template with open
// connections cannot be cloned.
func prepareTemplate() error {
	pool, _, err := db.Connect(dbConfigFor(templateDB))
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	files, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return err
	}
	for _, file := range files {
		sql, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return dbtest.SeedReferenceData(pool)
}

// ------------------------------------------------------------
// アプリケーション起動（Redis・Kafka・cronなし）
// ------------------------------------------------------------
func startApp(t *testing.T, dbConfig config.DBConfig) (*pgxpool.Pool, *gin.Engine, config.Config) {
	t.Helper()

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
			shared.NewShopSettings,
		),
		bootstrap.LoggerModule,
		bootstrap.IdentityModule,
		// REDIS_ADDR is empty in the test config, so this provides a nil limiter
		bootstrap.RedisModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
		pool.Close()
	})

	return pool, router, cfg
}
