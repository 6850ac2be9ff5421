package testinternals

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/2beens/fitcoach/internal/db"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	TestDBName     = "fitcoach"
	TestDBUser     = "postgres"
	TestDBPassword = "postgres"
)

// NewDockerPool connects to the local docker daemon.
func NewDockerPool() (*dockertest.Pool, error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}

	// uses pool to try to connect to Docker
	if err := dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}
	dockerPool.MaxWait = 2 * time.Minute

	return dockerPool, nil
}

// Postgres is a throwaway postgres container with all migrations applied.
type Postgres struct {
	Port   string
	Params db.NewDBPoolParams
	Pool   *pgxpool.Pool

	resource *dockertest.Resource
}

func StartPostgres(ctx context.Context, dockerPool *dockertest.Pool) (_ *Postgres, err error) {
	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=" + TestDBUser,
			"POSTGRES_PASSWORD=" + TestDBPassword,
			"POSTGRES_DB=" + TestDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}

	pg := &Postgres{
		Port:     pgResource.GetPort("5432/tcp"),
		resource: pgResource,
	}
	defer func() {
		if err != nil {
			pg.Close()
		}
	}()

	pg.Params = db.NewDBPoolParams{
		DBHost:     "localhost",
		DBPort:     pg.Port,
		DBName:     TestDBName,
		DBUser:     TestDBUser,
		DBPassword: TestDBPassword,
	}

	// the container accepts connections a bit after it starts
	if err := dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", pg.Params.ConnString())
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	}); err != nil {
		return nil, fmt.Errorf("wait for postgres: %w", err)
	}

	if err := db.RunMigrations(pg.Params.ConnString()); err != nil {
		return nil, err
	}

	pg.Pool, err = db.NewDBPool(ctx, pg.Params)
	if err != nil {
		return nil, err
	}

	return pg, nil
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if p.resource != nil {
		_ = p.resource.Close()
	}
}

// Redis is a throwaway redis container.
type Redis struct {
	Port   string
	Client *redis.Client

	resource *dockertest.Resource
}

func StartRedis(ctx context.Context, dockerPool *dockertest.Pool) (_ *Redis, err error) {
	redisResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return nil, fmt.Errorf("run redis: %w", err)
	}

	r := &Redis{
		Port:     redisResource.GetPort("6379/tcp"),
		resource: redisResource,
	}
	defer func() {
		if err != nil {
			r.Close()
		}
	}()

	r.Client = redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", r.Port),
		DB:   0, // use default DB
	})
	if err := dockerPool.Retry(func() error {
		return r.Client.Ping(ctx).Err()
	}); err != nil {
		return nil, fmt.Errorf("wait for redis: %w", err)
	}

	return r, nil
}

func (r *Redis) Close() {
	if r.Client != nil {
		_ = r.Client.Close()
	}
	if r.resource != nil {
		_ = r.resource.Close()
	}
}
