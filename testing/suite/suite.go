package suite

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	containerTTL = 120
	startTimeout = 120 * time.Second

	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

// Suite carries a Redis client bound to a container owned by one test.
type Suite struct {
	*testing.T

	Storage *redis.Client
}

// New starts a throwaway Redis container for one test and skips the test when Docker is unreachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	t.Cleanup(cancel)

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not reachable: %v", err)
	}

	resource := startRedis(t, pool)

	client, err := connect(ctx, pool, resource.GetHostPort(redisPort))
	if err != nil {
		_ = pool.Purge(resource)
		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()

		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge redis container: %v", err)
		}
	})

	return ctx, &Suite{
		T:       t,
		Storage: client,
	}
}

func startRedis(t *testing.T, pool *dockertest.Pool) *dockertest.Resource {
	t.Helper()

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	// hard kill if cleanup never runs
	_ = resource.Expire(containerTTL)

	return resource
}

// connect - retries until the container accepts connections, then empties the database.
func connect(ctx context.Context, pool *dockertest.Pool, addr string) (*redis.Client, error) {
	pool.MaxWait = startTimeout

	var client *redis.Client
	if err := pool.Retry(func() error {
		if client != nil {
			_ = client.Close()
		}
		client = redis.NewClient(&redis.Options{Addr: addr})

		return client.Ping(ctx).Err()
	}); err != nil {
		return nil, err
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
