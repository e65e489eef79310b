package minio_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	minioattachments "paste-upload/internal/adapters/attachments/minio"
	"paste-upload/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	testBucket    = "attachments-test"
)

func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     testAccessKey,
			"MINIO_ROOT_PASSWORD": testSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := minioContainer.Host(ctx)
	require.NoError(t, err)

	port, err := minioContainer.MappedPort(ctx, "9000")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	cleanup := func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	time.Sleep(500 * time.Millisecond) // wait for container to be up
	return endpoint, cleanup
}

func createStore(t *testing.T, ctx context.Context, endpoint string) *minioattachments.Store {
	t.Helper()
	cfg := config.MinioConfig{
		Endpoint:   endpoint,
		AccessKey:  testAccessKey,
		SecretKey:  testSecretKey,
		BucketName: testBucket,
		UseSSL:     false,
	}

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := minioattachments.NewStore(ctx, cfg, discardLogger)
	require.NoError(t, err)
	require.NotNil(t, store)

	return store
}

func TestStore_Save(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()

	store := createStore(t, ctx, endpoint)

	t.Run("nominal", func(t *testing.T) {
		stored, err := store.Save(ctx, "report.pdf", []byte("%PDF-1.7 content"))
		require.NoError(t, err)
		assert.Equal(t, "report.pdf", stored)
	})

	t.Run("colliding keys get numbered", func(t *testing.T) {
		first, err := store.Save(ctx, "notes.txt", []byte("one"))
		require.NoError(t, err)
		second, err := store.Save(ctx, "notes.txt", []byte("two"))
		require.NoError(t, err)

		assert.Equal(t, "notes.txt", first)
		assert.Equal(t, "notes 1.txt", second)
	})

	t.Run("path components are stripped", func(t *testing.T) {
		stored, err := store.Save(ctx, "dir/sub/image.png", []byte("png"))
		require.NoError(t, err)
		assert.Equal(t, "image.png", stored)
	})
}
