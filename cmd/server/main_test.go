package main

import (
	"context"
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/llanera/internal/config"
)

func testConfig(t *testing.T, port string) *config.Config {
	t.Helper()
	return &config.Config{
		Env:             "test",
		Port:            port,
		DBDriver:        "sqlite",
		SQLitePath:      filepath.Join(t.TempDir(), "test.db"),
		UpstreamTimeout: time.Second,
	}
}

func TestRun_PortInUseReturnsError(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()
	port := strconv.Itoa(l.Addr().(*net.TCPAddr).Port)

	done := make(chan error, 1)
	go func() { done <- run(context.Background(), testConfig(t, port)) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "address already in use")
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after bind failure")
	}
}

func TestRun_BadDatabaseDriverReturnsError(t *testing.T) {
	cfg := testConfig(t, "0")
	cfg.DBDriver = "mysql"

	assert.Error(t, run(context.Background(), cfg))
}

func TestRun_CancelShutsDownCleanly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- run(ctx, testConfig(t, "0")) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
