package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/shop-sim/internal/adapter/storage"
	"github.com/rl1809/shop-sim/internal/logger"
)

func TestRun_FileAuditTrail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	var out bytes.Buffer

	input := "1 ABC yes ABC yes DEF no 2 yes 1 1 mno no 2 YES 2 3 4"
	err := run(context.Background(), storage.NewFileAuditLog(path), strings.NewReader(input), &out,
		logger.NewWithWriter(serviceName, "error", io.Discard))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"(LOG) -> Order ID: 1 has been successfully checked out and paid using Cash.\n"+
			"(LOG) -> Order ID: 2 has been successfully checked out and paid using Credit / Debit Card.\n",
		string(data))

	assert.Contains(t, out.String(), "Paid 2400 using Cash.")
	assert.Contains(t, out.String(), "Paid 2000 using Credit/Debit Card.")
}

func TestRun_FreshSessionRestartsOrderIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	sink := storage.NewFileAuditLog(path)
	log := logger.NewWithWriter(serviceName, "error", io.Discard)

	for i := 0; i < 2; i++ {
		err := run(context.Background(), sink, strings.NewReader("1 GHI no 2 yes 3 4"), io.Discard, log)
		require.NoError(t, err)
	}

	lines, err := sink.Lines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"(LOG) -> Order ID: 1 has been successfully checked out and paid using GCash.",
		"(LOG) -> Order ID: 1 has been successfully checked out and paid using GCash.",
	}, lines)
}

func TestRun_RedisAuditTrail(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sink := storage.NewRedisAuditLog(client, "audit:checkout", time.Second)
	ctx := logger.WithSessionID(context.Background(), "sess-e2e")

	err := run(ctx, sink, strings.NewReader("1 JKL no 2 yes 1 4"), io.Discard,
		logger.NewWithWriter(serviceName, "error", io.Discard))
	require.NoError(t, err)

	got, err := mr.List("audit:checkout")
	require.NoError(t, err)
	assert.Equal(t, []string{"(LOG) -> Order ID: 1 has been successfully checked out and paid using Cash."}, got)
}

func TestRun_EmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	err := run(context.Background(), storage.NewFileAuditLog(path), strings.NewReader(""), io.Discard,
		logger.NewWithWriter(serviceName, "error", io.Discard))
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestCloseAuditTrail_LogsError(t *testing.T) {
	var logs bytes.Buffer
	ctx := logger.WithSessionID(context.Background(), "sess-close")
	log := logger.NewWithWriter(serviceName, "warn", &logs)

	closeAuditTrail(ctx, log, func() error { return errors.New("connection reset") })

	assert.Contains(t, logs.String(), `"msg":"failed to close audit trail"`)
	assert.Contains(t, logs.String(), "connection reset")
	assert.Contains(t, logs.String(), `"session_id":"sess-close"`)
}

func TestCloseAuditTrail_Clean(t *testing.T) {
	var logs bytes.Buffer
	closed := false

	closeAuditTrail(context.Background(), logger.NewWithWriter(serviceName, "warn", &logs),
		func() error { closed = true; return nil })

	assert.True(t, closed)
	assert.Zero(t, logs.Len())
}
