package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAuditLog_AppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	sink := NewFileAuditLog(path)
	ctx := context.Background()

	require.NoError(t, sink.RecordCheckout(ctx, sampleOrder(1, "Cash")))
	require.NoError(t, sink.RecordCheckout(ctx, sampleOrder(2, "GCash")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"(LOG) -> Order ID: 1 has been successfully checked out and paid using Cash.\n"+
			"(LOG) -> Order ID: 2 has been successfully checked out and paid using GCash.\n",
		string(data))
}

func TestFileAuditLog_NeverTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte("earlier session\n"), 0o644))

	sink := NewFileAuditLog(path)
	require.NoError(t, sink.RecordCheckout(context.Background(), sampleOrder(1, "Cash")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"earlier session\n(LOG) -> Order ID: 1 has been successfully checked out and paid using Cash.\n",
		string(data))
}

func TestFileAuditLog_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "log.txt")
	sink := NewFileAuditLog(path)

	err := sink.RecordCheckout(context.Background(), sampleOrder(1, "Cash"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open audit log")
}
