package dedup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeen_NilClientNeverSeen(t *testing.T) {
	filter := NewFilter(nil)

	seen, err := filter.Seen(context.Background(), "user-1", "msg-1")
	require.NoError(t, err)
	assert.False(t, seen)

	// Without a backing store nothing is remembered.
	require.NoError(t, filter.MarkSeen(context.Background(), "user-1", "msg-1"))
	seen, err = filter.Seen(context.Background(), "user-1", "msg-1")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestSeen_NilFilter(t *testing.T) {
	var filter *Filter

	seen, err := filter.Seen(context.Background(), "user-1", "msg-1")
	require.NoError(t, err)
	assert.False(t, seen)
	assert.NoError(t, filter.MarkSeen(context.Background(), "user-1", "msg-1"))
}
