package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agent-orchestra/orchestra/pkg/database"
	testdb "github.com/agent-orchestra/orchestra/test/database"
)

func TestCheck(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	status, err := database.Check(ctx, client.DB())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, status.LatencyMs, int64(0))
	assert.Greater(t, status.Open, 0)
	assert.Greater(t, status.MaxOpen, 0)
	assert.False(t, status.Saturated())
}

func TestCheckReportsUnreachable(t *testing.T) {
	client := testdb.NewTestClient(t)
	require.NoError(t, client.DB().Close())

	status, err := database.Check(context.Background(), client.DB())
	require.Error(t, err)
	require.NotNil(t, status, "latency is reported even when the ping fails")
	assert.Zero(t, status.Open)
}

func TestPoolStatusSaturated(t *testing.T) {
	assert.True(t, (&database.PoolStatus{MaxOpen: 4, InUse: 4}).Saturated())
	assert.False(t, (&database.PoolStatus{MaxOpen: 4, InUse: 3}).Saturated())
	assert.False(t, (&database.PoolStatus{InUse: 3}).Saturated(), "unbounded pools never saturate")
}
