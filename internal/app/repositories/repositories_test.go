package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func TestScholarKeyFilterMatchesBothRepresentations(t *testing.T) {
	filter := scholarKeyFilter("2415062")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"scholarId": "2415062"}, or[0])
	assert.Equal(t, bson.M{"scholarId": int64(2415062)}, or[1])
}

func TestScholarKeyFilterNonNumericStaysStringOnly(t *testing.T) {
	filter := scholarKeyFilter("24XY062")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 1)
	assert.Equal(t, bson.M{"scholarId": "24XY062"}, or[0])
}

func TestOpContextAppliesDeadline(t *testing.T) {
	ctx, cancel := opContext(context.Background(), 5*time.Second)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
}

func TestOpContextZeroTimeoutPassesThrough(t *testing.T) {
	parent := context.Background()
	ctx, cancel := opContext(parent, 0)
	defer cancel()

	_, ok := ctx.Deadline()
	assert.False(t, ok)
	assert.Equal(t, parent, ctx)
}
