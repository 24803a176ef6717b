package version

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockKey(t *testing.T) {
	p1 := uuid.MustParse("7f1f6a52-1d0c-4a55-9b8e-3b1f1d8a0c11")
	p2 := uuid.MustParse("0c6d2b8e-8a41-4f0e-b0a5-94c35e7f2d90")

	assert.Equal(t, LockKey(p1, KindScope), LockKey(p1, KindScope))
	assert.NotEqual(t, LockKey(p1, KindScope), LockKey(p1, KindDeliverable))
	assert.NotEqual(t, LockKey(p1, KindScope), LockKey(p2, KindScope))
}

func TestKind_Table(t *testing.T) {
	table, err := KindScope.table()
	require.NoError(t, err)
	assert.Equal(t, "scopes", table)

	table, err = KindDeliverable.table()
	require.NoError(t, err)
	assert.Equal(t, "deliverables", table)

	_, err = Kind("invoice").table()
	assert.Error(t, err)
}

func TestNext_UnknownKind(t *testing.T) {
	_, err := Next(context.Background(), nil, uuid.New(), Kind("invoice"))
	assert.ErrorContains(t, err, "unknown version kind")
}
