package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Basics(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	v, err := r.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, v)

	buf := []byte(`{"id":"1"}`)
	require.NoError(t, r.Set(ctx, "user", buf))
	buf[0] = 'X'

	v, err = r.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, string(v), "stored value must not alias caller buffer")

	require.NoError(t, r.Set(ctx, "token", []byte("t")))

	require.NoError(t, r.Delete(ctx, "user"))
	require.NoError(t, r.Delete(ctx, "user"))
	v, _ = r.Get(ctx, "user")
	assert.Nil(t, v)

	require.NoError(t, r.Clear(ctx))
	v, _ = r.Get(ctx, "token")
	assert.Nil(t, v)
}
