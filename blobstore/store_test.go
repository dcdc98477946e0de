package blobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "zdd_1.bin", []byte("one")))
	require.NoError(t, s.Put(ctx, "zdd_2.bin", []byte("two")))
	require.NoError(t, s.Put(ctx, "other.txt", []byte("x")))

	data, err := ReadAll(ctx, s, "zdd_1.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), data)

	// Overwrite.
	require.NoError(t, s.Put(ctx, "zdd_1.bin", []byte("uno")))
	data, err = ReadAll(ctx, s, "zdd_1.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("uno"), data)

	names, err := s.List(ctx, "zdd_")
	require.NoError(t, err)
	assert.Equal(t, []string{"zdd_1.bin", "zdd_2.bin"}, names)

	_, err = s.Open(ctx, "missing.bin")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStore(t *testing.T) {
	testStore(t, NewLocalStore(t.TempDir()))
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	data := []byte("abc")
	require.NoError(t, s.Put(ctx, "b", data))
	data[0] = 'z'

	got, err := ReadAll(ctx, s, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}
