package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityStore_PutGet(t *testing.T) {
	s := New[int64, string]()

	stored := s.Put(1, "one")
	assert.Equal(t, "one", stored)

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", got)

	_, ok = s.Get(2)
	assert.False(t, ok)
}

func TestEntityStore_PutReplaces(t *testing.T) {
	s := New[int64, string]()
	s.Put(1, "one")
	s.Put(1, "uno")

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "uno", got)
	assert.Equal(t, 1, s.Len())
}

func TestEntityStore_AllSortedByKey(t *testing.T) {
	s := New[int64, string]()
	s.Put(3, "three")
	s.Put(1, "one")
	s.Put(2, "two")

	assert.Equal(t, []string{"one", "two", "three"}, s.All())
}

func TestEntityStore_AllIsSnapshot(t *testing.T) {
	s := New[int64, string]()
	s.Put(1, "one")
	s.Put(2, "two")

	snapshot := s.All()
	s.Remove(1)
	s.Put(3, "three")

	assert.Equal(t, []string{"one", "two"}, snapshot)
	assert.Equal(t, []string{"two", "three"}, s.All())
}

func TestEntityStore_RemoveMissingIsNoop(t *testing.T) {
	s := New[int64, string]()
	s.Put(1, "one")
	s.Remove(2)
	assert.Equal(t, 1, s.Len())
}

func TestEntityStore_Clear(t *testing.T) {
	s := New[int64, string]()
	s.Put(1, "one")
	s.Put(2, "two")
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}
