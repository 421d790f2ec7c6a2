package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStoreInsertKeepsFirstInsertionOrder(t *testing.T) {
	store := NewRequestStore()

	store.Insert("http://a", "one")
	store.Insert("http://b", "two")
	store.Insert("http://a", "three")

	require.Equal(t, 2, store.Len())
	assert.Equal(t, []string{"http://a", "http://b"}, slices.Collect(store.Keys()))

	first, err := store.EntryAt(0)
	require.NoError(t, err)
	assert.Equal(t, Entry{URL: "http://a", Value: "three"}, first)
}

func TestRequestStoreEntryAtOutOfRange(t *testing.T) {
	store := NewRequestStore()
	store.Insert("http://a", "one")

	tests := []struct {
		name  string
		index int
	}{
		{name: "equal to size", index: 1},
		{name: "beyond size", index: 5},
		{name: "negative", index: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.EntryAt(tt.index)
			require.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestRequestStoreClearBehavesLikeFreshStore(t *testing.T) {
	store := NewRequestStore()
	store.Insert("http://a", "one")
	store.Insert("http://b", "two")

	store.Clear()

	fresh := NewRequestStore()
	assert.Equal(t, fresh.Len(), store.Len())
	assert.Empty(t, slices.Collect(store.Keys()))
	assert.Empty(t, store.Entries())

	_, err := store.EntryAt(0)
	require.ErrorIs(t, err, ErrOutOfRange)

	store.Insert("http://c", "three")
	assert.Equal(t, []string{"http://c"}, slices.Collect(store.Keys()))
}

func TestRequestStoreKeysIsSnapshotAndRestartable(t *testing.T) {
	store := NewRequestStore()
	store.Insert("http://a", "one")
	store.Insert("http://b", "two")

	keys := store.Keys()
	store.Insert("http://c", "three")
	store.Clear()

	assert.Equal(t, []string{"http://a", "http://b"}, slices.Collect(keys))
	assert.Equal(t, []string{"http://a", "http://b"}, slices.Collect(keys))
}

func TestRequestStoreKeysStopsEarly(t *testing.T) {
	store := NewRequestStore()
	store.Insert("http://a", "one")
	store.Insert("http://b", "two")

	var seen []string
	for key := range store.Keys() {
		seen = append(seen, key)
		break
	}

	assert.Equal(t, []string{"http://a"}, seen)
}

func TestRequestStoreZeroValueIsUsable(t *testing.T) {
	var store RequestStore

	store.Insert("http://a", "one")

	value, ok := store.Get("http://a")
	require.True(t, ok)
	assert.Equal(t, "one", value)
	assert.Equal(t, []Entry{{URL: "http://a", Value: "one"}}, store.Entries())
}
