package domain

import (
	"fmt"
	"iter"
)

type Entry struct {
	URL   string
	Value string
}

// RequestStore maps request URLs to response bodies (or error markers) and
// remembers the order in which each URL was first inserted.
type RequestStore struct {
	keys   []string
	values map[string]string
}

func NewRequestStore() *RequestStore {
	return &RequestStore{values: map[string]string{}}
}

// Insert appends url when unseen, otherwise overwrites its value in place.
func (s *RequestStore) Insert(url, value string) {
	if s.values == nil {
		s.values = map[string]string{}
	}
	if _, ok := s.values[url]; !ok {
		s.keys = append(s.keys, url)
	}
	s.values[url] = value
}

func (s *RequestStore) Clear() {
	s.keys = nil
	s.values = map[string]string{}
}

func (s *RequestStore) Len() int {
	return len(s.keys)
}

func (s *RequestStore) EntryAt(index int) (Entry, error) {
	if index < 0 || index >= len(s.keys) {
		return Entry{}, fmt.Errorf("entry %d of %d: %w", index, len(s.keys), ErrOutOfRange)
	}

	url := s.keys[index]
	return Entry{URL: url, Value: s.values[url]}, nil
}

func (s *RequestStore) Get(url string) (string, bool) {
	value, ok := s.values[url]
	return value, ok
}

// Keys yields the URLs in insertion order as they were when Keys was called.
// Later inserts or clears do not affect an already obtained sequence.
func (s *RequestStore) Keys() iter.Seq[string] {
	snapshot := make([]string, len(s.keys))
	copy(snapshot, s.keys)

	return func(yield func(string) bool) {
		for _, key := range snapshot {
			if !yield(key) {
				return
			}
		}
	}
}

func (s *RequestStore) Entries() []Entry {
	entries := make([]Entry, 0, len(s.keys))
	for _, url := range s.keys {
		entries = append(entries, Entry{URL: url, Value: s.values[url]})
	}

	return entries
}
