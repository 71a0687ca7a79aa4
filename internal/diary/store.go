package diary

import (
	"errors"
	"sort"
	"sync"
)

var ErrInvalidDate = errors.New("invalid date (YYYY-MM-DD)")

// Store keeps one entry per date in memory for the lifetime of the process.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewStore() *Store {
	return &Store{entries: map[string]Entry{}}
}

// Replace normalizes in and stores it under date, overwriting any previous entry.
func (s *Store) Replace(date string, in Input) (Flags, error) {
	key, ok := NormalizeDate(date)
	if !ok {
		return Flags{}, ErrInvalidDate
	}

	e := Entry{
		TodoItems: NormalizeTodo(in.Todo),
		Contents:  normalizeText(in.Contents),
		Thanks:    normalizeText(in.Thanks),
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()

	return e.Flags(), nil
}

// Merge applies the fields set in p on top of the stored entry (or an empty one)
// and stores the result.
func (s *Store) Merge(date string, p Patch) (Flags, error) {
	key, ok := NormalizeDate(date)
	if !ok {
		return Flags{}, ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = emptyEntry()
	}

	if p.Todo.Set {
		e.TodoItems = NormalizeTodo(p.Todo.Value)
	}
	if p.Contents.Set {
		e.Contents = normalizeText(p.Contents.Value)
	}
	if p.Thanks.Set {
		e.Thanks = normalizeText(p.Thanks.Value)
	}

	s.entries[key] = e
	return e.Flags(), nil
}

// Read returns the entry for date, or an empty entry if nothing was written yet.
func (s *Store) Read(date string) (Entry, error) {
	key, ok := NormalizeDate(date)
	if !ok {
		return Entry{}, ErrInvalidDate
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return emptyEntry(), nil
	}
	return e.clone(), nil
}

// Summarize scans every stored date. Recomputed on each call.
func (s *Store) Summarize() Summary {
	out := Summary{
		HaveContents: []string{},
		HaveTodos:    []string{},
	}

	s.mu.RLock()
	for date, e := range s.entries {
		f := e.Flags()
		if f.HasContents {
			out.HaveContents = append(out.HaveContents, date)
		}
		if f.HasTodos {
			out.HaveTodos = append(out.HaveTodos, date)
		}
	}
	s.mu.RUnlock()

	// zero-padded YYYY-MM-DD sorts chronologically as a string
	sort.Strings(out.HaveContents)
	sort.Strings(out.HaveTodos)
	return out
}
