package state

import (
	"errors"
	"sync"
	"time"

	"github.com/five82/carlot/internal/listing"
)

// Phase is the loader state machine: Idle -> Loading -> Loaded | Failed.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Phase     Phase
	Canonical []listing.CarRecord
	Filtered  []listing.CarRecord
	Query     listing.Query
	LoadError error
	LoadedAt  time.Time
	// Searches counts explicit Search calls, letting the UI notice a new
	// filtered set even when its length is unchanged.
	Searches int
}

// Loading reports whether the initial load has not finished yet.
func (s Snapshot) Loading() bool {
	return s.Phase == PhaseIdle || s.Phase == PhaseLoading
}

// Failed reports whether the load ended in an error.
func (s Snapshot) Failed() bool {
	return s.Phase == PhaseFailed
}

// ErrorMessage returns the user-facing load failure text, or "".
func (s Snapshot) ErrorMessage() string {
	if s.LoadError == nil {
		return ""
	}
	var loadErr *listing.LoadError
	if errors.As(s.LoadError, &loadErr) {
		return loadErr.Message()
	}
	return listing.LoadFailedMessage
}

// Empty reports whether there is nothing to show. An empty collection and an
// over-constrained query look the same.
func (s Snapshot) Empty() bool {
	return len(s.Filtered) == 0
}

// Store is the explicit state container shared by the loader and the UI.
// The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// BeginLoad moves Idle to Loading. It returns false if a load already ran or
// is running; there is no way back to Loading.
func (s *Store) BeginLoad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase != PhaseIdle {
		return false
	}
	s.snapshot.Phase = PhaseLoading
	return true
}

// CompleteLoad applies a load result. Success sets the canonical set once and
// the filtered set to a copy of it; failure records the error and keeps both
// empty. It returns false unless the store was Loading.
func (s *Store) CompleteLoad(res listing.LoadResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase != PhaseLoading {
		return false
	}
	s.snapshot.LoadedAt = time.Now()
	if res.Err != nil {
		s.snapshot.Phase = PhaseFailed
		s.snapshot.LoadError = res.Err
		s.snapshot.Canonical = nil
		s.snapshot.Filtered = nil
		return true
	}

	s.snapshot.Phase = PhaseLoaded
	s.snapshot.LoadError = nil
	s.snapshot.Canonical = cloneRecords(res.Records)
	s.snapshot.Filtered = cloneRecords(res.Records)
	return true
}

// SetQuery replaces the whole query without filtering.
func (s *Store) SetQuery(q listing.Query) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Query = q
}

// SetQueryField edits one query field without filtering.
func (s *Store) SetQueryField(f listing.Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Query.Set(f, value)
}

// Search recomputes the filtered set from the canonical set and the current
// query, and returns its size.
func (s *Store) Search() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Filtered = listing.Filter(s.snapshot.Canonical, s.snapshot.Query)
	s.snapshot.Searches++
	return len(s.snapshot.Filtered)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Canonical = cloneRecords(s.snapshot.Canonical)
	snap.Filtered = cloneRecords(s.snapshot.Filtered)
	return snap
}

func cloneRecords(items []listing.CarRecord) []listing.CarRecord {
	if len(items) == 0 {
		return nil
	}
	dup := make([]listing.CarRecord, len(items))
	copy(dup, items)
	return dup
}
