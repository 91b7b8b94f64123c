// Package state holds the explicit state container for carlot.
//
// The Store owns the canonical dataset, the filtered dataset, the active query
// and the loader phase. The loader goroutine writes the one load result; the
// UI edits the query, triggers Search and reads Snapshots on its own tick.
//
//	Loader goroutine:            UI (Bubble Tea update loop):
//	  BeginLoad()                  SetQueryField / SetQuery
//	  <- listing.LoadAsync         Search()
//	  CompleteLoad(result) ──────> Snapshot() ──> render
//
// # Load phases
//
//	Idle ──BeginLoad──> Loading ──CompleteLoad──> Loaded | Failed
//
// Loaded and Failed are terminal. A second BeginLoad or a CompleteLoad outside
// Loading is refused and reported by a false return.
//
// # Invariants
//
//   - Canonical is written exactly once, by a successful CompleteLoad
//   - Filtered is always recomputed from Canonical, never from itself
//   - A failed load leaves both datasets empty
//
// # Copying
//
// Snapshot clones both record slices so callers may reorder or truncate them
// freely. The records themselves are shared and treated as read-only.
package state
