package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/carlot/internal/listing"
	"github.com/five82/carlot/internal/state"
)

type stubSource struct {
	records []listing.CarRecord
	err     error
	calls   int
	release chan struct{}
}

func (s *stubSource) ListDocuments(ctx context.Context, _, _ string) ([]listing.CarRecord, error) {
	s.calls++
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.records, s.err
}

func strPtr(v string) *string { return &v }

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("loader did not finish")
	}
}

func TestStartLoader_PopulatesStore(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	src := &stubSource{records: []listing.CarRecord{
		{ID: "1", CarName: strPtr("Toyota")},
		{ID: "2", CarName: strPtr("Honda")},
	}}
	store := &state.Store{}

	done := StartLoader(context.Background(), store, src, listing.Collection{DatabaseID: "db", CollectionID: "cars"}, zap.New(core))
	waitDone(t, done)

	snap := store.Snapshot()
	if snap.Phase != state.PhaseLoaded {
		t.Fatalf("Phase = %v, want loaded", snap.Phase)
	}
	if len(snap.Canonical) != 2 || len(snap.Filtered) != 2 {
		t.Fatalf("canonical/filtered = %d/%d, want 2/2", len(snap.Canonical), len(snap.Filtered))
	}
	if src.calls != 1 {
		t.Fatalf("source calls = %d, want 1", src.calls)
	}
	if logs.FilterMessage("listings loaded").Len() != 1 {
		t.Fatalf("expected one 'listings loaded' log entry, got %v", logs.All())
	}
}

func TestStartLoader_ShowsLoadingUntilResult(t *testing.T) {
	src := &stubSource{release: make(chan struct{})}
	store := &state.Store{}

	done := StartLoader(context.Background(), store, src, listing.Collection{}, nil)
	if snap := store.Snapshot(); snap.Phase != state.PhaseLoading || !snap.Loading() {
		t.Fatalf("Phase = %v, want loading while the read is in flight", snap.Phase)
	}
	close(src.release)
	waitDone(t, done)

	if snap := store.Snapshot(); snap.Phase != state.PhaseLoaded || !snap.Empty() {
		t.Fatalf("snapshot = %+v, want loaded and empty", snap)
	}
}

func TestStartLoader_FailureLogsCauseAndStoresGenericMessage(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	src := &stubSource{err: errors.New("401 unauthorized")}
	store := &state.Store{}

	waitDone(t, StartLoader(context.Background(), store, src, listing.Collection{DatabaseID: "db", CollectionID: "cars"}, zap.New(core)))

	snap := store.Snapshot()
	if !snap.Failed() {
		t.Fatalf("Phase = %v, want failed", snap.Phase)
	}
	if snap.ErrorMessage() != listing.LoadFailedMessage {
		t.Fatalf("ErrorMessage = %q, want %q", snap.ErrorMessage(), listing.LoadFailedMessage)
	}
	if len(snap.Canonical) != 0 || len(snap.Filtered) != 0 {
		t.Fatalf("failed load kept data: %+v", snap)
	}
	entries := logs.FilterMessage("listings load failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one failure log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["error"]; got == nil {
		t.Fatalf("failure log missing error field")
	}
}

func TestStartLoader_WarnsOnDuplicateIDs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	src := &stubSource{records: []listing.CarRecord{{ID: "a"}, {ID: "a"}}}

	waitDone(t, StartLoader(context.Background(), &state.Store{}, src, listing.Collection{}, zap.New(core)))

	if logs.FilterMessage("duplicate listing ids").Len() != 1 {
		t.Fatalf("expected duplicate id warning, got %v", logs.All())
	}
}

func TestStartLoader_SecondCallDoesNotReload(t *testing.T) {
	src := &stubSource{}
	store := &state.Store{}

	waitDone(t, StartLoader(context.Background(), store, src, listing.Collection{}, nil))
	waitDone(t, StartLoader(context.Background(), store, src, listing.Collection{}, nil))

	if src.calls != 1 {
		t.Fatalf("source calls = %d, want 1", src.calls)
	}
}

func TestStartLoader_CancelledContextFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := &stubSource{release: make(chan struct{})}
	store := &state.Store{}

	done := StartLoader(ctx, store, src, listing.Collection{}, nil)
	cancel()
	waitDone(t, done)

	if !store.Snapshot().Failed() {
		t.Fatalf("Phase = %v, want failed after cancellation", store.Snapshot().Phase)
	}
}
