package state

import (
	"sync"
	"testing"
	"time"

	"github.com/five82/cocktaildb"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(cocktaildb.Drink{"idDrink": "11007", "strDrink": "Margarita"})

	snap := s.Snapshot()
	if !snap.HasFeatured || snap.Featured.Name() != "Margarita" {
		t.Fatalf("snapshot featured = %#v, want Margarita", snap.Featured)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Featured["strDrink"] = "mutated"
	if got := s.Snapshot().Featured.Name(); got != "Margarita" {
		t.Fatalf("Snapshot should clone the drink; got %q want Margarita", got)
	}
}

func TestStore_UpdateClonesInput(t *testing.T) {
	var s Store

	drink := cocktaildb.Drink{"strDrink": "Mojito"}
	s.Update(drink)
	drink["strDrink"] = "mutated"

	if got := s.Snapshot().Featured.Name(); got != "Mojito" {
		t.Fatalf("Update should clone the drink; got %q want Mojito", got)
	}
}

func TestStore_MissKeepsPreviousDrink(t *testing.T) {
	var s Store

	s.Update(cocktaildb.Drink{"strDrink": "Negroni"})
	s.Update(nil)

	snap := s.Snapshot()
	if !snap.HasFeatured || snap.Featured.Name() != "Negroni" {
		t.Fatalf("featured changed on miss: %#v", snap.Featured)
	}
	if snap.ConsecutiveMisses != 1 {
		t.Fatalf("ConsecutiveMisses = %d, want 1", snap.ConsecutiveMisses)
	}
}

func TestStore_ConsecutiveMisses(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap.ConsecutiveMisses != 0 || snap.IsOffline() || snap.HasFeatured {
		t.Fatalf("zero store = %#v, want empty and online", snap)
	}

	s.Update(nil)
	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 miss")
	}

	s.Update(nil)
	snap := s.Snapshot()
	if snap.ConsecutiveMisses != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 misses: %#v, want offline", snap)
	}

	s.Update(cocktaildb.Drink{"strDrink": "Sidecar"})
	snap = s.Snapshot()
	if snap.ConsecutiveMisses != 0 || snap.IsOffline() {
		t.Fatalf("after success: %#v, want online", snap)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var s Store
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Update(cocktaildb.Drink{"strDrink": "Gimlet"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Snapshot().Featured.Name()
			}
		}()
	}
	wg.Wait()

	if s.Snapshot().Featured.Name() != "Gimlet" {
		t.Fatalf("featured = %q, want Gimlet", s.Snapshot().Featured.Name())
	}
}
