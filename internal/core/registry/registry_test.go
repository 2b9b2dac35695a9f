package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

var testKey = domain.AssetKey{Contract: "0xabc", TokenID: "1"}

func TestCreate_Success(t *testing.T) {
	r := New()

	listing, err := r.Create(testKey, 100, "seller")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !listing.Active || listing.Price != 100 || listing.Seller != "seller" {
		t.Errorf("unexpected listing: %+v", listing)
	}

	got, err := r.Lookup(testKey)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != listing {
		t.Errorf("lookup mismatch: %+v", got)
	}
}

func TestCreate_AlreadyListed(t *testing.T) {
	r := New()

	if _, err := r.Create(testKey, 100, "seller"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := r.Create(testKey, 200, "other")
	if !errors.Is(err, domain.ErrAlreadyListed) {
		t.Errorf("expected ErrAlreadyListed, got %v", err)
	}

	// the original listing must be untouched
	got, _ := r.Lookup(testKey)
	if got.Price != 100 || got.Seller != "seller" {
		t.Errorf("listing changed: %+v", got)
	}
}

func TestCreate_InvalidPrice(t *testing.T) {
	r := New()

	_, err := r.Create(testKey, 0, "seller")
	if !errors.Is(err, domain.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}
	if _, err := r.Lookup(testKey); !errors.Is(err, domain.ErrNotListed) {
		t.Errorf("zero-price create left state behind: %v", err)
	}
}

func TestUpdatePrice(t *testing.T) {
	r := New()
	r.Create(testKey, 50, "seller")

	if err := r.UpdatePrice(testKey, 75, "seller"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ := r.Lookup(testKey)
	if got.Price != 75 {
		t.Errorf("expected price 75, got %d", got.Price)
	}

	if err := r.UpdatePrice(testKey, 99, "other"); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}
	got, _ = r.Lookup(testKey)
	if got.Price != 75 {
		t.Errorf("unauthorized update changed price to %d", got.Price)
	}

	if err := r.UpdatePrice(testKey, 0, "seller"); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestUpdatePrice_NotListed(t *testing.T) {
	r := New()

	if err := r.UpdatePrice(testKey, 10, "seller"); !errors.Is(err, domain.ErrNotListed) {
		t.Errorf("expected ErrNotListed, got %v", err)
	}
}

func TestRemove_ReturnsCapturedRecord(t *testing.T) {
	r := New()
	r.Create(testKey, 100, "seller")

	removed, err := r.Remove(testKey, "seller")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if removed.Seller != "seller" || removed.Price != 100 {
		t.Errorf("removed record lost fields: %+v", removed)
	}

	if _, err := r.Lookup(testKey); !errors.Is(err, domain.ErrNotListed) {
		t.Errorf("expected ErrNotListed after remove, got %v", err)
	}
	if _, err := r.Remove(testKey, "seller"); !errors.Is(err, domain.ErrNotListed) {
		t.Errorf("second remove: expected ErrNotListed, got %v", err)
	}
}

func TestRemove_NotAuthorized(t *testing.T) {
	r := New()
	r.Create(testKey, 100, "seller")

	if _, err := r.Remove(testKey, "other"); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}
	if _, err := r.Lookup(testKey); err != nil {
		t.Errorf("listing should survive unauthorized remove: %v", err)
	}
}

func TestTake_SkipsAuthorization(t *testing.T) {
	r := New()
	r.Create(testKey, 100, "seller")

	taken, err := r.Take(testKey)
	if err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if taken.Seller != "seller" || taken.Price != 100 {
		t.Errorf("taken record lost fields: %+v", taken)
	}

	if _, err := r.Take(testKey); !errors.Is(err, domain.ErrNotListed) {
		t.Errorf("second take: expected ErrNotListed, got %v", err)
	}
}

func TestRestore(t *testing.T) {
	r := New()
	r.Create(testKey, 100, "seller")
	taken, _ := r.Take(testKey)

	if err := r.Restore(taken); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	got, err := r.Lookup(testKey)
	if err != nil {
		t.Fatalf("lookup after restore failed: %v", err)
	}
	if got.Price != 100 || got.Seller != "seller" || !got.Active {
		t.Errorf("restored listing mismatch: %+v", got)
	}

	if err := r.Restore(taken); !errors.Is(err, domain.ErrAlreadyListed) {
		t.Errorf("restore over active listing: expected ErrAlreadyListed, got %v", err)
	}
}

func TestTake_ConcurrentSingleWinner(t *testing.T) {
	r := New()
	r.Create(testKey, 100, "seller")

	var wg sync.WaitGroup
	wins := make(chan domain.Listing, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if taken, err := r.Take(testKey); err == nil {
				wins <- taken
			}
		}()
	}

	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	if count != 1 {
		t.Errorf("expected exactly 1 successful take, got %d", count)
	}
}
