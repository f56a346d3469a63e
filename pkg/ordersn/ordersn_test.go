package ordersn

import (
	"sync"
	"testing"
)

func TestGen(t *testing.T) {
	sn := Gen()
	if len(sn) < 12 {
		t.Fatalf("expected sn length >= 12, got %q", sn)
	}
}

func TestGen_Unique(t *testing.T) {
	const n = 10000
	sns := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		sn := Gen()
		if _, exists := sns[sn]; exists {
			t.Fatalf("duplicate sn found: %s", sn)
		}
		sns[sn] = struct{}{}
	}
}

func TestGen_Concurrent(t *testing.T) {
	const (
		goroutines = 10
		perRoutine = 1000
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sns = make(map[string]struct{}, goroutines*perRoutine)
	)

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				sn := Gen()

				mu.Lock()
				if _, exists := sns[sn]; exists {
					t.Errorf("duplicate sn found in concurrent test: %s", sn)
				}
				sns[sn] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
}
