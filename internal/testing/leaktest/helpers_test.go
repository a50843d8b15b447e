package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures Errorf calls so failing checks can be asserted on
type recordingTB struct {
	testing.TB
	mu     sync.Mutex
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = true
}

func TestCheckNoGoroutineLeak_FinishedGoroutines(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(5 * time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestGoroutineChecker_WaitsForExitingGoroutines(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() {
		time.Sleep(50 * time.Millisecond)
	}()

	checker.Check(0)
}

func TestGoroutineChecker_ToleranceAllowsKnownGoroutines(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() { <-done }()
	t.Cleanup(func() { close(done) })

	checker.Check(1)
}

func TestGoroutineChecker_ReportsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	checker.Check(0)
	assert.True(t, rec.failed)
}
