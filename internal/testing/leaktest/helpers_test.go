package leaktest

import (
	"sync"
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t).WithTimeout(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		<-done
	}()
	t.Cleanup(func() { close(done) })

	checker.Check(1)
}

func TestGoroutineChecker_WaitsForTimers(t *testing.T) {
	checker := NewGoroutineChecker(t)

	// Exits after the checker starts polling
	fired := make(chan struct{})
	time.AfterFunc(20*time.Millisecond, func() { close(fired) })
	go func() { <-fired }()

	checker.Check(0)
}

func TestCheckNoGoroutineLeak_Success(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestWaitForCount_TimesOut(t *testing.T) {
	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	if _, ok := waitForCount(0, 20*time.Millisecond); ok {
		t.Error("Expected timeout while a goroutine is still blocked")
	}
}
