package formflow

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalesces(t *testing.T) {
	var calls int64
	d := NewDebouncer(30*time.Millisecond, func() { atomic.AddInt64(&calls, 1) })
	defer d.Stop()

	// a burst of triggers within the window fires once
	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(80 * time.Millisecond)
	if n := atomic.LoadInt64(&calls); n != 1 {
		t.Errorf("expected 1 call after burst, got %d", n)
	}

	// a second burst fires once more
	d.Trigger()
	time.Sleep(80 * time.Millisecond)
	if n := atomic.LoadInt64(&calls); n != 2 {
		t.Errorf("expected 2 calls, got %d", n)
	}
}

func TestDebouncerFlush(t *testing.T) {
	var calls int64
	d := NewDebouncer(time.Hour, func() { atomic.AddInt64(&calls, 1) })
	defer d.Stop()

	d.Trigger()
	d.Flush()
	if n := atomic.LoadInt64(&calls); n != 1 {
		t.Fatalf("Flush must fire the pending call, got %d", n)
	}

	// nothing pending: Flush is a no-op
	d.Flush()
	if n := atomic.LoadInt64(&calls); n != 1 {
		t.Errorf("Flush without pending call must not fire, got %d", n)
	}
}

func TestDebouncerStop(t *testing.T) {
	var calls int64
	d := NewDebouncer(20*time.Millisecond, func() { atomic.AddInt64(&calls, 1) })

	d.Trigger()
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Errorf("stopped debouncer must not fire, got %d", n)
	}

	// triggers after Stop are ignored
	d.Trigger()
	time.Sleep(60 * time.Millisecond)
	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Errorf("trigger after Stop must not fire, got %d", n)
	}
}

func TestDebouncerDefaultDelay(t *testing.T) {
	d := NewDebouncer(0, func() {})
	defer d.Stop()
	if d.delay != DefaultDebounceDelay {
		t.Errorf("expected default delay %v, got %v", DefaultDebounceDelay, d.delay)
	}
}
