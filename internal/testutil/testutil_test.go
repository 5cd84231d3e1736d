package testutil

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestWithTimeout(t *testing.T) {
	ctx, cancel := WithTimeout(t)
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("context should have a deadline")
	}
	if time.Until(deadline) > TestTimeout {
		t.Error("deadline exceeds the test timeout")
	}
}

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, 1, 1)
	AssertEqual(t, "a", "a")
}

func TestEventually(t *testing.T) {
	var flip atomic.Bool
	go func() {
		time.Sleep(10 * time.Millisecond)
		flip.Store(true)
	}()
	Eventually(t, time.Second, flip.Load)
}
