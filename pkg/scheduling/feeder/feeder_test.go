package feeder

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vnykmshr/gobag/internal/testutil"
	gberrors "github.com/vnykmshr/gobag/pkg/common/errors"
	"github.com/vnykmshr/gobag/pkg/metrics"
)

// recordingTarget collects pushed items.
type recordingTarget[T any] struct {
	mu    sync.Mutex
	items []T
}

func (r *recordingTarget[T]) Push(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
}

func (r *recordingTarget[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func TestNewRejectsNilTarget(t *testing.T) {
	_, err := New[int](nil)
	testutil.AssertError(t, err)
	if !errors.Is(err, gberrors.ErrInvalidConfiguration) {
		t.Errorf("error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestAddValidation(t *testing.T) {
	f, err := New[int](&recordingTarget[int]{})
	testutil.AssertNoError(t, err)

	_, err = f.Add("", func() int { return 0 })
	testutil.AssertError(t, err)

	_, err = f.Add("@hourly", nil)
	testutil.AssertError(t, err)

	_, err = f.Add("not a schedule", func() int { return 0 })
	testutil.AssertError(t, err)
}

func TestEntriesAndRemove(t *testing.T) {
	f, err := New[int](&recordingTarget[int]{})
	testutil.AssertNoError(t, err)

	id, err := f.Add("@hourly", func() int { return 1 })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(f.Entries()), 1)

	f.Remove(id)
	testutil.AssertEqual(t, len(f.Entries()), 0)
}

func TestFeederPushesOnSchedule(t *testing.T) {
	target := &recordingTarget[int]{}
	f, err := New[int](target)
	testutil.AssertNoError(t, err)

	next := 0
	_, err = f.Add("@every 10ms", func() int {
		next++
		return next
	})
	testutil.AssertNoError(t, err)

	f.Start()
	testutil.Eventually(t, 2*time.Second, func() bool {
		return target.len() >= 2
	})
	f.Stop()

	// No ticks after Stop returned.
	count := target.len()
	time.Sleep(30 * time.Millisecond)
	testutil.AssertEqual(t, target.len(), count)

	target.mu.Lock()
	defer target.mu.Unlock()
	for i, v := range target.items {
		if v != i+1 {
			t.Fatalf("items[%d] = %d, want %d", i, v, i+1)
		}
	}
}

func TestStopWithoutStart(t *testing.T) {
	f, err := New[int](&recordingTarget[int]{})
	testutil.AssertNoError(t, err)
	f.Stop() // must not hang
}

func TestFeederTickMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	target := &recordingTarget[int]{}
	f, err := NewWithMetricsConfig[int](target, "test_feeder", metrics.Config{
		Enabled:  true,
		Registry: reg,
	})
	testutil.AssertNoError(t, err)

	_, err = f.Add("@every 10ms", func() int { return 1 })
	testutil.AssertNoError(t, err)

	f.Start()
	testutil.Eventually(t, 2*time.Second, func() bool {
		return target.len() >= 3
	})
	f.Stop()

	ticks := promtestutil.ToFloat64(f.registry.FeederTicks.WithLabelValues("test_feeder"))
	if ticks < 3 {
		t.Errorf("ticks = %v, want >= 3", ticks)
	}
	testutil.AssertEqual(t, int(ticks), target.len())
}
