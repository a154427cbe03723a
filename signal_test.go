package frappe_test

import (
	"sync"
	"testing"

	"github.com/darkstalker/frappe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalBasic(t *testing.T) {
	sig := frappe.Constant(42)
	assert.Equal(t, 42, sig.Sample())
	sig.SampleWith(func(v int) {
		assert.Equal(t, 42, v)
	})

	n := 1
	dyn := frappe.FromFn(func() int { return n })
	double := frappe.MapSignal(dyn, func(v int) int { return v * 2 })
	assert.Equal(t, 1, dyn.Sample())
	assert.Equal(t, 2, double.Sample())
	n = 13
	assert.Equal(t, 13, dyn.Sample())
	assert.Equal(t, 26, double.Sample())
}

// dynamic signals recompute on every sample, nothing is cached
func TestSignalNoCaching(t *testing.T) {
	samples := 0
	sig := frappe.FromFn(func() int {
		samples++
		return samples
	})
	mapped := frappe.MapSignal(sig, func(v int) int { return v })

	mapped.Sample()
	mapped.Sample()
	assert.Equal(t, 2, samples)
}

func TestHold(t *testing.T) {
	sink := frappe.NewSink[int]()
	sig := sink.Stream().Hold(0)

	assert.Equal(t, 0, sig.Sample())
	sink.Feed(5, 9)
	assert.Equal(t, 9, sig.Sample())
}

func TestHoldIf(t *testing.T) {
	sink := frappe.NewSink[int]()
	sig := sink.Stream().HoldIf(0, func(x int) bool { return x%2 == 0 })

	sink.Feed(2, 3, 4, 5)
	assert.Equal(t, 4, sig.Sample())
}

func TestFold(t *testing.T) {
	sink := frappe.NewSink[int]()
	sum := frappe.Fold(sink.Stream(), 0, func(acc, x int) int { return acc + x })

	sink.Feed(1, 2, 3)
	assert.Equal(t, 6, sum.Sample())
}

// a dropped signal keeps its last value but stops updating
func TestSignalDrop(t *testing.T) {
	sink := frappe.NewSink[int]()
	sig := sink.Stream().Hold(0)

	sink.Send(1)
	sig.Drop()
	sink.Send(2)
	assert.Equal(t, 1, sig.Sample())
}

// the hold subscription keeps the upstream chain alive through the signal
func TestSignalKeepAlive(t *testing.T) {
	sink := frappe.NewSink[int]()
	doubled := frappe.Map(sink.Stream(), func(x int) int { return x * 2 })
	sig := doubled.Hold(0)

	doubled.Drop()
	sink.Send(21)
	assert.Equal(t, 42, sig.Sample())
}

// snapshot combines the signal value at fire time with the trigger event
func TestSnapshot(t *testing.T) {
	src := frappe.NewSink[int]()
	sig := src.Stream().Hold(0)

	trigger := frappe.NewSink[string]()
	snap := frappe.Snapshot(sig, trigger.Stream(), func(v int, ev string) string {
		return string(rune('0'+v)) + ev
	})
	got := collect(snap)

	src.Send(1)
	trigger.Send("a")
	// an update after the trigger was processed must not affect that output
	src.Send(2)
	assert.Equal(t, []string{"1a"}, *got)

	trigger.Send("b")
	assert.Equal(t, []string{"1a", "2b"}, *got)
}

// sampling a nested signal flattens one level, outer then inner
func TestSwitchSignal(t *testing.T) {
	a := frappe.Constant(1)
	b := frappe.Constant(2)
	useA := true
	outer := frappe.FromFn(func() frappe.Signal[int] {
		if useA {
			return a
		}
		return b
	})

	flat := frappe.SwitchSignal(outer)
	assert.Equal(t, 1, flat.Sample())
	useA = false
	assert.Equal(t, 2, flat.Sample())
}

func TestFromStorage(t *testing.T) {
	st := frappe.NewStorage(5)
	sig := frappe.FromStorage(st, nil)

	assert.Equal(t, 5, sig.Sample())
	st.Set(6)
	assert.Equal(t, 6, sig.Sample())
}

// sampling drains the queue and keeps the last value; an empty drain is
// idempotent
func TestFromChannel(t *testing.T) {
	rx := frappe.NewReceiver[int]()
	sig := frappe.FromChannel(0, rx)

	rx.Send(1)
	rx.Send(2)
	rx.Send(3)
	assert.Equal(t, 3, sig.Sample())
	assert.Equal(t, 3, sig.Sample())

	rx.Send(4)
	assert.Equal(t, 4, sig.Sample())
}

func TestFoldChannel(t *testing.T) {
	rx := frappe.NewReceiver[int]()
	sig := frappe.FoldChannel(10, rx, func(acc, x int) int { return acc + x })

	rx.Send(1)
	rx.Send(2)
	rx.Send(3)
	assert.Equal(t, 16, sig.Sample())
	assert.Equal(t, 16, sig.Sample())

	rx.Send(4)
	assert.Equal(t, 20, sig.Sample())
}

// channel-backed signals are the cross-goroutine ingress into the graph
func TestFoldChannelAcrossGoroutines(t *testing.T) {
	rx := frappe.NewReceiver[int]()
	sum := frappe.FoldChannel(0, rx, func(acc, x int) int { return acc + x })

	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 1; i <= 100; i++ {
				require.True(t, rx.Send(i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4*5050, sum.Sample())
}

// a stream-fed signal can be sampled from another goroutine
func TestHoldSampledConcurrently(t *testing.T) {
	sink := frappe.NewSink[int]()
	sig := sink.Stream().Hold(0)
	sink.Send(7)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 7, sig.Sample())
		}()
	}
	wg.Wait()
}

func TestLift(t *testing.T) {
	a := frappe.NewSink[int]()
	b := frappe.NewSink[int]()
	width := a.Stream().Hold(2)
	height := b.Stream().Hold(3)

	area := frappe.Lift2(func(w, h int) int { return w * h }, width, height)
	assert.Equal(t, 6, area.Sample())

	a.Send(5)
	assert.Equal(t, 15, area.Sample())

	label := frappe.Lift3(
		func(w, h, area int) bool { return w*h == area },
		width, height, area,
	)
	assert.True(t, label.Sample())
}
