package frappe_test

import (
	"testing"

	"github.com/darkstalker/frappe"
	"github.com/stretchr/testify/assert"
)

// only the most recently installed inner stream is forwarded
func TestSwitchLatestOnly(t *testing.T) {
	outer := frappe.NewSink[*frappe.Stream[int]]()
	out := frappe.Switch(outer.Stream())
	got := collect(out)

	s1 := frappe.NewSink[int]()
	s2 := frappe.NewSink[int]()

	outer.Send(s1.Stream())
	s1.Send(1)
	assert.Equal(t, []int{1}, *got)

	// install s2 before s1 fires again: s1 events must never appear
	outer.Send(s2.Stream())
	s1.Send(2)
	s2.Send(3)
	assert.Equal(t, []int{1, 3}, *got)

	// switching back re-subscribes with a fresh generation
	outer.Send(s1.Stream())
	s2.Send(4)
	s1.Send(5)
	assert.Equal(t, []int{1, 3, 5}, *got)
}

// the superseded subscription must not disturb the inner stream's own
// consumers
func TestSwitchLeavesInnerIntact(t *testing.T) {
	outer := frappe.NewSink[*frappe.Stream[int]]()
	out := frappe.Switch(outer.Stream())
	got := collect(out)

	s1 := frappe.NewSink[int]()
	direct := collect(s1.Stream())

	outer.Send(s1.Stream())
	outer.Send(frappe.NewSink[int]().Stream())
	s1.Feed(1, 2)
	assert.Empty(t, *got)
	assert.Equal(t, []int{1, 2}, *direct)
}

// a dropped output prunes the outer subscription on the next inner stream
func TestSwitchDroppedOutput(t *testing.T) {
	outer := frappe.NewSink[*frappe.Stream[int]]()
	out := frappe.Switch(outer.Stream())
	got := collect(out)

	s1 := frappe.NewSink[int]()
	outer.Send(s1.Stream())
	out.Drop()

	s1.Send(1)
	outer.Send(s1.Stream())
	s1.Send(2)
	assert.Empty(t, *got)
}
