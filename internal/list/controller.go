package list

import (
	"fmt"
	"iter"
)

// Controller owns an ordered sequence of items and arbitrates selection
// changes across them. Insertion order is display order: the sequence is the
// single source of truth for both logical and visual placement, and every
// mutation pushes fresh display positions to the affected item views.
//
// All methods are meant to be called from the single goroutine that owns the
// UI loop. Nothing here blocks, suspends or spawns; every operation
// completes before it returns.
type Controller[T comparable] struct {
	items          []*Item[T]
	canMultiselect bool

	viewFactory    func(*Item[T]) View
	destroyFn      func(*Item[T])
	rangeSelect    func() bool
	additiveSelect func() bool

	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func()
}

// NewController creates an empty controller. Multiselect starts disabled.
func NewController[T comparable]() *Controller[T] {
	return &Controller[T]{}
}

// SetViewFactory sets the function used to materialize a host view for each
// new item. The factory runs after the item is bound to its value; items
// created while no factory is set simply have no view.
func (c *Controller[T]) SetViewFactory(fn func(*Item[T]) View) {
	c.viewFactory = fn
}

// SetDestroyFunc sets the host teardown hook for removed items. The hook
// must synchronously trigger the item's own Destroy before returning; the
// controller calls Destroy afterwards anyway, which is a no-op when the host
// already did.
func (c *Controller[T]) SetDestroyFunc(fn func(*Item[T])) {
	c.destroyFn = fn
}

// SetRangeSelectFunc sets the predicate polled at arbitration time to decide
// whether a contiguous span should be selected (shift-click semantics).
func (c *Controller[T]) SetRangeSelectFunc(fn func() bool) {
	c.rangeSelect = fn
}

// SetAdditiveSelectFunc sets the predicate polled at arbitration time to
// decide whether a flip should preserve the other selected items
// (command/ctrl-click semantics).
func (c *Controller[T]) SetAdditiveSelectFunc(fn func() bool) {
	c.additiveSelect = fn
}

// OnSelectionChange registers fn to run synchronously after every arbitrated
// selection change, exactly once per triggering flip. The returned function
// removes the subscription.
func (c *Controller[T]) OnSelectionChange(fn func()) func() {
	c.nextSubID++
	id := c.nextSubID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range c.subscribers {
			if s.id == id {
				c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Append inserts value at the end of the list.
func (c *Controller[T]) Append(value T) (*Item[T], error) {
	return c.insertAt(len(c.items), value)
}

// Insert inserts value before the item currently at index. The index is
// clamped into [0, count-1], so Insert never extends the tail past the
// current bounds; Append is the way to grow the end. Inserting into an empty
// list always lands at index 0.
func (c *Controller[T]) Insert(index int, value T) (*Item[T], error) {
	if index < 0 {
		index = 0
	}
	if n := len(c.items); n > 0 && index > n-1 {
		index = n - 1
	} else if n == 0 {
		index = 0
	}
	return c.insertAt(index, value)
}

func (c *Controller[T]) insertAt(index int, value T) (*Item[T], error) {
	if c.ContainsValue(value) {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateValue, value)
	}

	it := &Item[T]{}
	if err := it.Initialize(c, value); err != nil {
		return nil, err
	}
	if c.viewFactory != nil {
		it.view = c.viewFactory(it)
	}
	if it.view != nil {
		it.view.Init()
	}

	c.items = append(c.items, nil)
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = it
	c.syncPositions(index)
	return it, nil
}

// RemoveValue removes the at-most-one item wrapping value and reports
// whether one was found.
func (c *Controller[T]) RemoveValue(value T) bool {
	for i, it := range c.items {
		if it.value == value {
			c.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveSelected removes every currently selected item. The scan runs in
// reverse so indices stay valid while items disappear.
func (c *Controller[T]) RemoveSelected() {
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i].selected {
			c.removeAt(i)
		}
	}
}

// Clear removes all items.
func (c *Controller[T]) Clear() {
	for i := len(c.items) - 1; i >= 0; i-- {
		c.removeAt(i)
	}
}

// removeAt drops the item from the sequence first and only then hands it to
// the host for teardown, so the item's own deregistration finds nothing left
// to do and double removal cannot happen.
func (c *Controller[T]) removeAt(index int) {
	it := c.items[index]
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.syncPositions(index)
	if c.destroyFn != nil {
		c.destroyFn(it)
	}
	it.Destroy()
}

// deregister removes it from the sequence if it is still there. Reached from
// Item.Destroy.
func (c *Controller[T]) deregister(it *Item[T]) {
	for i, other := range c.items {
		if other == it {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.syncPositions(i)
			return
		}
	}
}

// MoveSelected shifts every selected item by delta positions, negative
// toward index 0 and positive toward the end. The scan direction keeps
// relative order intact: ascending for negative deltas, descending for
// positive ones. Each target index is clamped into bounds; once any moved
// item's unclamped target would fall outside the list, the scan stops and
// the remaining selected items do not move this call.
func (c *Controller[T]) MoveSelected(delta int) {
	if delta == 0 || len(c.items) == 0 {
		return
	}
	if delta < 0 {
		for i := 0; i < len(c.items); i++ {
			if c.items[i].selected && c.moveClamped(i, i+delta) {
				return
			}
		}
		return
	}
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i].selected && c.moveClamped(i, i+delta) {
			return
		}
	}
}

// moveClamped moves the item at from to target clamped into bounds and
// reports whether target itself was out of bounds.
func (c *Controller[T]) moveClamped(from, target int) bool {
	to := target
	if to < 0 {
		to = 0
	}
	if last := len(c.items) - 1; to > last {
		to = last
	}
	if to != from {
		it := c.items[from]
		c.items = append(c.items[:from], c.items[from+1:]...)
		c.items = append(c.items[:to], append([]*Item[T]{it}, c.items[to:]...)...)
		lo := from
		if to < lo {
			lo = to
		}
		c.syncPositions(lo)
	}
	return to != target
}

// SelectIndex marks the item at index selected through the normal path.
func (c *Controller[T]) SelectIndex(index int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	c.items[index].SetSelected(true)
	return nil
}

// SelectAll marks every item selected through the silent path. It does
// nothing while multiselect is disabled, and fires no list-level event.
func (c *Controller[T]) SelectAll() {
	if !c.canMultiselect {
		return
	}
	for _, it := range c.items {
		it.setSelectedSilently(true)
	}
}

// UnselectAll unmarks every item through the normal path, so each item's
// view callback fires and arbitration runs per flip.
func (c *Controller[T]) UnselectAll() {
	for _, it := range c.items {
		it.SetSelected(false)
	}
}

// Count returns the number of items.
func (c *Controller[T]) Count() int {
	return len(c.items)
}

// ItemAt returns the item handle at index.
func (c *Controller[T]) ItemAt(index int) (*Item[T], error) {
	if index < 0 || index >= len(c.items) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return c.items[index], nil
}

// ValueAt returns the value at index.
func (c *Controller[T]) ValueAt(index int) (T, error) {
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return c.items[index].value, nil
}

// ContainsValue reports whether an equal value is already in the list.
func (c *Controller[T]) ContainsValue(value T) bool {
	for _, it := range c.items {
		if it.value == value {
			return true
		}
	}
	return false
}

// SelectedValue returns the first selected value in list order.
func (c *Controller[T]) SelectedValue() (T, bool) {
	for _, it := range c.items {
		if it.selected {
			return it.value, true
		}
	}
	var zero T
	return zero, false
}

// SelectedIndex returns the first selected index, or -1 when nothing is
// selected.
func (c *Controller[T]) SelectedIndex() int {
	for i, it := range c.items {
		if it.selected {
			return i
		}
	}
	return -1
}

// SelectedValues returns a restartable sequence over the currently selected
// values in list order. Each ranging re-scans the live state.
func (c *Controller[T]) SelectedValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range c.items {
			if it.selected && !yield(it.value) {
				return
			}
		}
	}
}

// HasMultipleSelected reports whether more than one item is selected. It is
// always false while multiselect is disabled, whatever the underlying flags.
func (c *Controller[T]) HasMultipleSelected() bool {
	if !c.canMultiselect {
		return false
	}
	return c.selectedCount() > 1
}

// CanMultiselect reports whether multi-selection is enabled.
func (c *Controller[T]) CanMultiselect() bool {
	return c.canMultiselect
}

// SetCanMultiselect toggles the multiselect policy. Disabling it collapses
// any existing multi-selection down to the first selected item in ascending
// order; the rest are unselected through the silent path.
func (c *Controller[T]) SetCanMultiselect(enabled bool) {
	c.canMultiselect = enabled
	if enabled {
		return
	}
	kept := false
	for _, it := range c.items {
		if !it.selected {
			continue
		}
		if !kept {
			kept = true
			continue
		}
		it.setSelectedSilently(false)
	}
}

// onItemSelectionChanged is the single arbitration entry point, invoked by
// an item whose flag just flipped through the normal path. It decides which
// other flags must follow, adjusts them silently, then fires the list-level
// event exactly once.
func (c *Controller[T]) onItemSelectionChanged(it *Item[T], selected bool) {
	rangeMod := c.canMultiselect && c.pollRange()
	additiveMod := c.canMultiselect && c.pollAdditive()

	switch {
	case !rangeMod && !additiveMod:
		// Single-selection policy: if the item just became selected, or
		// anything else is still selected, every other item loses its flag.
		if selected || c.selectedCount() > 0 {
			for _, other := range c.items {
				if other != it {
					other.setSelectedSilently(false)
				}
			}
		}
	case rangeMod:
		// Force-select the span from the lowest to the highest selected
		// index. With fewer than two items selected this widens nothing;
		// the range never anchors on the first-clicked item. That matches
		// the shipped behavior and is deliberate.
		lo, hi := c.selectedSpan()
		for i := lo; i >= 0 && i <= hi; i++ {
			c.items[i].setSelectedSilently(true)
		}
	default:
		// Plain additive flip: it stands alone.
	}

	c.notifySelectionChange()
}

// selectedSpan returns the lowest and highest selected indices, or (-1, -1)
// when nothing is selected.
func (c *Controller[T]) selectedSpan() (lo, hi int) {
	lo, hi = -1, -1
	for i, it := range c.items {
		if !it.selected {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i
	}
	return lo, hi
}

func (c *Controller[T]) selectedCount() int {
	n := 0
	for _, it := range c.items {
		if it.selected {
			n++
		}
	}
	return n
}

func (c *Controller[T]) pollRange() bool {
	return c.rangeSelect != nil && c.rangeSelect()
}

func (c *Controller[T]) pollAdditive() bool {
	return c.additiveSelect != nil && c.additiveSelect()
}

// notifySelectionChange runs the subscriber list synchronously, strictly
// after all cascading silent updates for the triggering flip. Dispatch works
// off a snapshot so a subscriber unsubscribing (itself or another) mid-call
// cannot skip or double-invoke anyone this round.
func (c *Controller[T]) notifySelectionChange() {
	subs := make([]subscriber, len(c.subscribers))
	copy(subs, c.subscribers)
	for _, s := range subs {
		s.fn()
	}
}

// syncPositions pushes fresh display positions to every view at or after
// index from, in ascending order.
func (c *Controller[T]) syncPositions(from int) {
	for i := from; i < len(c.items); i++ {
		if v := c.items[i].view; v != nil {
			v.SetDisplayPosition(i)
		}
	}
}
