package list

// Item is one entry in a Controller. It wraps a single value set once at
// creation, owns its selection flag, and holds a non-owning reference back
// to the controller that created it, used only for notification.
type Item[T comparable] struct {
	ctrl      *Controller[T]
	view      View
	value     T
	selected  bool
	bound     bool
	destroyed bool
}

// Initialize binds the item to its controller and value. The binding
// happens exactly once; a second call fails with ErrAlreadyInitialized.
func (it *Item[T]) Initialize(ctrl *Controller[T], value T) error {
	if it.bound {
		return ErrAlreadyInitialized
	}
	it.ctrl = ctrl
	it.value = value
	it.bound = true
	return nil
}

// Value returns the wrapped value.
func (it *Item[T]) Value() T {
	return it.value
}

// Selected reports whether the item is currently selected.
func (it *Item[T]) Selected() bool {
	return it.selected
}

// View returns the host view attached to this item, if any.
func (it *Item[T]) View() View {
	return it.view
}

// SetSelected flips the selection flag through the normal path: the flag is
// updated, the controller arbitrates the change across the whole list, and
// only then is the item's own view notified. This is the only path that
// triggers controller-level arbitration.
func (it *Item[T]) SetSelected(selected bool) {
	if it.selected == selected {
		return
	}
	it.selected = selected
	if it.ctrl != nil {
		it.ctrl.onItemSelectionChanged(it, selected)
	}
	if it.view != nil {
		it.view.SelectionChanged(selected)
	}
}

// setSelectedSilently updates the flag and the item's own view callback
// without re-entering controller arbitration. The controller uses it when
// cascading selection state to other items.
func (it *Item[T]) setSelectedSilently(selected bool) {
	if it.selected == selected {
		return
	}
	it.selected = selected
	if it.view != nil {
		it.view.SelectionChanged(selected)
	}
}

// Destroy deregisters the item from its controller's sequence. It is safe
// against controller-initiated removal: the controller drops the item from
// the sequence before the host teardown runs, so the deregistration here
// finds nothing left to do.
func (it *Item[T]) Destroy() {
	if it.destroyed {
		return
	}
	it.destroyed = true
	if it.ctrl != nil {
		it.ctrl.deregister(it)
	}
}
