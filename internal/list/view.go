package list

// View is the per-item capability interface the host implements. The
// controller drives it to keep the host's visuals in sync; a View never
// calls back into the controller.
type View interface {
	// Init is called exactly once, after the item has been bound to its
	// value, so the host can populate visual state.
	Init()

	// SelectionChanged is called whenever the item's selection flag
	// changes, through either the normal or the silent path.
	SelectionChanged(selected bool)

	// SetDisplayPosition is called whenever the item's logical index
	// changes so the host can keep a visual container's child ordering in
	// lockstep with the list order.
	SetDisplayPosition(index int)
}
