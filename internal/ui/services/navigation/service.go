package navigation

// Service handles all cursor movement over the visible list
type Service struct {
	state   *State
	queryFn func() int // Function to get max index from the list
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		state: &State{
			Cursor:         0,
			ViewportOffset: 0,
			ViewportHeight: 20, // Default, will be updated
			MaxIndex:       0,
		},
	}
}

// SetQueryFunction sets the function to query max index
func (s *Service) SetQueryFunction(fn func() int) {
	s.queryFn = fn
}

// Cursor returns current cursor position
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// ViewportOffset returns current viewport offset
func (s *Service) ViewportOffset() int {
	return s.state.ViewportOffset
}

// ViewportHeight returns current viewport height
func (s *Service) ViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	// Reserve space for title, status bar and help line
	effectiveHeight := height - 6
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	s.state.ViewportHeight = effectiveHeight
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionUp:
		s.moveUp()
	case DirectionDown:
		s.moveDown()
	case DirectionPageUp:
		s.pageUp()
	case DirectionPageDown:
		s.pageDown()
	case DirectionHome:
		s.moveToStart()
	case DirectionEnd:
		s.moveToEnd()
	}
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

// Internal navigation methods
func (s *Service) moveUp() {
	if s.state.Cursor > 0 {
		s.state.Cursor--
		s.ensureVisible()
	}
}

func (s *Service) moveDown() {
	if s.queryFn != nil {
		s.state.MaxIndex = s.queryFn()
	}
	if s.state.Cursor < s.state.MaxIndex {
		s.state.Cursor++
		s.ensureVisible()
	}
}

func (s *Service) pageUp() {
	pageSize := s.state.ViewportHeight - 1
	target := s.state.Cursor - pageSize
	s.state.Cursor = s.clampIndex(target)

	s.state.ViewportOffset -= pageSize
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
	s.ensureVisible()
}

func (s *Service) pageDown() {
	pageSize := s.state.ViewportHeight - 1
	target := s.state.Cursor + pageSize
	s.state.Cursor = s.clampIndex(target)
	s.ensureVisible()
}

func (s *Service) moveToStart() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

func (s *Service) moveToEnd() {
	if s.queryFn != nil {
		s.state.MaxIndex = s.queryFn()
	}
	s.state.Cursor = s.state.MaxIndex
	if s.state.Cursor < 0 {
		s.state.Cursor = 0
	}
	s.ensureVisible()
}

// Helper methods
func (s *Service) clampIndex(index int) int {
	if s.queryFn != nil {
		s.state.MaxIndex = s.queryFn()
	}
	// An empty list reports max index -1; the cursor still parks at 0
	if index < 0 || s.state.MaxIndex < 0 {
		return 0
	}
	if index > s.state.MaxIndex {
		return s.state.MaxIndex
	}
	return index
}

func (s *Service) ensureVisible() {
	// Ensure cursor is visible within viewport
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
}
