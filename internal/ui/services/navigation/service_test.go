package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newService(maxIndex int) *Service {
	s := NewService()
	s.SetQueryFunction(func() int { return maxIndex })
	return s
}

func TestNavigateClampsAtBounds(t *testing.T) {
	s := newService(2)

	s.Navigate(DirectionUp)
	require.Equal(t, 0, s.Cursor())

	s.Navigate(DirectionDown)
	s.Navigate(DirectionDown)
	s.Navigate(DirectionDown)
	require.Equal(t, 2, s.Cursor())
}

func TestHomeAndEnd(t *testing.T) {
	s := newService(9)

	s.Navigate(DirectionEnd)
	require.Equal(t, 9, s.Cursor())

	s.Navigate(DirectionHome)
	require.Equal(t, 0, s.Cursor())
	require.Equal(t, 0, s.ViewportOffset())
}

func TestMoveToIndexClamps(t *testing.T) {
	s := newService(4)

	s.MoveToIndex(100)
	require.Equal(t, 4, s.Cursor())

	s.MoveToIndex(-3)
	require.Equal(t, 0, s.Cursor())
}

func TestViewportFollowsCursor(t *testing.T) {
	s := newService(30)
	s.SetViewportHeight(11) // effective height 5

	require.Equal(t, 5, s.ViewportHeight())

	s.Navigate(DirectionEnd)
	require.Equal(t, 30, s.Cursor())
	require.Equal(t, 26, s.ViewportOffset())

	s.MoveToIndex(3)
	require.Equal(t, 3, s.ViewportOffset())
}

func TestEmptyListParksCursorAtZero(t *testing.T) {
	s := newService(-1) // empty list reports max index -1

	s.MoveToIndex(0)
	require.Equal(t, 0, s.Cursor())
	require.Equal(t, 0, s.ViewportOffset())

	s.Navigate(DirectionEnd)
	require.Equal(t, 0, s.Cursor())
	require.Equal(t, 0, s.ViewportOffset())
}

func TestCursorRecoversAfterListEmptiesAndRegrows(t *testing.T) {
	max := 2
	s := NewService()
	s.SetQueryFunction(func() int { return max })

	s.MoveToIndex(2)
	require.Equal(t, 2, s.Cursor())

	max = -1
	s.MoveToIndex(0)
	require.Equal(t, 0, s.Cursor())
	require.Equal(t, 0, s.ViewportOffset())

	max = 0
	s.Navigate(DirectionDown)
	require.Equal(t, 0, s.Cursor())
	require.Equal(t, 0, s.ViewportOffset())
}

func TestPageMovement(t *testing.T) {
	s := newService(50)
	s.SetViewportHeight(16) // effective height 10

	s.Navigate(DirectionPageDown)
	require.Equal(t, 9, s.Cursor())

	s.Navigate(DirectionPageDown)
	require.Equal(t, 18, s.Cursor())

	s.Navigate(DirectionPageUp)
	require.Equal(t, 9, s.Cursor())
}
