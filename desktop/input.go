//go:build !js
// +build !js

package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/simukka/blackhole/input"
)

// ebitenSource reads the left mouse button and touches from ebiten.
type ebitenSource struct {
	scratch []ebiten.TouchID
}

func (s *ebitenSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (s *ebitenSource) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (s *ebitenSource) MouseJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (s *ebitenSource) AppendJustPressedTouchIDs(ids []input.TouchID) []input.TouchID {
	s.scratch = inpututil.AppendJustPressedTouchIDs(s.scratch[:0])
	for _, id := range s.scratch {
		ids = append(ids, input.TouchID(id))
	}
	return ids
}

func (s *ebitenSource) TouchJustReleased(id input.TouchID) bool {
	return inpututil.IsTouchJustReleased(ebiten.TouchID(id))
}

func (s *ebitenSource) TouchPosition(id input.TouchID) (int, int) {
	return ebiten.TouchPosition(ebiten.TouchID(id))
}
