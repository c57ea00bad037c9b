package components

import (
	"image"

	"github.com/automoto/monkebucko/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpriteData draws one square tile of a horizontal sprite sheet.
type SpriteData struct {
	Sheet    *assets.Image
	TileSize int
	Size     *dmath.Vec2 // drawn size of a frame, nil for the tile size

	image  *ebiten.Image
	frames map[int]*ebiten.Image
}

// Frame returns the subimage for frame index i, or nil while the sheet is
// still loading.
func (s *SpriteData) Frame(i int) *ebiten.Image {
	if s.image == nil {
		img := s.Sheet.Image()
		if img == nil {
			return nil
		}
		s.image = ebiten.NewImageFromImage(img)
		s.frames = make(map[int]*ebiten.Image)
	}
	if f, ok := s.frames[i]; ok {
		return f
	}
	r := image.Rect(i*s.TileSize, 0, (i+1)*s.TileSize, s.TileSize)
	f := s.image.SubImage(r).(*ebiten.Image)
	s.frames[i] = f
	return f
}

// DrawSize is the on-screen size of one frame before transform scaling.
func (s *SpriteData) DrawSize() dmath.Vec2 {
	if s.Size != nil {
		return *s.Size
	}
	return dmath.Vec2{X: float64(s.TileSize), Y: float64(s.TileSize)}
}

var Sprite = donburi.NewComponentType[SpriteData]()
