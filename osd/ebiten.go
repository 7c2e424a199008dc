package osd

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// EbitenBackend draws the overlay onto an ebiten screen and reads pointer
// state from the mouse. BeginFrame must be called with the frame's render
// target before Overlay.Draw.
type EbitenBackend struct {
	screen *ebiten.Image
	face   text.Face
}

func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{face: text.NewGoXFace(basicfont.Face7x13)}
}

// SetFace swaps the text face, e.g. for a larger embedded font.
func (e *EbitenBackend) SetFace(face text.Face) { e.face = face }

// BeginFrame points the backend at this frame's render target.
func (e *EbitenBackend) BeginFrame(screen *ebiten.Image) { e.screen = screen }

func (e *EbitenBackend) Size() (float32, float32) {
	if e.screen == nil {
		return 0, 0
	}
	b := e.screen.Bounds()
	return float32(b.Dx()), float32(b.Dy())
}

func (e *EbitenBackend) PointerPosition() (float32, float32) {
	x, y := ebiten.CursorPosition()
	return float32(x), float32(y)
}

func (e *EbitenBackend) PointerPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButton0)
}

func (e *EbitenBackend) PointerJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
}

func (e *EbitenBackend) FillRect(x, y, w, h float32, col color.RGBA) {
	vector.DrawFilledRect(e.screen, x, y, w, h, col, false)
}

func (e *EbitenBackend) StrokeLine(x0, y0, x1, y1, width float32, col color.RGBA) {
	vector.StrokeLine(e.screen, x0, y0, x1, y1, width, col, true)
}

func (e *EbitenBackend) FillCircle(cx, cy, r float32, col color.RGBA) {
	vector.FillCircle(e.screen, cx, cy, r, col, true)
}

func (e *EbitenBackend) DrawText(s string, x, y float32, col color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(e.screen, s, e.face, op)
}

func (e *EbitenBackend) MeasureText(s string) (float32, float32) {
	w, h := text.Measure(s, e.face, 0)
	return float32(w), float32(h)
}
