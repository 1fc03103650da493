//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads a frame buffer into an ebiten image and draws it.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a w x h frame buffer.
func NewPainter(w, h int) *Painter {
	p := &Painter{w: w, h: h, buf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Blit uploads fb and draws it at (x, y) scaled by scale.
func (p *Painter) Blit(dst *ebiten.Image, fb *FrameBuffer, x, y, scale float64) {
	if fb.W != p.w || fb.H != p.h {
		return
	}
	fb.RGBA(p.buf)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(p.img, op)
}

