// Package render turns world state into pixels: the projected scene, the
// overhead map and the frame buffer both are drawn into.
package render

import (
	"fmt"
	"image"
)

// FrameBuffer is a software surface of 0xAARRGGBB pixels.
type FrameBuffer struct {
	W, H int
	Pix  []uint32
}

// NewFrameBuffer allocates a cleared w x h surface.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("render: invalid frame buffer size %dx%d", w, h))
	}
	return &FrameBuffer{W: w, H: h, Pix: make([]uint32, w*h)}
}

// SetPixel writes one pixel. Coordinates must lie inside the buffer.
func (fb *FrameBuffer) SetPixel(x, y int, c uint32) {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		panic(fmt.Sprintf("render: pixel (%d,%d) outside %dx%d frame buffer", x, y, fb.W, fb.H))
	}
	fb.Pix[y*fb.W+x] = c
}

// At returns the pixel at (x, y).
func (fb *FrameBuffer) At(x, y int) uint32 {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		panic(fmt.Sprintf("render: pixel (%d,%d) outside %dx%d frame buffer", x, y, fb.W, fb.H))
	}
	return fb.Pix[y*fb.W+x]
}

// DrawRect fills a w x h rectangle whose top-left corner is (x, y). The
// rectangle must fit inside the buffer.
func (fb *FrameBuffer) DrawRect(x, y, w, h int, c uint32) {
	if w <= 0 || h <= 0 {
		return
	}
	if x < 0 || y < 0 || x+w > fb.W || y+h > fb.H {
		panic(fmt.Sprintf("render: rect (%d,%d %dx%d) outside %dx%d frame buffer", x, y, w, h, fb.W, fb.H))
	}
	for row := y; row < y+h; row++ {
		line := fb.Pix[row*fb.W+x : row*fb.W+x+w]
		for i := range line {
			line[i] = c
		}
	}
}

// Clear fills the whole buffer with c.
func (fb *FrameBuffer) Clear(c uint32) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// RGBA writes the buffer as RGBA bytes into buf, which must hold 4*W*H bytes.
func (fb *FrameBuffer) RGBA(buf []byte) {
	if len(buf) < 4*len(fb.Pix) {
		panic(fmt.Sprintf("render: RGBA buffer of %d bytes too small for %dx%d", len(buf), fb.W, fb.H))
	}
	fillARGB(buf, fb.Pix)
}

// Image copies the buffer into a standard library image.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.W, fb.H))
	fillARGB(img.Pix, fb.Pix)
	return img
}
