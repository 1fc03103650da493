package texture

import (
	"errors"
	"fmt"
)

// ErrFrameGeometry reports an image that cannot be split into the requested
// frame grid.
var ErrFrameGeometry = errors.New("image size not divisible by frame grid")

// Atlas divides an image into cols x rows equal frames, each holding one wall
// texture addressed by (frameX, frameY).
type Atlas struct {
	img        *Image
	cols, rows int
	frameW     int
	frameH     int
}

// NewAtlas takes ownership of img and slices it into a cols x rows grid.
func NewAtlas(img *Image, cols, rows int) (*Atlas, error) {
	if img == nil {
		return nil, errors.New("atlas image is nil")
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid frame grid %dx%d", cols, rows)
	}
	if img.W%cols != 0 || img.H%rows != 0 || img.W < cols || img.H < rows {
		return nil, fmt.Errorf("%dx%d image into %dx%d frames: %w", img.W, img.H, cols, rows, ErrFrameGeometry)
	}
	return &Atlas{
		img:    img,
		cols:   cols,
		rows:   rows,
		frameW: img.W / cols,
		frameH: img.H / rows,
	}, nil
}

// FrameWidth returns the width of one frame in pixels.
func (a *Atlas) FrameWidth() int { return a.frameW }

// FrameHeight returns the height of one frame in pixels.
func (a *Atlas) FrameHeight() int { return a.frameH }

// Frames returns the frame grid dimensions.
func (a *Atlas) Frames() (int, int) { return a.cols, a.rows }

// Image returns the underlying pixels.
func (a *Atlas) Image() *Image { return a.img }

// Column samples source column srcCol of frame (frameX, frameY) stretched or
// squeezed to height pixels.
func (a *Atlas) Column(frameX, frameY, srcCol, height int) []uint32 {
	if height <= 0 {
		return nil
	}
	out := make([]uint32, height)
	a.ColumnInto(out, frameX, frameY, srcCol)
	return out
}

// ColumnInto fills dst with the sampled column; len(dst) is the output height.
// Output row y reads source row y*frameHeight/len(dst), nearest sample.
func (a *Atlas) ColumnInto(dst []uint32, frameX, frameY, srcCol int) {
	if frameX < 0 || frameX >= a.cols || frameY < 0 || frameY >= a.rows {
		panic(fmt.Sprintf("texture: frame (%d,%d) outside %dx%d atlas", frameX, frameY, a.cols, a.rows))
	}
	if srcCol < 0 || srcCol >= a.frameW {
		panic(fmt.Sprintf("texture: column %d outside frame width %d", srcCol, a.frameW))
	}
	height := len(dst)
	u := frameX*a.frameW + srcCol
	v := frameY * a.frameH
	stride := a.img.W
	for y := range dst {
		row := a.SourceRow(y, height)
		dst[y] = a.img.Pix[(v+row)*stride+u]
	}
}

// SourceRow returns the frame-relative source row sampled for output row y
// of a column with the given height.
func (a *Atlas) SourceRow(y, height int) int {
	return y * a.frameH / height
}

// Average returns the mean color of a frame, used where a full texture is
// too detailed, such as overhead map cells and terminal output.
func (a *Atlas) Average(frameX, frameY int) uint32 {
	var r, g, b, n uint64
	for y := 0; y < a.frameH; y++ {
		for x := 0; x < a.frameW; x++ {
			p := a.img.Pix[(frameY*a.frameH+y)*a.img.W+frameX*a.frameW+x]
			r += uint64(p>>16) & 0xff
			g += uint64(p>>8) & 0xff
			b += uint64(p) & 0xff
			n++
		}
	}
	if n == 0 {
		return 0xff000000
	}
	return 0xff000000 | uint32(r/n)<<16 | uint32(g/n)<<8 | uint32(b/n)
}
