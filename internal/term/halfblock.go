package term

import "raycaster/internal/render"

// HalfBlock holds the two pixels one terminal cell shows: the upper half is
// drawn with the foreground of '▀' and the lower half with the background.
type HalfBlock struct {
	Top, Bottom uint32
}

// Downsample maps fb onto a cols x rows grid of half blocks by nearest
// sampling. dst is reused when large enough.
func Downsample(fb *render.FrameBuffer, cols, rows int, dst []HalfBlock) []HalfBlock {
	n := cols * rows
	if n <= 0 {
		return dst[:0]
	}
	if cap(dst) < n {
		dst = make([]HalfBlock, n)
	}
	dst = dst[:n]
	sub := 2 * rows
	for y := 0; y < rows; y++ {
		top := (2 * y) * fb.H / sub
		bottom := (2*y + 1) * fb.H / sub
		for x := 0; x < cols; x++ {
			sx := x * fb.W / cols
			dst[y*cols+x] = HalfBlock{
				Top:    fb.Pix[top*fb.W+sx],
				Bottom: fb.Pix[bottom*fb.W+sx],
			}
		}
	}
	return dst
}
