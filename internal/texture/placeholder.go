package texture

import (
	"fmt"
	"os"

	"golang.org/x/image/bmp"
)

// PlaceholderFrameSize is the edge length of each generated wall frame.
const PlaceholderFrameSize = 64

// Placeholder pattern colors.
const (
	brickFace   = 0xffa04030
	brickMortar = 0xff6e6a64
	stoneFace   = 0xff8a8f98
	stoneEdge   = 0xff4c5058
	plankFace   = 0xff8b5a3c
	plankGrain  = 0xff6b4028
	plankSeam   = 0xff3a2414
)

type patternFunc func(x, y int) uint32

// Placeholder builds a wall atlas of `frames` procedurally drawn textures laid
// out in one row, for running without a tileset file.
func Placeholder(frames int) *Image {
	if frames <= 0 {
		frames = 1
	}
	patterns := []patternFunc{brickPattern, stonePattern, plankPattern}
	size := PlaceholderFrameSize
	img := NewImage(size*frames, size)
	for f := 0; f < frames; f++ {
		pattern := patterns[f%len(patterns)]
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				img.Pix[y*img.W+f*size+x] = pattern(x, y)
			}
		}
	}
	return img
}

func brickPattern(x, y int) uint32 {
	const brickH, brickW = 16, 32
	row := y / brickH
	offset := 0
	if row%2 == 1 {
		offset = brickW / 2
	}
	if y%brickH == 0 || (x+offset)%brickW == 0 {
		return brickMortar
	}
	return brickFace
}

func stonePattern(x, y int) uint32 {
	const block = 16
	if x%block == 0 || y%block == 0 {
		return stoneEdge
	}
	if (x/block+y/block)%2 == 0 {
		return stoneFace
	}
	return shade(stoneFace, 0.85)
}

func plankPattern(x, y int) uint32 {
	const plankW = 16
	if x%plankW == 0 {
		return plankSeam
	}
	if (y+3*(x/plankW))%11 == 0 {
		return plankGrain
	}
	return plankFace
}

// shade scales the color channels of an ARGB pixel by f in [0, 1].
func shade(p uint32, f float64) uint32 {
	r := float64((p >> 16) & 0xff)
	g := float64((p >> 8) & 0xff)
	b := float64(p & 0xff)
	return p&0xff000000 | uint32(r*f)<<16 | uint32(g*f)<<8 | uint32(b*f)
}

// SaveBMP writes img to path as a 32-bit bitmap.
func SaveBMP(path string, img *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := bmp.Encode(f, img.ToNRGBA()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
