// Package texture holds decoded wall images and the atlas that slices them
// into equal frames.
package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// Image is a decoded bitmap stored as row-major 0xAARRGGBB pixels.
type Image struct {
	W, H int
	Pix  []uint32
}

// NewImage allocates a transparent image.
func NewImage(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Image{W: w, H: h, Pix: make([]uint32, w*h)}
}

// At returns the pixel at (x, y). Coordinates must lie inside the image.
func (img *Image) At(x, y int) uint32 {
	if x < 0 || x >= img.W || y < 0 || y >= img.H {
		panic(fmt.Sprintf("texture: pixel (%d,%d) outside %dx%d image", x, y, img.W, img.H))
	}
	return img.Pix[y*img.W+x]
}

// Set stores an ARGB pixel at (x, y).
func (img *Image) Set(x, y int, c uint32) {
	if x < 0 || x >= img.W || y < 0 || y >= img.H {
		panic(fmt.Sprintf("texture: pixel (%d,%d) outside %dx%d image", x, y, img.W, img.H))
	}
	img.Pix[y*img.W+x] = c
}

// FromImage converts any decoded image into ARGB pixels.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			img.Pix[y*img.W+x] = ARGB(src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return img
}

// Load reads and decodes a BMP or PNG file.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	img := FromImage(src)
	if img.W == 0 || img.H == 0 {
		return nil, fmt.Errorf("texture %s (%s) is empty", path, format)
	}
	return img, nil
}

// ARGB packs a color as 0xAARRGGBB with straight alpha.
func ARGB(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// NRGBA unpacks a 0xAARRGGBB pixel.
func NRGBA(p uint32) color.NRGBA {
	return color.NRGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: uint8(p >> 24)}
}

// ToNRGBA copies the pixels into a standard library image, for encoders.
func (img *Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.W, img.H))
	for i, p := range img.Pix {
		base := i * 4
		dst.Pix[base+0] = uint8(p >> 16)
		dst.Pix[base+1] = uint8(p >> 8)
		dst.Pix[base+2] = uint8(p)
		dst.Pix[base+3] = uint8(p >> 24)
	}
	return dst
}
