package render

import "image/color"

// fillARGB converts 0xAARRGGBB pixels into RGBA bytes in buf.
func fillARGB(buf []byte, pix []uint32) {
	for i, p := range pix {
		base := i * 4
		buf[base+0] = uint8(p >> 16)
		buf[base+1] = uint8(p >> 8)
		buf[base+2] = uint8(p)
		buf[base+3] = uint8(p >> 24)
	}
}

// packRGBA converts a color into an opaque-aware 0xAARRGGBB pixel.
func packRGBA(c color.RGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// paletteColor returns the palette entry for a cell value. Values past the
// end of the palette reuse the last entry; an empty palette yields black.
func paletteColor(palette []color.RGBA, v int) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{A: 255}
	}
	if v < 0 {
		v = 0
	}
	if last := len(palette) - 1; v > last {
		v = last
	}
	return palette[v]
}
