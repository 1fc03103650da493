package texture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewAtlasRejectsBadGeometry(t *testing.T) {
	img := NewImage(100, 64)
	if _, err := NewAtlas(img, 3, 1); !errors.Is(err, ErrFrameGeometry) {
		t.Fatalf("expected ErrFrameGeometry, got %v", err)
	}
	if _, err := NewAtlas(img, 0, 1); err == nil {
		t.Fatal("expected error for zero columns")
	}
	if _, err := NewAtlas(nil, 1, 1); err == nil {
		t.Fatal("expected error for nil image")
	}
	a, err := NewAtlas(NewImage(192, 64), 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.FrameWidth() != 64 || a.FrameHeight() != 64 {
		t.Fatalf("frame %dx%d, expected 64x64", a.FrameWidth(), a.FrameHeight())
	}
}

func TestColumnSamplesWithinFrame(t *testing.T) {
	img := NewImage(8, 4)
	// Encode source row and frame in each pixel.
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, uint32(0xff000000|x<<8|y))
		}
	}
	a, err := NewAtlas(img, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	for height := 1; height <= 512; height++ {
		col := a.Column(1, 0, 3, height)
		if len(col) != height {
			t.Fatalf("height %d: got %d pixels", height, len(col))
		}
		for y, p := range col {
			if x := int(p>>8) & 0xff; x != 7 {
				t.Fatalf("height %d row %d: sampled x=%d, expected 7", height, y, x)
			}
			want := y * a.FrameHeight() / height
			if row := int(p) & 0xff; row != want || row >= 4 {
				t.Fatalf("height %d row %d: sampled row %d, expected %d", height, y, row, want)
			}
		}
	}
	if a.Column(0, 0, 0, 0) != nil {
		t.Fatal("zero height column must be empty")
	}
}

func TestColumnPanicsOutsideFrame(t *testing.T) {
	a, _ := NewAtlas(NewImage(4, 4), 1, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for column outside frame")
		}
	}()
	a.Column(0, 0, 4, 10)
}

func TestAverage(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(0, 0, 0xff000000|200<<16)
	img.Set(1, 0, 0xff000000|100)
	a, _ := NewAtlas(img, 1, 1)
	if got, want := a.Average(0, 0), uint32(0xff000000|100<<16|50); got != want {
		t.Fatalf("average %08x, expected %08x", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.bmp"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestPlaceholderRoundTripsThroughBMP(t *testing.T) {
	img := Placeholder(3)
	if img.W != 3*PlaceholderFrameSize || img.H != PlaceholderFrameSize {
		t.Fatalf("placeholder %dx%d", img.W, img.H)
	}
	path := filepath.Join(t.TempDir(), "walls.bmp")
	if err := SaveBMP(path, img); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.W != img.W || got.H != img.H {
		t.Fatalf("loaded %dx%d, expected %dx%d", got.W, got.H, img.W, img.H)
	}
	for i := range img.Pix {
		if got.Pix[i] != img.Pix[i] {
			t.Fatalf("pixel %d: %08x != %08x", i, got.Pix[i], img.Pix[i])
		}
	}
}
