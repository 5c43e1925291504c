package assets

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadImageRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	src.SetNRGBA(1, 1, color.NRGBA{0, 0, 255, 128})
	path := writePNG(t, src)

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Channels != 4 {
		t.Fatalf("channels: got %d, want 4", img.Channels)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("size: got %dx%d, want 2x2", img.Width, img.Height)
	}
	if len(img.Pix) != 2*2*4 {
		t.Fatalf("pixel bytes: got %d, want 16", len(img.Pix))
	}
}

func TestLoadImageFlipsVertically(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255}) // top row red
	src.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255}) // bottom row blue
	path := writePNG(t, src)

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Bottom row first, so the blue pixel leads.
	if img.Pix[0] != 0 || img.Pix[2] != 255 {
		t.Fatalf("first pixel: got RGB(%d,%d,%d), want blue", img.Pix[0], img.Pix[1], img.Pix[2])
	}
	if img.Pix[4] != 255 || img.Pix[6] != 0 {
		t.Fatalf("second pixel: got RGB(%d,%d,%d), want red", img.Pix[4], img.Pix[5], img.Pix[6])
	}
}

func TestLoadImageJPEGIsThreeChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := jpeg.Encode(f, src, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Channels != 3 {
		t.Fatalf("channels: got %d, want 3", img.Channels)
	}
	if len(img.Pix) != 4*4*3 {
		t.Fatalf("pixel bytes: got %d, want 48", len(img.Pix))
	}
}

func TestLoadImageBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := bmp.Encode(f, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("size: got %dx%d, want 2x2", img.Width, img.Height)
	}
}

func TestLoadImageRejectsGrayscale(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writePNG(t, src)

	if _, err := LoadImage(path); err == nil {
		t.Fatal("grayscale image loaded, want channel count error")
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("missing file loaded, want error")
	}
}
