package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// Image is decoded pixel data ready for GPU upload: tightly packed rows with
// the bottom row first, matching the bottom-left texture origin of OpenGL.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// LoadImage reads and decodes the image file at path. Only 3-channel (RGB)
// and 4-channel (RGBA) layouts are supported; any other channel count is an
// error and no pixel data is returned.
func LoadImage(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("could not open image file: %v", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return Image{}, fmt.Errorf("could not decode image %s: %v", path, err)
	}

	channels := channelCount(src)
	if channels != 3 && channels != 4 {
		return Image{}, fmt.Errorf("image %s has %d channels, only 3 or 4 are supported", path, channels)
	}

	rgba := image.NewNRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)

	width := rgba.Rect.Dx()
	height := rgba.Rect.Dy()

	pix := make([]byte, 0, width*height*channels)
	for y := height - 1; y >= 0; y-- {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
		if channels == 4 {
			pix = append(pix, row...)
			continue
		}
		// Drop the synthetic alpha byte for 3-channel sources.
		for x := 0; x < width; x++ {
			pix = append(pix, row[x*4], row[x*4+1], row[x*4+2])
		}
	}

	return Image{
		Pix:      pix,
		Width:    width,
		Height:   height,
		Channels: channels,
	}, nil
}

// channelCount reports how many channels the decoded source carries.
// JPEG decodes to YCbCr (3), grayscale and alpha-only images are
// unsupported, and everything else decodes with an alpha channel (4).
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	default:
		return 4
	}
}
