package texture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedChannels is returned for pixel data that is not 1, 3 or 4 channels
var ErrUnsupportedChannels = errors.New("unsupported channel count")

// Pixels is tightly packed 8-bit image data, rows top to bottom
type Pixels struct {
	Width    int
	Height   int
	Channels int
	Data     []byte
}

// Format is the layout of one pixel in Pixels.Data
type Format int

const (
	FormatRed Format = iota + 1
	FormatRGB
	FormatRGBA
)

// FormatFor maps a channel count to its pixel format
func FormatFor(channels int) (Format, error) {
	switch channels {
	case 1:
		return FormatRed, nil
	case 3:
		return FormatRGB, nil
	case 4:
		return FormatRGBA, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
}

// Format returns the pixel format of the data, rejecting unknown channel counts
func (p *Pixels) Format() (Format, error) {
	return FormatFor(p.Channels)
}

// Decode opens and decodes an image file
func Decode(path string) (*Pixels, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage packs an image keeping its natural channel count: grayscale
// images stay single channel, opaque color images become RGB and anything
// with alpha becomes RGBA.
func FromImage(img image.Image) *Pixels {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		px := &Pixels{Width: w, Height: h, Channels: 1, Data: make([]byte, w*h)}
		for y := 0; y < h; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(px.Data[y*w:(y+1)*w], src.Pix[off:off+w])
		}
		return px
	case *image.Gray16:
		px := &Pixels{Width: w, Height: h, Channels: 1, Data: make([]byte, w*h)}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				px.Data[y*w+x] = src.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			}
		}
		return px
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	if !isOpaque(img, rgba) {
		return &Pixels{Width: w, Height: h, Channels: 4, Data: rgba.Pix}
	}

	px := &Pixels{Width: w, Height: h, Channels: 3, Data: make([]byte, w*h*3)}
	for i, j := 0, 0; i < len(rgba.Pix); i, j = i+4, j+3 {
		px.Data[j] = rgba.Pix[i]
		px.Data[j+1] = rgba.Pix[i+1]
		px.Data[j+2] = rgba.Pix[i+2]
	}
	return px
}

func isOpaque(src image.Image, converted *image.NRGBA) bool {
	if o, ok := src.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return converted.Opaque()
}
