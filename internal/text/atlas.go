// Package text bakes font faces into single-channel glyph atlases and lays
// out strings as textured quads.
package text

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"floor-demo/internal/texture"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Offset from the pen position on the baseline
	BearingX float32
	BearingY float32
	Advance  int
}

// Atlas is a baked glyph set. Pixels holds one coverage byte per texel.
type Atlas struct {
	Width      int
	Height     int
	LineHeight int
	Glyphs     map[rune]Glyph
	Pixels     *texture.Pixels
}

const (
	atlasWidth = 256
	padding    = 1
)

// DefaultAtlas bakes the printable ASCII range of the built-in 7x13 bitmap face
func DefaultAtlas() (*Atlas, error) {
	return NewAtlas(basicfont.Face7x13, ' ', '~')
}

// LoadAtlas bakes printable ASCII from a TrueType/OpenType file at the given
// pixel size
func LoadAtlas(path string, pixels float64) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: pixels, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	return NewAtlas(face, ' ', '~')
}

// NewAtlas renders runes first..last of face into a row-packed atlas.
// Runes the face cannot render are skipped.
func NewAtlas(face font.Face, first, last rune) (*Atlas, error) {
	type placed struct {
		r     rune
		dr    image.Rectangle
		mask  image.Image
		maskp image.Point
		x, y  int
		glyph Glyph
	}

	var list []placed
	offsetX, offsetY, rowHeight := 0, 0, 0
	for r := first; r <= last; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		if gw > atlasWidth {
			return nil, fmt.Errorf("glyph %q is wider than the atlas", r)
		}
		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}

		g := Glyph{
			AtlasX:   float32(offsetX),
			AtlasY:   float32(offsetY),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  advance.Round(),
		}
		list = append(list, placed{r: r, dr: dr, mask: mask, maskp: maskp, x: offsetX, y: offsetY, glyph: g})

		offsetX += gw + padding
		if gh > rowHeight {
			rowHeight = gh
		}
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("face has no glyphs in %q..%q", first, last)
	}

	height := nextPowerOfTwo(offsetY + rowHeight)
	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, height))
	glyphs := make(map[rune]Glyph, len(list))
	for _, p := range list {
		if p.mask != nil && p.dr.Dx() > 0 && p.dr.Dy() > 0 {
			dst := image.Rect(p.x, p.y, p.x+p.dr.Dx(), p.y+p.dr.Dy())
			draw.Draw(img, dst, p.mask, p.maskp, draw.Src)
		}
		glyphs[p.r] = p.glyph
	}

	return &Atlas{
		Width:      atlasWidth,
		Height:     height,
		LineHeight: face.Metrics().Height.Ceil(),
		Glyphs:     glyphs,
		Pixels: &texture.Pixels{
			Width:    atlasWidth,
			Height:   height,
			Channels: 1,
			Data:     img.Pix,
		},
	}, nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
