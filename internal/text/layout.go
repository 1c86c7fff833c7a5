package text

// FloatsPerVertex is the layout of Layout's output: x, y, u, v
const FloatsPerVertex = 4

// Measure returns the width and tallest glyph height of s at scale
func (a *Atlas) Measure(s string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range s {
		g, ok := a.Glyphs[r]
		if !ok {
			g = a.Glyphs[' ']
		}
		width += float32(g.Advance) * scale
		if g.Height*scale > maxH {
			maxH = g.Height * scale
		}
	}
	return width, maxH
}

// Layout builds two triangles per glyph for lines of text. (x, y) is the
// baseline of the first line in a top-left origin pixel space; each further
// line moves down by lineStep. Missing glyphs advance like a space.
func (a *Atlas) Layout(lines []string, x, y, lineStep, scale float32) []float32 {
	n := 0
	for _, l := range lines {
		n += len(l)
	}
	vertices := make([]float32, 0, n*6*FloatsPerVertex)

	for _, line := range lines {
		pen := x
		for _, r := range line {
			g, ok := a.Glyphs[r]
			if !ok {
				pen += float32(a.Glyphs[' '].Advance) * scale
				continue
			}
			if g.Width > 0 && g.Height > 0 {
				vertices = append(vertices, a.quad(g, pen, y, scale)...)
			}
			pen += float32(g.Advance) * scale
		}
		y += lineStep
	}
	return vertices
}

func (a *Atlas) quad(g Glyph, x, y, scale float32) []float32 {
	xPos := x + g.BearingX*scale
	yPos := y - g.BearingY*scale
	w := g.Width * scale
	h := g.Height * scale

	u := g.AtlasX / float32(a.Width)
	v := g.AtlasY / float32(a.Height)
	uw := g.Width / float32(a.Width)
	vh := g.Height / float32(a.Height)

	return []float32{
		xPos, yPos + h, u, v + vh,
		xPos, yPos, u, v,
		xPos + w, yPos, u + uw, v,

		xPos, yPos + h, u, v + vh,
		xPos + w, yPos, u + uw, v,
		xPos + w, yPos + h, u + uw, v + vh,
	}
}
