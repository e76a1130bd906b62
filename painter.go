package carousel

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// painter wraps an RGBA canvas with the primitive set the slide variants
// need. All coordinates are pixels with the origin at the top-left;
// writes outside the canvas are silently clipped.
type painter struct {
	img *image.RGBA
}

func newPainter(w, h int, bg color.RGBA) *painter {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return &painter{img: img}
}

func (p *painter) setPixel(x, y int, c color.RGBA) {
	bounds := p.img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		p.img.SetRGBA(x, y, c)
	}
}

// fillRect fills the half-open rectangle [x0,x1) x [y0,y1).
func (p *painter) fillRect(x0, y0, x1, y1 int, c color.RGBA) {
	rect := image.Rect(x0, y0, x1, y1).Intersect(p.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(p.img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// strokeRect outlines a rectangle with the given stroke width.
func (p *painter) strokeRect(x0, y0, x1, y1 int, c color.RGBA, width int) {
	for i := 0; i < width; i++ {
		for x := x0; x < x1; x++ {
			p.setPixel(x, y0+i, c)
			p.setPixel(x, y1-1-i, c)
		}
		for y := y0; y < y1; y++ {
			p.setPixel(x0+i, y, c)
			p.setPixel(x1-1-i, y, c)
		}
	}
}

// line draws a Bresenham line stamped with a square brush of the given
// stroke width.
func (p *painter) line(x1, y1, x2, y2 int, c color.RGBA, width int) {
	if width < 1 {
		width = 1
	}
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		p.stamp(x1, y1, width, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// stamp fills a width x width square centered on (x, y).
func (p *painter) stamp(x, y, width int, c color.RGBA) {
	lo := (width - 1) / 2
	hi := width / 2
	for oy := -lo; oy <= hi; oy++ {
		for ox := -lo; ox <= hi; ox++ {
			p.setPixel(x+ox, y+oy, c)
		}
	}
}

// fillEllipse fills the ellipse inscribed in the bounding box.
func (p *painter) fillEllipse(x0, y0, x1, y1 int, c color.RGBA) {
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx := float64(x0) + rx
	cy := float64(y0) + ry
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			dy := (float64(py) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1.0 {
				p.setPixel(px, py, c)
			}
		}
	}
}

// strokeEllipse outlines the ellipse inscribed in the bounding box.
func (p *painter) strokeEllipse(x0, y0, x1, y1 int, c color.RGBA, width int) {
	p.strokeArc(x0, y0, x1, y1, 0, 360, c, width)
}

// strokeArc draws the arc of the inscribed ellipse between two angles in
// degrees, measured clockwise from three o'clock (y grows downward).
func (p *painter) strokeArc(x0, y0, x1, y1 int, startDeg, endDeg float64, c color.RGBA, width int) {
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx := float64(x0) + rx
	cy := float64(y0) + ry

	steps := int(math.Max(rx, ry) * 8)
	if steps < 100 {
		steps = 100
	}
	span := endDeg - startDeg
	for i := 0; i <= steps; i++ {
		angle := (startDeg + span*float64(i)/float64(steps)) * math.Pi / 180
		px := int(cx + rx*math.Cos(angle))
		py := int(cy + ry*math.Sin(angle))
		p.stamp(px, py, width, c)
	}
}

// fillTriangle fills a triangle using a sign test over its bounding box.
func (p *painter) fillTriangle(a, b, c image.Point, col color.RGBA) {
	minX := min3(a.X, b.X, c.X)
	maxX := max3(a.X, b.X, c.X)
	minY := min3(a.Y, b.Y, c.Y)
	maxY := max3(a.Y, b.Y, c.Y)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d1 := edgeSign(x, y, a, b)
			d2 := edgeSign(x, y, b, c)
			d3 := edgeSign(x, y, c, a)
			hasNeg := d1 < 0 || d2 < 0 || d3 < 0
			hasPos := d1 > 0 || d2 > 0 || d3 > 0
			if !(hasNeg && hasPos) {
				p.setPixel(x, y, col)
			}
		}
	}
}

func edgeSign(x, y int, a, b image.Point) int {
	return (x-b.X)*(a.Y-b.Y) - (a.X-b.X)*(y-b.Y)
}

// fillRoundedRect fills a rectangle with circular corners of the given
// radius. A radius of at least half the height produces a pill.
func (p *painter) fillRoundedRect(x0, y0, x1, y1, radius int, c color.RGBA) {
	w := x1 - x0
	h := y1 - y0
	if w <= 0 || h <= 0 {
		return
	}
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}
	r2 := float64(radius) * float64(radius)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			// Distance check applies only inside the corner squares.
			var dx, dy float64
			switch {
			case x < x0+radius:
				dx = float64(x0+radius-x) - 0.5
			case x >= x1-radius:
				dx = float64(x-(x1-radius)) + 0.5
			}
			switch {
			case y < y0+radius:
				dy = float64(y0+radius-y) - 0.5
			case y >= y1-radius:
				dy = float64(y-(y1-radius)) + 0.5
			}
			if dx > 0 && dy > 0 && dx*dx+dy*dy > r2 {
				continue
			}
			p.setPixel(x, y, c)
		}
	}
}

// fillPill fills a fully rounded rectangle (radius = half height).
func (p *painter) fillPill(x0, y0, x1, y1 int, c color.RGBA) {
	p.fillRoundedRect(x0, y0, x1, y1, (y1-y0)/2, c)
}

// drawImage composites src over the canvas with its top-left at (x, y),
// honoring src's alpha channel.
func (p *painter) drawImage(src image.Image, x, y int) {
	if src == nil {
		return
	}
	b := src.Bounds()
	rect := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(p.img, rect, src, b.Min, draw.Over)
}

// text draws s with its top edge at y (the baseline sits one ascent
// below, matching top-anchored layout math).
func (p *painter) text(face font.Face, s string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  p.img,
		Src:  &image.Uniform{C: c},
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// textCentered draws s horizontally centered on the canvas with its top
// edge at y, and returns the measured width.
func (p *painter) textCentered(face font.Face, s string, y int, c color.RGBA) int {
	w := textWidth(face, s)
	p.text(face, s, (p.img.Bounds().Dx()-w)/2, y, c)
	return w
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min3(a, b, c int) int { return min(a, min(b, c)) }
func max3(a, b, c int) int { return max(a, max(b, c)) }
