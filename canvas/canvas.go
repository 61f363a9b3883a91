// Package canvas provides the RGBA pixel buffer that sprites and atlas
// pages are built from, plus the PNG encode/decode boundary.
package canvas

import (
	"image"
	"image/color"
)

// Canvas is a rectangular RGBA pixel buffer. Pixels are stored
// non-premultiplied, 4 bytes per pixel, row-major.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// New creates a fully transparent canvas with the given dimensions.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel data (RGBA format).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// GetPixel returns the color of a single pixel, or all zeros when (x, y)
// lies outside the canvas.
func (c *Canvas) GetPixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, 0, 0, 0
	}
	i := (y*c.width + x) * 4
	return c.data[i+0], c.data[i+1], c.data[i+2], c.data[i+3]
}

// SetPixel blends a color onto a single pixel using integer
// over-compositing: fully transparent sources leave the pixel untouched,
// opaque sources replace it, and everything between mixes with
// (src*a + dst*(255-a) + 127) / 255 per channel. The stored alpha is the
// larger of the two.
func (c *Canvas) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	switch a {
	case 0:
		return
	case 255:
		c.data[i+0] = r
		c.data[i+1] = g
		c.data[i+2] = b
		c.data[i+3] = a
	default:
		sa := int(a)
		inv := 255 - sa
		c.data[i+0] = uint8((int(r)*sa + int(c.data[i+0])*inv + 127) / 255)
		c.data[i+1] = uint8((int(g)*sa + int(c.data[i+1])*inv + 127) / 255)
		c.data[i+2] = uint8((int(b)*sa + int(c.data[i+2])*inv + 127) / 255)
		if c.data[i+3] < a {
			c.data[i+3] = a
		}
	}
}

// SetPixelSolid replaces a single pixel without blending.
func (c *Canvas) SetPixelSolid(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = r
	c.data[i+1] = g
	c.data[i+2] = b
	c.data[i+3] = a
}

// Fill sets every pixel to the given color without blending.
func (c *Canvas) Fill(r, g, b, a uint8) {
	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = r
		c.data[i+1] = g
		c.data[i+2] = b
		c.data[i+3] = a
	}
}

// FillRect blends the given color over a rectangle, clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, r, g, b, a uint8) {
	x0 := max(0, x)
	y0 := max(0, y)
	x1 := min(c.width, x+w)
	y1 := min(c.height, y+h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.SetPixel(px, py, r, g, b, a)
		}
	}
}

// Blit draws src onto the canvas at (x, y). Fully transparent source pixels
// are skipped, leaving existing canvas content intact beneath them.
func (c *Canvas) Blit(src *Canvas, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			r, g, b, a := src.GetPixel(sx, sy)
			if a > 0 {
				c.SetPixel(x+sx, y+sy, r, g, b, a)
			}
		}
	}
}

// SubCanvas copies the w×h region at (x, y) into a new canvas. Pixels are
// copied exactly, without blending; out-of-range reads are transparent.
func (c *Canvas) SubCanvas(x, y, w, h int) *Canvas {
	out := New(w, h)
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			r, g, b, a := c.GetPixel(x+sx, y+sy)
			if a > 0 {
				out.SetPixelSolid(sx, sy, r, g, b, a)
			}
		}
	}
	return out
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	out := New(c.width, c.height)
	copy(out.data, c.data)
	return out
}

// Equal reports whether two canvases have identical dimensions and pixels.
func (c *Canvas) Equal(other *Canvas) bool {
	if other == nil || c.width != other.width || c.height != other.height {
		return false
	}
	for i := range c.data {
		if c.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// ContentBounds returns the tight bounding box of every pixel with
// alpha > 0, half-open on the max edges. The second return is false when
// the canvas is fully transparent.
func (c *Canvas) ContentBounds() (image.Rectangle, bool) {
	minX, minY := c.width, c.height
	maxX, maxY := 0, 0
	found := false

	for y := 0; y < c.height; y++ {
		row := y * c.width * 4
		for x := 0; x < c.width; x++ {
			if c.data[row+x*4+3] > 0 {
				found = true
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x+1 > maxX {
					maxX = x + 1
				}
				if y+1 > maxY {
					maxY = y + 1
				}
			}
		}
	}

	if !found {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX, maxY), true
}

// ToImage converts the canvas to an image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// FromImage creates a canvas from an image.
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	out := New(width, height)

	if src, ok := img.(*image.NRGBA); ok && src.Stride == width*4 {
		copy(out.data, src.Pix)
		return out
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nc := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out.SetPixelSolid(x, y, nc.R, nc.G, nc.B, nc.A)
		}
	}
	return out
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	r, g, b, a := c.GetPixel(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
