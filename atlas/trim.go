package atlas

import "github.com/piwi3910/SpritePack/canvas"

// trimSprite crops buf to its non-transparent content. The trimmed flag is
// set only when the content is strictly smaller than the source in at least
// one dimension. A fully transparent buffer is returned as-is at full size.
func trimSprite(buf *canvas.Canvas) (out *canvas.Canvas, trimX, trimY int, trimmed bool) {
	bounds, ok := buf.ContentBounds()
	if !ok {
		return buf, 0, 0, false
	}

	w := bounds.Dx()
	h := bounds.Dy()
	if w == buf.Width() && h == buf.Height() {
		return buf, 0, 0, false
	}

	return buf.SubCanvas(bounds.Min.X, bounds.Min.Y, w, h), bounds.Min.X, bounds.Min.Y, true
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
