package dragon

import "github.com/vovakirdan/dragon-arcade/internal/core"

// ActiveArea returns the region in which entities are kept alive: the
// viewport extended by one full view width and height on every side.
func ActiveArea(c Camera, v View) core.Rect {
	return c.Viewport(v).Grow(v.W, v.H)
}

// IsOutsideActiveArea reports whether r no longer touches the active area.
func IsOutsideActiveArea(c Camera, v View, r core.Rect) bool {
	return !ActiveArea(c, v).Intersects(r)
}
