package dragon

import "github.com/vovakirdan/dragon-arcade/internal/core"

// View is the size of the visible window in world pixels.
type View struct {
	W, H int
}

// Camera is the world position of the viewport's top-left corner.
type Camera struct {
	X, Y int
}

// Viewport returns the world rectangle the camera currently shows.
func (c Camera) Viewport(v View) core.Rect {
	return core.NewRect(c.X, c.Y, v.W, v.H)
}

// ToScreen converts a world rectangle to screen space.
func (c Camera) ToScreen(r core.Rect) core.Rect {
	return r.Translate(-c.X, -c.Y)
}

// Follow returns the camera moved just enough to keep (cx, cy) within slack
// pixels of the viewport center. When the point crosses the slack boundary the
// camera stops it exactly on that boundary; each axis is handled on its own.
func (c Camera) Follow(cx, cy int, v View, slack int) Camera {
	halfW, halfH := v.W/2, v.H/2

	if (c.X+halfW)-cx > slack {
		c.X = cx + slack - halfW
	} else if cx-(c.X+halfW) > slack {
		c.X = cx - slack - halfW
	}

	if (c.Y+halfH)-cy > slack {
		c.Y = cy + slack - halfH
	} else if cy-(c.Y+halfH) > slack {
		c.Y = cy - slack - halfH
	}

	return c
}
