package core

import "testing"

func TestRectIntersects(t *testing.T) {
	viewport := NewRect(0, 0, 640, 480)

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"sprite inside", NewRect(300, 200, 25, 25), true},
		{"straddles left edge", NewRect(-10, 100, 25, 25), true},
		{"straddles bottom-right corner", NewRect(630, 470, 25, 25), true},
		{"touches right edge", NewRect(640, 100, 25, 25), false},
		{"touches bottom edge", NewRect(100, 480, 25, 25), false},
		{"ends at left edge", NewRect(-25, 100, 25, 25), false},
		{"ends at top edge", NewRect(100, -25, 25, 25), false},
		{"one pixel in", NewRect(-24, -24, 25, 25), true},
		{"covers viewport", NewRect(-640, -480, 1920, 1440), true},
		{"far away", NewRect(2000, 2000, 75, 75), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := viewport.Intersects(tt.r); got != tt.want {
				t.Errorf("viewport.Intersects(%+v) = %v, want %v", tt.r, got, tt.want)
			}
			if got := tt.r.Intersects(viewport); got != tt.want {
				t.Errorf("%+v.Intersects(viewport) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(-5, 10, 20, 15)

	tests := []struct {
		x, y int
		want bool
	}{
		{-5, 10, true},
		{14, 24, true},
		{15, 24, false},
		{14, 25, false},
		{-6, 12, false},
		{0, 9, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(-20, 7, 25, 24)

	if r.Right() != 5 || r.Bottom() != 31 {
		t.Errorf("edges = (%d, %d), want (5, 31)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != -8 || cy != 19 {
		t.Errorf("Center() = (%d, %d), want (-8, 19)", cx, cy)
	}
}

func TestRectTranslate(t *testing.T) {
	world := NewRect(900, 700, 30, 20)
	screen := world.Translate(-640, -480)

	if screen != NewRect(260, 220, 30, 20) {
		t.Errorf("Translate() = %+v", screen)
	}
	if world.X != 900 {
		t.Error("Translate modified the receiver")
	}
}

func TestRectGrow(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		dx, dy int
		want   Rect
	}{
		{"viewport by one view", NewRect(0, 0, 640, 480), 640, 480, NewRect(-640, -480, 1920, 1440)},
		{"moved camera", NewRect(100, -50, 640, 480), 640, 480, NewRect(-540, -530, 1920, 1440)},
		{"zero", NewRect(3, 4, 5, 6), 0, 0, NewRect(3, 4, 5, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Grow(tt.dx, tt.dy); got != tt.want {
				t.Errorf("Grow(%d, %d) = %+v, want %+v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}
