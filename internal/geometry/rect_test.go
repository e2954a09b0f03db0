package geometry

import "testing"

func TestCenterIn(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		bounds Rect
		want   Point
	}{
		{
			name:   "even fit on primary monitor",
			width:  800,
			height: 600,
			bounds: Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
			want:   Point{X: 560, Y: 240},
		},
		{
			name:   "odd remainder truncates toward top-left",
			width:  101,
			height: 51,
			bounds: Rect{Left: 0, Top: 0, Right: 200, Bottom: 100},
			want:   Point{X: 49, Y: 24},
		},
		{
			name:   "monitor left of primary has negative origin",
			width:  800,
			height: 600,
			bounds: Rect{Left: -1920, Top: 0, Right: 0, Bottom: 1080},
			want:   Point{X: -1360, Y: 240},
		},
		{
			name:   "work area with taskbar at bottom",
			width:  760,
			height: 540,
			bounds: Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1040},
			want:   Point{X: 580, Y: 250},
		},
		{
			name:   "window exactly fills bounds",
			width:  1920,
			height: 1080,
			bounds: Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
			want:   Point{X: 0, Y: 0},
		},
		{
			name:   "window larger than bounds goes past the edge",
			width:  2000,
			height: 1200,
			bounds: Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
			want:   Point{X: -40, Y: -60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CenterIn(tt.width, tt.height, tt.bounds)
			if got != tt.want {
				t.Fatalf("CenterIn(%d, %d, %+v) = %+v, want %+v",
					tt.width, tt.height, tt.bounds, got, tt.want)
			}
		})
	}
}

func TestCenterInStaysInsideBounds(t *testing.T) {
	bounds := Rect{Left: -1920, Top: -200, Right: 640, Bottom: 1240}
	for w := 1; w <= bounds.Width(); w += 97 {
		for h := 1; h <= bounds.Height(); h += 83 {
			p := CenterIn(w, h, bounds)
			if p.X < bounds.Left || p.X+w > bounds.Right {
				t.Fatalf("width %d: x = %d escapes bounds %+v", w, p.X, bounds)
			}
			if p.Y < bounds.Top || p.Y+h > bounds.Bottom {
				t.Fatalf("height %d: y = %d escapes bounds %+v", h, p.Y, bounds)
			}
		}
	}
}

func TestRectAccessors(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 110, Bottom: 70}
	if r.Width() != 100 || r.Height() != 50 {
		t.Fatalf("got %dx%d, want 100x50", r.Width(), r.Height())
	}
	if r.Empty() {
		t.Fatal("non-degenerate rect reported empty")
	}
	if (Rect{Left: 5, Top: 5, Right: 5, Bottom: 10}).Empty() == false {
		t.Fatal("zero-width rect not reported empty")
	}
	if got := r.Center(); got != (Point{X: 60, Y: 45}) {
		t.Fatalf("Center() = %+v, want {60 45}", got)
	}
	if !r.Contains(Point{X: 10, Y: 20}) {
		t.Fatal("top-left corner should be inside")
	}
	if r.Contains(Point{X: 110, Y: 70}) {
		t.Fatal("bottom-right corner is exclusive")
	}
}
