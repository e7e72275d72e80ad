package geom

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", NewRect(0, 0, 10, 10), NewRect(0, 0, 10, 10), true},
		{"partial overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 2, 2), true},
		{"disjoint horizontal", NewRect(0, 0, 10, 10), NewRect(20, 0, 10, 10), false},
		{"disjoint vertical", NewRect(0, 0, 10, 10), NewRect(0, 20, 10, 10), false},
		{"touching right edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"touching corner", NewRect(0, 0, 10, 10), NewRect(10, 10, 10, 10), false},
		{"one unit overlap", NewRect(0, 0, 10, 10), NewRect(9, 0, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric regardless of argument order.
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestMinPenetration(t *testing.T) {
	static := NewRect(100, 100, 50, 50)

	tests := []struct {
		name       string
		moving     Rect
		wantAxis   Axis
		wantAmount float64
	}{
		{
			// Moving rect pokes 5 units past the static's left edge.
			name:       "shallow from the left",
			moving:     NewRect(85, 110, 20, 20),
			wantAxis:   AxisLeft,
			wantAmount: 5,
		},
		{
			name:       "shallow from the right",
			moving:     NewRect(145, 110, 20, 20),
			wantAxis:   AxisRight,
			wantAmount: 5,
		},
		{
			name:       "shallow from the top",
			moving:     NewRect(110, 85, 20, 20),
			wantAxis:   AxisTop,
			wantAmount: 5,
		},
		{
			name:       "shallow from the bottom",
			moving:     NewRect(110, 145, 20, 20),
			wantAxis:   AxisBottom,
			wantAmount: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, amount := MinPenetration(tt.moving, static)
			if axis != tt.wantAxis || amount != tt.wantAmount {
				t.Errorf("MinPenetration() = (%v, %v), want (%v, %v)",
					axis, amount, tt.wantAxis, tt.wantAmount)
			}
		})
	}
}

func TestMinPenetrationTieBreak(t *testing.T) {
	static := NewRect(0, 0, 100, 100)

	// Moving rect overlapping the static's top-left corner with identical
	// penetration on every axis candidate: left depth == top depth.
	// The resolver must always pick left over top.
	moving := NewRect(-10, -10, 20, 20)
	axis, amount := MinPenetration(moving, static)
	if axis != AxisLeft {
		t.Errorf("corner tie resolved to %v, want left", axis)
	}
	if amount != 10 {
		t.Errorf("penetration amount = %v, want 10", amount)
	}

	// Symmetric case on the top-right corner: right depth == top depth,
	// right wins because it precedes top in the candidate order.
	moving = NewRect(90, -10, 20, 20)
	axis, _ = MinPenetration(moving, static)
	if axis != AxisRight {
		t.Errorf("corner tie resolved to %v, want right", axis)
	}

	// Bottom corners: left/right still beat bottom.
	moving = NewRect(-10, 90, 20, 20)
	if axis, _ = MinPenetration(moving, static); axis != AxisLeft {
		t.Errorf("bottom-left corner tie resolved to %v, want left", axis)
	}
	moving = NewRect(90, 90, 20, 20)
	if axis, _ = MinPenetration(moving, static); axis != AxisRight {
		t.Errorf("bottom-right corner tie resolved to %v, want right", axis)
	}
}

func TestMinPenetrationTopBeatsBottom(t *testing.T) {
	static := NewRect(0, 0, 100, 100)

	// A wide rect centered inside the static penetrates top and bottom
	// equally (55 each) while the horizontal depths are larger (70 each),
	// so the contest is strictly between top and bottom. Top must win.
	moving := NewRect(30, 45, 40, 10)
	axis, amount := MinPenetration(moving, static)
	if axis != AxisTop {
		t.Errorf("top/bottom tie resolved to %v, want top", axis)
	}
	if amount != 55 {
		t.Errorf("penetration amount = %v, want 55", amount)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %v, want 10", got)
	}
}

func TestRectAccessors(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("edges = (%v, %v), want (40, 60)", r.Right(), r.Bottom())
	}
	if r.CenterX() != 25 || r.CenterY() != 40 {
		t.Errorf("center = (%v, %v), want (25, 40)", r.CenterX(), r.CenterY())
	}
	if !r.Contains(10, 20) {
		t.Error("Contains should include the top-left corner")
	}
	if r.Contains(40, 20) {
		t.Error("Contains should exclude the right edge")
	}
}
