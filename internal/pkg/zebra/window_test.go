package zebra

import (
	"reflect"
	"testing"
)

func windowMatch(t *testing.T) *Match {
	t.Helper()
	raw := validRaw()
	for i := range raw.Zebra.Alliances.Blue {
		raw.Zebra.Alliances.Blue[i].Xs = []*float64{f(1), f(2), nil, f(4), f(5)}
		raw.Zebra.Alliances.Blue[i].Ys = []*float64{f(10), f(20), nil, f(40), f(50)}
	}
	for i := range raw.Zebra.Alliances.Red {
		raw.Zebra.Alliances.Red[i].Xs = []*float64{nil, nil, nil, nil, nil}
		raw.Zebra.Alliances.Red[i].Ys = []*float64{nil, nil, nil, nil, nil}
	}
	raw.Zebra.Times = []float64{0, 1, 2, 3, 4}
	m, err := ParseMatch(raw)
	if err != nil {
		t.Fatalf("ParseMatch() error = %v", err)
	}
	return m
}

func TestWindow(t *testing.T) {
	m := windowMatch(t)

	tests := []struct {
		name       string
		start, end float64
		wantLen    int
		wantPos    *PathPoint // for blue1
	}{
		{"full range", 0, 4, 5, &PathPoint{X: 5, Y: 50, Index: 4}},
		{"middle span", 1, 3, 3, &PathPoint{X: 4, Y: 40, Index: 3}},
		{"pos skips trailing gap", 1, 2, 2, &PathPoint{X: 2, Y: 20, Index: 1}},
		{"beyond match end", 10, 20, 0, nil},
		{"inverted window", 3, 1, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows := m.Window(tt.start, tt.end)
			blue1 := windows[0]
			if blue1.Station != "blue1" {
				t.Fatalf("windows[0].Station = %q, want blue1", blue1.Station)
			}
			if len(blue1.Xs) != tt.wantLen || len(blue1.Ys) != tt.wantLen {
				t.Errorf("window size = %d/%d, want %d", len(blue1.Xs), len(blue1.Ys), tt.wantLen)
			}
			if !reflect.DeepEqual(blue1.Pos, tt.wantPos) {
				t.Errorf("Pos = %v, want %v", blue1.Pos, tt.wantPos)
			}
		})
	}
}

func TestWindowRobotWithNoData(t *testing.T) {
	m := windowMatch(t)
	windows := m.Window(0, 4)
	red1 := windows[3]
	if red1.Station != "red1" {
		t.Fatalf("windows[3].Station = %q, want red1", red1.Station)
	}
	if len(red1.Xs) != 5 {
		t.Errorf("red1 window size = %d, want 5", len(red1.Xs))
	}
	if red1.Pos != nil {
		t.Errorf("red1 Pos = %v, want nil for an all-missing path", red1.Pos)
	}
}

func TestTimeRange(t *testing.T) {
	m := windowMatch(t)
	first, last := m.TimeRange()
	if first != 0 || last != 4 {
		t.Errorf("TimeRange() = (%g, %g), want (0, 4)", first, last)
	}
}
