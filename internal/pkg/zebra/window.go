package zebra

// PathWindow is one station's path slice for a time window, ready for
// plotting. Pos is the last valid sample inside the window, nil when the
// window contains no valid sample for this robot.
type PathWindow struct {
	Station string     `json:"station"`
	Team    string     `json:"team"`
	Xs      []*float64 `json:"xs"`
	Ys      []*float64 `json:"ys"`
	Pos     *PathPoint `json:"pos"`
}

// TimeRange returns the first and last timestamps of the match, or zeros when
// the match has no samples.
func (m *Match) TimeRange() (float64, float64) {
	if len(m.Times) == 0 {
		return 0, 0
	}
	return m.Times[0], m.Times[len(m.Times)-1]
}

// Window returns, for each station, the path samples whose timestamps fall in
// [start, end]. Timestamps are assumed ascending, as delivered by TBA. An
// inverted or non-overlapping window yields empty slices.
func (m *Match) Window(start, end float64) [6]PathWindow {
	lo, hi := m.sampleRange(start, end)

	var out [6]PathWindow
	for i := 0; i < 6; i++ {
		w := PathWindow{
			Station: m.Stations[i].Station,
			Team:    m.Stations[i].Team,
			Xs:      []*float64{},
			Ys:      []*float64{},
		}
		xs, ys := m.Paths[2*i], m.Paths[2*i+1]
		if lo <= hi && hi < len(xs) && hi < len(ys) {
			w.Xs = xs[lo : hi+1]
			w.Ys = ys[lo : hi+1]
			for j := hi; j >= lo; j-- {
				if xs[j] != nil && ys[j] != nil {
					w.Pos = &PathPoint{X: *xs[j], Y: *ys[j], Index: j}
					break
				}
			}
		}
		out[i] = w
	}
	return out
}

// sampleRange maps a time window to an inclusive sample index range.
func (m *Match) sampleRange(start, end float64) (int, int) {
	lo := len(m.Times)
	for i, t := range m.Times {
		if t >= start {
			lo = i
			break
		}
	}
	hi := -1
	for i := len(m.Times) - 1; i >= 0; i-- {
		if m.Times[i] <= end {
			hi = i
			break
		}
	}
	return lo, hi
}
