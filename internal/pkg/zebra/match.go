package zebra

import (
	json "github.com/goccy/go-json"
)

// NumPaths is the number of coordinate sequences per match: xs and ys for each
// of the six robots, ordered blue1.xs, blue1.ys, ..., red3.xs, red3.ys.
const NumPaths = 12

// TeamsPerAlliance is fixed by the FRC match format.
const TeamsPerAlliance = 3

// Stations lists the six alliance stations in path order.
var Stations = [6]string{"blue1", "blue2", "blue3", "red1", "red2", "red3"}

// RawMatch is one decoded line of a zebra data file. Zebra is nil for matches
// where TBA had no tracking data; Score is kept verbatim.
type RawMatch struct {
	Event string          `json:"event"`
	Match string          `json:"match"`
	Zebra *RawZebra       `json:"zebra"`
	Score json.RawMessage `json:"score"`
}

// RawZebra mirrors the zebra_motionworks payload from TBA.
type RawZebra struct {
	Alliances RawAlliances `json:"alliances"`
	Times     []float64    `json:"times"`
}

// RawAlliances holds per-alliance team path entries in station order.
type RawAlliances struct {
	Blue []RawTeamPath `json:"blue"`
	Red  []RawTeamPath `json:"red"`
}

// RawTeamPath is one robot's coordinate arrays. A nil element marks a sample
// where the tracking system lost the robot; zero is a legitimate coordinate.
type RawTeamPath struct {
	TeamKey string     `json:"team_key"`
	Xs      []*float64 `json:"xs"`
	Ys      []*float64 `json:"ys"`
}

// PathPoint is one valid path sample together with its 0-based sample index.
type PathPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Index int     `json:"index"`
}

// PathStats summarizes one station's path: first and last valid samples,
// number of valid samples, and the indices of missing samples. Start and End
// are nil when the whole path is missing.
type PathStats struct {
	Station string     `json:"station"`
	Team    string     `json:"team"`
	Start   *PathPoint `json:"start"`
	End     *PathPoint `json:"end"`
	Count   int        `json:"count"`
	Missing []int      `json:"missing"`
}

// Match is one FRC match's tracking data. Paths holds NumPaths equal-length
// sequences; sample index i in every path corresponds to Times[i].
type Match struct {
	Event    string
	Key      string
	Blue     []string
	Red      []string
	Paths    [NumPaths][]*float64
	Times    []float64
	Score    json.RawMessage
	Stations [6]PathStats
}

// ParseMatch converts one raw match record into a Match. It validates the
// tracking data contract and derives per-station path statistics. The input is
// not modified; parsing the same record twice yields identical results.
func ParseMatch(raw *RawMatch) (*Match, error) {
	if raw.Zebra == nil {
		return nil, &RecordError{Match: raw.Match, Reason: "no zebra tracking data"}
	}
	if len(raw.Zebra.Alliances.Blue) != TeamsPerAlliance {
		return nil, &RecordError{Match: raw.Match, Reason: "blue alliance does not have 3 teams"}
	}
	if len(raw.Zebra.Alliances.Red) != TeamsPerAlliance {
		return nil, &RecordError{Match: raw.Match, Reason: "red alliance does not have 3 teams"}
	}

	m := &Match{
		Event: raw.Event,
		Key:   raw.Match,
		Times: raw.Zebra.Times,
		Score: raw.Score,
	}

	// Alliance order [blue, red], team order as delivered: station order.
	pathIdx := 0
	for _, alliance := range [][]RawTeamPath{raw.Zebra.Alliances.Blue, raw.Zebra.Alliances.Red} {
		for _, team := range alliance {
			if team.TeamKey == "" {
				return nil, &RecordError{Match: raw.Match, Reason: "team entry without team_key"}
			}
			if team.Xs == nil || team.Ys == nil {
				return nil, &RecordError{Match: raw.Match, Reason: "team " + team.TeamKey + " has no xs/ys data"}
			}
			m.Paths[pathIdx] = team.Xs
			m.Paths[pathIdx+1] = team.Ys
			pathIdx += 2
		}
	}

	for _, team := range raw.Zebra.Alliances.Blue {
		m.Blue = append(m.Blue, team.TeamKey)
	}
	for _, team := range raw.Zebra.Alliances.Red {
		m.Red = append(m.Red, team.TeamKey)
	}

	teams := append(append([]string{}, m.Blue...), m.Red...)
	for i := 0; i < 6; i++ {
		stats := scanPath(m.Paths[2*i], m.Paths[2*i+1])
		stats.Station = Stations[i]
		stats.Team = teams[i]
		m.Stations[i] = stats
	}

	return m, nil
}

// Station returns the path statistics for a station name, or nil if the name
// is not one of the six stations.
func (m *Match) Station(name string) *PathStats {
	for i := range m.Stations {
		if m.Stations[i].Station == name {
			return &m.Stations[i]
		}
	}
	return nil
}

// Teams returns all six team keys in station order.
func (m *Match) Teams() []string {
	return append(append([]string{}, m.Blue...), m.Red...)
}

// scanPath finds the first and last valid samples of one robot's path and
// collects the indices of missing samples. A sample is missing when either
// coordinate is nil.
func scanPath(xs, ys []*float64) PathStats {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}

	stats := PathStats{Missing: []int{}}
	for i := 0; i < n; i++ {
		if xs[i] == nil || ys[i] == nil {
			stats.Missing = append(stats.Missing, i)
		}
	}
	stats.Count = n - len(stats.Missing)
	if stats.Count == 0 {
		return stats
	}

	for i := 0; i < n; i++ {
		if xs[i] != nil && ys[i] != nil {
			stats.Start = &PathPoint{X: *xs[i], Y: *ys[i], Index: i}
			break
		}
	}
	for i := n - 1; i >= 0; i-- {
		if xs[i] != nil && ys[i] != nil {
			stats.End = &PathPoint{X: *xs[i], Y: *ys[i], Index: i}
			break
		}
	}
	return stats
}
