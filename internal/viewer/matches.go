package viewer

import (
	"regexp"
	"sort"
	"strconv"
)

// Levels lists the TBA competition levels in tournament order.
var Levels = []string{"qm", "qf", "sf", "f"}

var levelPatterns = map[string]*regexp.Regexp{
	"qm": regexp.MustCompile(`^[^_]+_qm([^_]+)$`),
	"qf": regexp.MustCompile(`^[^_]+_qf([^_]+)$`),
	"sf": regexp.MustCompile(`^[^_]+_sf([^_]+)$`),
	"f":  regexp.MustCompile(`^[^_]+_f([^_]+)$`),
}

// LevelMatch is one selectable match: the short label shown in the dropdown
// and the full TBA key.
type LevelMatch struct {
	Label string `json:"label"`
	Key   string `json:"key"`
}

// LevelMatches filters match keys to one competition level and orders them
// for display: numerically for qualification matches, lexically for playoff
// rounds (whose labels are composites like "1m2"). An unknown level yields
// nothing.
func LevelMatches(keys []string, level string) []LevelMatch {
	ptn, ok := levelPatterns[level]
	if !ok {
		return nil
	}

	var matches []LevelMatch
	for _, key := range keys {
		if m := ptn.FindStringSubmatch(key); m != nil {
			matches = append(matches, LevelMatch{Label: m[1], Key: key})
		}
	}

	if level == "qm" {
		sort.SliceStable(matches, func(i, j int) bool {
			a, errA := strconv.Atoi(matches[i].Label)
			b, errB := strconv.Atoi(matches[j].Label)
			if errA != nil || errB != nil {
				return matches[i].Label < matches[j].Label
			}
			return a < b
		})
	} else {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Label < matches[j].Label
		})
	}
	return matches
}
