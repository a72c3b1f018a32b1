package viewer

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/frcpath/zebraview/internal/pkg/field"
	"github.com/frcpath/zebraview/internal/pkg/zebra"
)

func testDataFile(t *testing.T) string {
	t.Helper()
	team := func(key string) string {
		return fmt.Sprintf(`{"team_key":"%s","xs":[1.0,2.0,null],"ys":[1.0,2.0,null]}`, key)
	}
	zebraBlock := fmt.Sprintf(
		`{"alliances":{"blue":[%s,%s,%s],"red":[%s,%s,%s]},"times":[0.0,1.0,2.0]}`,
		team("frc1"), team("frc2"), team("frc3"),
		team("frc4"), team("frc5"), team("frc6"))

	lines := []string{
		fmt.Sprintf(`{"event":"2020wasno","match":"2020wasno_qm1","zebra":%s,"score":{"videos":[{"type":"youtube","key":"vid1"}]}}`, zebraBlock),
		`{"event":"2020wasno","match":"2020wasno_qm2","zebra":null,"score":null}`,
		fmt.Sprintf(`{"event":"2020wasno","match":"2020wasno_qm3","zebra":%s,"score":null}`, zebraBlock),
	}

	path := filepath.Join(t.TempDir(), "matches.jsonl")
	data := ""
	for _, l := range lines {
		data += l + "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	data, err := zebra.Load(testDataFile(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	f := &field.Field{
		Lines:  []field.Line{{Class: "boundary", X: []float64{0, 54}, Y: []float64{0, 0}}},
		Colors: map[string]string{"boundary": "black"},
	}
	events := map[string]EventInfo{
		"2020wasno": {Key: "2020wasno", Name: "PNW Snohomish", EndDate: "2020-03-01"},
	}
	srv := httptest.NewServer(NewServer(data, f, events).Router(nil))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHandleEvents(t *testing.T) {
	srv := testServer(t)

	var events []eventResponse
	if code := getJSON(t, srv.URL+"/api/events", &events); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	e := events[0]
	if e.Key != "2020wasno" || e.Name != "PNW Snohomish" {
		t.Errorf("event = %+v", e)
	}
	if e.PathMatches != 2 || e.Total != 3 {
		t.Errorf("counts = %d/%d, want 2/3", e.PathMatches, e.Total)
	}
}

func TestHandleEventMatches(t *testing.T) {
	srv := testServer(t)

	var matches []LevelMatch
	if code := getJSON(t, srv.URL+"/api/events/2020wasno/matches?level=qm", &matches); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(matches) != 2 || matches[0].Label != "1" || matches[1].Label != "3" {
		t.Errorf("matches = %v", matches)
	}

	// Unknown event is an empty list, not an error.
	if code := getJSON(t, srv.URL+"/api/events/2020nope/matches", &matches); code != http.StatusOK {
		t.Errorf("unknown event status = %d, want 200", code)
	}
	if len(matches) != 0 {
		t.Errorf("unknown event matches = %v, want empty", matches)
	}
}

func TestHandleMatch(t *testing.T) {
	srv := testServer(t)

	var m matchResponse
	if code := getJSON(t, srv.URL+"/api/matches/2020wasno_qm1", &m); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if m.Key != "2020wasno_qm1" || len(m.Blue) != 3 || len(m.Red) != 3 {
		t.Errorf("match = %+v", m)
	}
	if len(m.Stations) != 6 || m.Stations[0].Count != 2 {
		t.Errorf("stations = %+v", m.Stations)
	}
	if len(m.Videos) != 1 || m.Videos[0].Key != "vid1" {
		t.Errorf("videos = %v", m.Videos)
	}
	if m.TimeRange.End != 2.0 {
		t.Errorf("time_range.end = %g, want 2", m.TimeRange.End)
	}
}

func TestHandleMatchNotFound(t *testing.T) {
	srv := testServer(t)

	// qm2 is in the data file but has no tracking data, so it is not indexed.
	if code := getJSON(t, srv.URL+"/api/matches/2020wasno_qm2", nil); code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestHandleMatchPaths(t *testing.T) {
	srv := testServer(t)

	var paths pathsResponse
	if code := getJSON(t, srv.URL+"/api/matches/2020wasno_qm1/paths?start=0&end=1", &paths); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(paths.Windows) != 6 {
		t.Fatalf("len(windows) = %d, want 6", len(paths.Windows))
	}
	w := paths.Windows[0]
	if w.Station != "blue1" || w.Color != "darkblue" {
		t.Errorf("windows[0] = station %q color %q", w.Station, w.Color)
	}
	if len(w.Xs) != 2 {
		t.Errorf("windowed samples = %d, want 2", len(w.Xs))
	}
	if w.Pos == nil || w.Pos.Index != 1 {
		t.Errorf("pos = %+v, want index 1", w.Pos)
	}

	if code := getJSON(t, srv.URL+"/api/matches/2020wasno_qm1/paths?start=abc", nil); code != http.StatusBadRequest {
		t.Errorf("bad start param status = %d, want 400", code)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)

	var health map[string]interface{}
	if code := getJSON(t, srv.URL+"/health", &health); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if health["matches"].(float64) != 2 {
		t.Errorf("health.matches = %v, want 2", health["matches"])
	}
}
