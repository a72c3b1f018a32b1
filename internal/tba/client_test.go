package tba

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/frcpath/zebraview/internal/pkg/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&config.TBAConfig{BaseURL: srv.URL, AuthKey: "test-key"})
}

func TestAuthHeaders(t *testing.T) {
	var gotKey, gotAgent string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-TBA-Auth-Key")
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"is_datafeed_down":false}`))
	})

	if _, err := c.Status(context.Background()); err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("X-TBA-Auth-Key = %q, want test-key", gotKey)
	}
	if gotAgent != "zebraview/1.0" {
		t.Errorf("User-Agent = %q, want zebraview/1.0", gotAgent)
	}
}

func TestMatchKeys(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/event/2020wasno/matches/keys" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`["2020wasno_qm1","2020wasno_qm2"]`))
	})

	keys, err := c.MatchKeys(context.Background(), "2020wasno")
	if err != nil {
		t.Fatalf("MatchKeys() error = %v", err)
	}
	want := []string{"2020wasno_qm1", "2020wasno_qm2"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("MatchKeys() = %v, want %v", keys, want)
	}
}

func TestZebraNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	_, err := c.Zebra(context.Background(), "2020wasno_qm1")
	if !errors.Is(err, ErrNoData) {
		t.Errorf("Zebra() error = %v, want ErrNoData", err)
	}
}

func TestServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Status(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Status() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", statusErr.StatusCode)
	}
}

func TestEventsPath(t *testing.T) {
	tests := []struct {
		key    string
		suffix string
		want   string
	}{
		{"2020", "", "/events/2020"},
		{"2020", "/keys", "/events/2020/keys"},
		{"pnw", "", "/district/pnw/events"},
		{"2020pnw", "/keys", "/district/2020pnw/events/keys"},
	}
	for _, tt := range tests {
		if got := eventsPath(tt.key, tt.suffix); got != tt.want {
			t.Errorf("eventsPath(%q, %q) = %q, want %q", tt.key, tt.suffix, got, tt.want)
		}
	}
}
