package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iammorganparry/bankdash/internal/dataset"
	"github.com/iammorganparry/bankdash/internal/render"
	"github.com/iammorganparry/bankdash/internal/view"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func setupServer(t *testing.T, ds *dataset.Dataset, debug bool) *httptest.Server {
	t.Helper()
	router := NewRouter(ds, view.NewLayout(""), render.DefaultWidth, render.DefaultHeight, debug, testLogger())
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func sampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(filepath.Join("..", "dataset", "testdata", "bank-sample.csv"), dataset.DefaultDelimiter)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	return ds
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestHealthEndpoint(t *testing.T) {
	srv := setupServer(t, sampleDataset(t), false)

	resp, body := get(t, srv.URL+"/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var health healthResponse
	if err := json.Unmarshal([]byte(body), &health); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if health.Status != "ok" || health.Records != 15 {
		t.Errorf("health = %+v, want ok with 15 records", health)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestDashboardPage(t *testing.T) {
	srv := setupServer(t, sampleDataset(t), false)

	t.Run("default selection", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
			t.Errorf("Content-Type = %q", resp.Header.Get("Content-Type"))
		}
		if !strings.Contains(body, "<h1>Banking Insights Dashboard</h1>") {
			t.Error("page is missing the title")
		}
		for _, c := range view.Categories {
			if !strings.Contains(body, `<option value="`+c+`"`) {
				t.Errorf("page is missing option %q", c)
			}
		}
		if !strings.Contains(body, `<option value="job" selected>`) {
			t.Error("job should be selected by default")
		}
		for _, id := range view.Regions {
			if !strings.Contains(body, `src="/figures/`+id+`.svg?category=job"`) {
				t.Errorf("page is missing region %q", id)
			}
		}
	})

	t.Run("selected category", func(t *testing.T) {
		_, body := get(t, srv.URL+"/?category=poutcome")
		if !strings.Contains(body, `<option value="poutcome" selected>`) {
			t.Error("poutcome should be selected")
		}
		if !strings.Contains(body, "category=poutcome") {
			t.Error("figure urls should carry the selected category")
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		resp, _ := get(t, srv.URL+"/?category=balance")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestFigureEndpoint(t *testing.T) {
	srv := setupServer(t, sampleDataset(t), false)

	for _, id := range view.Regions {
		t.Run(id, func(t *testing.T) {
			resp, body := get(t, srv.URL+"/figures/"+id+".svg?category=marital")
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
			}
			if resp.Header.Get("Content-Type") != "image/svg+xml" {
				t.Errorf("Content-Type = %q", resp.Header.Get("Content-Type"))
			}
			if !strings.Contains(body, "<svg") {
				t.Error("body is not svg")
			}
		})
	}

	t.Run("png", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/figures/monthly_trends.png")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if !strings.HasPrefix(body, "\x89PNG") {
			t.Error("body is not png")
		}
	})

	tests := []struct {
		name string
		path string
		want int
	}{
		{"unknown figure", "/figures/balance_histogram.svg", http.StatusNotFound},
		{"unknown format", "/figures/age_distribution.gif", http.StatusBadRequest},
		{"unknown category", "/figures/age_distribution.svg?category=balance", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestFigureRenderError(t *testing.T) {
	ds, err := dataset.FromRecords([][]string{
		{"age", "y"},
		{"30", "yes"},
		{"40", "no"},
	})
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}

	t.Run("detail hidden", func(t *testing.T) {
		srv := setupServer(t, ds, false)
		resp, body := get(t, srv.URL+"/figures/age_distribution.svg")
		if resp.StatusCode != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", resp.StatusCode)
		}
		var e errorResponse
		json.Unmarshal([]byte(body), &e)
		if e.Detail != "" {
			t.Errorf("detail = %q, want empty outside debug mode", e.Detail)
		}
	})

	t.Run("detail in debug mode", func(t *testing.T) {
		srv := setupServer(t, ds, true)
		_, body := get(t, srv.URL+"/figures/age_distribution.svg")
		var e errorResponse
		json.Unmarshal([]byte(body), &e)
		if !strings.Contains(e.Detail, "contact_duration") {
			t.Errorf("detail = %q, want the failing region", e.Detail)
		}
	})
}

func TestRecovery(t *testing.T) {
	h := Recovery(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
