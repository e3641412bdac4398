package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/MJabarian/autotube-sub001/effects"
	"github.com/MJabarian/autotube-sub001/processor"
	"github.com/MJabarian/autotube-sub001/timing"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	proc, err := processor.New(processor.Config{
		Quality:       effects.QualityPreset("fast_processing"),
		SubtitleStyle: effects.SubtitleStylePreset("youtube_shorts"),
		OutputDir:     t.TempDir(),
	})
	if err != nil {
		t.Fatalf("processor.New failed: %v", err)
	}
	return NewRouter(proc)
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d; want 200", w.Code)
	}
}

func TestSyncMapEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/timing/sync-map", SyncMapRequest{
		NarrationText: "one two three four five six seven eight nine ten eleven twelve",
		AudioDuration: 12.0,
		ImageCount:    6,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("sync-map status = %d; want 200 (body: %s)", w.Code, w.Body.String())
	}

	var m timing.SyncMap
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(m.ImageTimings) != 6 || len(m.WordTimings) != 6 || len(m.SyncPoints) != 6 {
		t.Fatalf("got %d/%d/%d entries; want 6 each",
			len(m.ImageTimings), len(m.WordTimings), len(m.SyncPoints))
	}
	if m.WordTimings[0].StartWord != 0 || m.WordTimings[0].EndWord != 2 {
		t.Errorf("first word range = [%d,%d); want [0,2)",
			m.WordTimings[0].StartWord, m.WordTimings[0].EndWord)
	}
}

func TestSyncMapEndpointRejectsInvalidArguments(t *testing.T) {
	r := newTestRouter(t)

	// Negative duration passes binding but fails timing validation.
	w := postJSON(t, r, "/api/timing/sync-map", SyncMapRequest{
		NarrationText: "words",
		AudioDuration: -5,
		ImageCount:    6,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}

	// Missing image_count fails binding.
	w = postJSON(t, r, "/api/timing/sync-map", map[string]any{"audio_duration": 10})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestImageTimingsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/timing/image-timings", ImageTimingsRequest{
		AudioDuration: 30.0,
		ImageCount:    6,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("image-timings status = %d; want 200 (body: %s)", w.Code, w.Body.String())
	}

	var resp struct {
		ImageTimings []timing.ImageTiming `json:"image_timings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.ImageTimings) != 6 {
		t.Fatalf("got %d timings; want 6", len(resp.ImageTimings))
	}
	if resp.ImageTimings[5].End != 30.0 {
		t.Errorf("last end = %g; want 30", resp.ImageTimings[5].End)
	}
}

func TestRenderEndpointValidation(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"bad status", map[string]any{"uuid": "j1", "status": "failed", "audio_path": "a.mp3", "image_paths": []string{"1.png"}}},
		{"missing audio", map[string]any{"uuid": "j1", "image_paths": []string{"1.png"}}},
		{"missing images", map[string]any{"uuid": "j1", "audio_path": "a.mp3"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/render", c.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d; want 400 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}
