package effects

import (
	"math/rand"
	"testing"
)

func TestKenBurnsPresetCatalog(t *testing.T) {
	presets := KenBurnsPresets()
	if len(presets) != 8 {
		t.Fatalf("got %d Ken Burns presets; want 8", len(presets))
	}

	seen := map[string]bool{}
	for _, p := range presets {
		if p.Name == "" {
			t.Errorf("preset with empty name: %+v", p)
		}
		if seen[p.Name] {
			t.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true

		if p.StartScale < 1.0 || p.EndScale < 1.0 {
			t.Errorf("preset %q scales below 1.0: start=%g end=%g", p.Name, p.StartScale, p.EndScale)
		}
		for _, v := range []float64{p.StartX, p.EndX, p.StartY, p.EndY} {
			if v < 0 || v > 1 {
				t.Errorf("preset %q focus point out of range: %g", p.Name, v)
			}
		}
	}

	for _, name := range []string{"zoom_in", "zoom_out", "pan_left", "pan_right", "pan_up", "pan_down", "diagonal_zoom", "static"} {
		if !seen[name] {
			t.Errorf("missing preset %q", name)
		}
	}
}

func TestStaticPresetDetection(t *testing.T) {
	for _, p := range KenBurnsPresets() {
		if p.Name == "static" && !p.Static() {
			t.Errorf("static preset reported as moving")
		}
		if p.Name == "zoom_in" && p.Static() {
			t.Errorf("zoom_in preset reported as static")
		}
	}
}

func TestRandomKenBurnsDeterministicUnderSeed(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		pa := RandomKenBurns(a)
		pb := RandomKenBurns(b)
		if pa.Name != pb.Name {
			t.Fatalf("pick %d diverged: %q vs %q", i, pa.Name, pb.Name)
		}
	}
}

func TestQualityPresetFallback(t *testing.T) {
	if q := QualityPreset("high_quality"); q.CRF != 18 {
		t.Errorf("high_quality CRF = %d; want 18", q.CRF)
	}
	q := QualityPreset("does-not-exist")
	if q.Width != 1080 || q.Height != 1920 || q.Preset != "fast" {
		t.Errorf("fallback preset = %+v; want youtube_shorts", q)
	}
	for name, p := range QualityPresets() {
		if p.Width != 1080 || p.Height != 1920 {
			t.Errorf("preset %q is not 9:16 vertical: %dx%d", name, p.Width, p.Height)
		}
		if p.FPS != 30 {
			t.Errorf("preset %q fps = %d; want 30", name, p.FPS)
		}
	}
}

func TestSubtitleStylePresetFallback(t *testing.T) {
	if s := SubtitleStylePreset("bold"); s.FontSize != 52 {
		t.Errorf("bold font size = %d; want 52", s.FontSize)
	}
	if s := SubtitleStylePreset("nope"); s.FontSize != 48 {
		t.Errorf("fallback font size = %d; want 48 (youtube_shorts)", s.FontSize)
	}
}

func TestAudioPresetFallback(t *testing.T) {
	if a := AudioPreset("high_quality"); a.SampleRate != 48000 || a.Bitrate != "192k" {
		t.Errorf("high_quality audio = %+v; want 48kHz/192k", a)
	}
	a := AudioPreset("unknown")
	if a.SampleRate != 44100 || a.Bitrate != "128k" {
		t.Errorf("fallback audio = %+v; want youtube_optimized", a)
	}
	for name, p := range AudioPresets() {
		if p.Channels != 2 {
			t.Errorf("audio preset %q channels = %d; want stereo", name, p.Channels)
		}
		if !p.Normalize {
			t.Errorf("audio preset %q should normalize", name)
		}
	}
}

func TestTransitionPresets(t *testing.T) {
	transitions := TransitionPresets()
	if len(transitions) != 4 {
		t.Fatalf("got %d transitions; want 4", len(transitions))
	}
	for _, tr := range transitions {
		if tr.Duration < 0 {
			t.Errorf("transition %q has negative duration", tr.Name)
		}
		if tr.Name == "cut" && tr.Duration != 0 {
			t.Errorf("cut transition duration = %g; want 0", tr.Duration)
		}
	}
}
