package media

import (
	"context"
	"errors"
	"testing"
)

func TestProbeDurationHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ProbeDuration(ctx, "does-not-matter.mp3"); !errors.Is(err, context.Canceled) {
		t.Fatalf("ProbeDuration with canceled context = %v; want context.Canceled", err)
	}
}

func TestParseProbeDuration(t *testing.T) {
	cases := []struct {
		name    string
		json    string
		want    float64
		wantErr bool
	}{
		{"valid", `{"format":{"duration":"30.024000"}}`, 30.024, false},
		{"integer seconds", `{"format":{"duration":"45"}}`, 45, false},
		{"missing duration", `{"format":{}}`, 0, true},
		{"empty object", `{}`, 0, true},
		{"not json", `ffprobe: error`, 0, true},
		{"zero duration", `{"format":{"duration":"0.000000"}}`, 0, true},
		{"garbage duration", `{"format":{"duration":"abc"}}`, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseProbeDuration(c.json)
			if c.wantErr {
				if err == nil {
					t.Fatalf("ParseProbeDuration(%q) = %g; want error", c.json, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProbeDuration(%q) error: %v", c.json, err)
			}
			if got != c.want {
				t.Errorf("ParseProbeDuration(%q) = %g; want %g", c.json, got, c.want)
			}
		})
	}
}
