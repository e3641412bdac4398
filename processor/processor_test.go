package processor

import (
	"strings"
	"testing"

	"github.com/MJabarian/autotube-sub001/timing"
	"github.com/MJabarian/autotube-sub001/types"
)

func TestValidateJob(t *testing.T) {
	cases := []struct {
		name    string
		job     types.RenderJob
		wantErr bool
	}{
		{"valid", types.RenderJob{UUID: "j1", AudioPath: "a.mp3", ImagePaths: []string{"1.png"}}, false},
		{"missing audio", types.RenderJob{UUID: "j1", ImagePaths: []string{"1.png"}}, true},
		{"no images", types.RenderJob{UUID: "j1", AudioPath: "a.mp3"}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validateJob(&c.job)
			if c.wantErr && err == nil {
				t.Fatalf("validateJob(%+v) = nil; want error", c.job)
			}
			if !c.wantErr && err != nil {
				t.Fatalf("validateJob(%+v) = %v; want nil", c.job, err)
			}
		})
	}
}

func TestValidateJobAssignsUUID(t *testing.T) {
	job := types.RenderJob{AudioPath: "a.mp3", ImagePaths: []string{"1.png"}}
	if err := validateJob(&job); err != nil {
		t.Fatalf("validateJob error: %v", err)
	}
	if job.UUID == "" {
		t.Fatalf("validateJob did not assign a UUID")
	}
}

func TestPickPresetsDeterministicPerJob(t *testing.T) {
	job := types.RenderJob{UUID: "job-abc"}

	first := pickPresets(job, 6)
	second := pickPresets(job, 6)

	if len(first) != 6 {
		t.Fatalf("got %d presets; want 6", len(first))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("preset %d differs across runs: %q vs %q", i, first[i].Name, second[i].Name)
		}
	}
}

func TestPickPresetsVariesAcrossJobs(t *testing.T) {
	a := pickPresets(types.RenderJob{UUID: "job-a"}, 12)
	b := pickPresets(types.RenderJob{UUID: "job-b"}, 12)

	same := true
	for i := range a {
		if a[i].Name != b[i].Name {
			same = false
			break
		}
	}
	if same {
		t.Errorf("different job ids produced identical preset sequences")
	}
}

func TestJobTitle(t *testing.T) {
	words := timing.Words("breaking news from the world of automated video pipelines today and beyond")

	if got := jobTitle(types.RenderJob{Title: "Custom"}, words); got != "Custom" {
		t.Errorf("jobTitle with explicit title = %q; want Custom", got)
	}

	got := jobTitle(types.RenderJob{}, words)
	// Ten words max.
	if n := len(strings.Fields(got)); n != 10 {
		t.Errorf("generated title has %d words; want 10 (got %q)", n, got)
	}
	if !strings.HasPrefix(got, "breaking news") {
		t.Errorf("generated title = %q; want narration prefix", got)
	}
}

func TestJobTitleTruncation(t *testing.T) {
	long := strings.Repeat("supercalifragilistic ", 10)
	got := jobTitle(types.RenderJob{}, timing.Words(long))
	if len(got) > 100 {
		t.Errorf("title length = %d; want <= 100", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated title %q missing ellipsis", got)
	}
}
