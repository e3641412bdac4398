package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MJabarian/autotube-sub001/effects"
	"github.com/MJabarian/autotube-sub001/timing"
)

// Cue is a single subtitle entry: the narration words shown while one image
// is on screen.
type Cue struct {
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// CuesFromSyncMap converts word timings into subtitle cues. Words must be the
// same whitespace-split sequence the sync map was built from (timing.Words).
// Images with empty word ranges produce no cue.
func CuesFromSyncMap(m timing.SyncMap, words []string) []Cue {
	cues := make([]Cue, 0, len(m.WordTimings))
	for _, wt := range m.WordTimings {
		if wt.StartWord >= wt.EndWord || wt.StartWord >= len(words) {
			continue
		}
		end := wt.EndWord
		if end > len(words) {
			end = len(words)
		}
		cues = append(cues, Cue{
			Index: len(cues) + 1,
			Start: wt.StartTime,
			End:   wt.EndTime,
			Text:  strings.Join(words[wt.StartWord:end], " "),
		})
	}
	return cues
}

// WriteSRT writes cues as a SubRip file.
func WriteSRT(cues []Cue, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, cue := range cues {
		fmt.Fprintf(file, "%d\n", cue.Index)
		fmt.Fprintf(file, "%s --> %s\n", FormatSRTTimestamp(cue.Start), FormatSRTTimestamp(cue.End))
		fmt.Fprintf(file, "%s\n\n", cue.Text)
	}

	return nil
}

// WriteASS writes cues as an ASS script sized for the given play resolution,
// styled from a subtitle preset.
func WriteASS(cues []Cue, style effects.SubtitleStyle, width, height int, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "[Script Info]")
	fmt.Fprintln(file, "Title: AutoTube Video")
	fmt.Fprintln(file, "ScriptType: v4.00+")
	fmt.Fprintf(file, "PlayResX: %d\n", width)
	fmt.Fprintf(file, "PlayResY: %d\n", height)
	fmt.Fprintln(file, "")
	fmt.Fprintln(file, "[V4+ Styles]")
	fmt.Fprintln(file, "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding")
	fmt.Fprintf(file, "Style: Default,Arial,%d,&H00FFFFFF,&H00FFFFFF,&H00000000,&H00000000,-1,0,0,0,100,100,0,0,1,%d,0,2,40,40,%d,1\n",
		style.FontSize, style.OutlineWidth, style.Margin)
	fmt.Fprintln(file, "")
	fmt.Fprintln(file, "[Events]")
	fmt.Fprintln(file, "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text")

	for _, cue := range cues {
		fmt.Fprintf(file, "Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			FormatASSTimestamp(cue.Start),
			FormatASSTimestamp(cue.End),
			cue.Text)
	}

	return nil
}

// FormatSRTTimestamp converts seconds to SRT timestamp format (HH:MM:SS,mmm).
func FormatSRTTimestamp(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int((seconds - float64(hours*3600)) / 60)
	secs := int(seconds) % 60
	millis := int((seconds - float64(int(seconds))) * 1000)

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// FormatASSTimestamp converts seconds to ASS timestamp format (h:mm:ss.cc).
func FormatASSTimestamp(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int((seconds - float64(hours*3600)) / 60)
	secs := int(seconds) % 60
	centisecs := int((seconds - float64(int(seconds))) * 100)

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centisecs)
}

// FilterString builds an ffmpeg subtitles filter that burns an SRT file into
// the video with a force_style derived from the preset.
func FilterString(srtPath string, style effects.SubtitleStyle) string {
	forced := fmt.Sprintf(
		"FontName=Impact,FontSize=%d,PrimaryColour=&H00FFFF,OutlineColour=&H000000,BorderStyle=3,Outline=%d,Shadow=0,Alignment=2,MarginV=%d,Bold=1",
		style.FontSize, style.OutlineWidth, style.Margin)

	escapedPath := filepath.ToSlash(srtPath)
	escapedPath = strings.ReplaceAll(escapedPath, ":", "\\:")
	return fmt.Sprintf("subtitles='%s':force_style='%s'", escapedPath, forced)
}
