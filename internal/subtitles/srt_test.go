package subtitles

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"trailcut/internal/film"
)

const sampleSRT = `1
00:00:05,000 --> 00:00:07,500
<i>We have to run, now!</i>

2
00:01:10,250 --> 00:01:12,000
SARAH: I love you. Always have.

3
00:01:20,000 --> 00:01:21,000
♪♪

4
00:02:00,000 --> 00:02:03,400
The harvest was good this year.
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "film.srt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSRT(t *testing.T) {
	events, err := ParseSRT(writeSample(t, sampleSRT))
	if err != nil {
		t.Fatalf("ParseSRT: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events (music-only cue dropped), got %d", len(events))
	}

	first := events[0]
	if math.Abs(first.StartS-5.0) > 1e-9 || math.Abs(first.EndS-7.5) > 1e-9 {
		t.Fatalf("unexpected timing %f..%f", first.StartS, first.EndS)
	}
	if first.Text != "We have to run, now!" {
		t.Fatalf("markup not stripped: %q", first.Text)
	}
	if first.Emotion != film.EmotionIntense {
		t.Fatalf("expected intense, got %s", first.Emotion)
	}

	second := events[1]
	if second.Speaker != "SARAH" {
		t.Fatalf("expected speaker SARAH, got %q", second.Speaker)
	}
	if second.Emotion != film.EmotionRomantic {
		t.Fatalf("expected romantic, got %s", second.Emotion)
	}

	if events[2].Emotion != film.EmotionNeutral {
		t.Fatalf("expected neutral, got %s", events[2].Emotion)
	}
}

func TestParseSRTPeriodMilliseconds(t *testing.T) {
	events, err := ParseSRT(writeSample(t, "1\n00:00:01.500 --> 00:00:02.000\nhello there\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || math.Abs(events[0].StartS-1.5) > 1e-9 {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestParseSRTEmptyFile(t *testing.T) {
	events, err := ParseSRT(writeSample(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

func TestClassifyEmotionPriority(t *testing.T) {
	tests := []struct {
		text string
		want film.Emotion
	}{
		{"I love you but we must fight", film.EmotionIntense},
		{"My heart is yours forever", film.EmotionRomantic},
		{"Ha, that joke was terrible", film.EmotionComedic},
		{"Everything we had is lost", film.EmotionNegative},
		{"What a wonderful day", film.EmotionPositive},
		{"The train leaves at noon", film.EmotionNeutral},
		{"", film.EmotionNeutral},
	}
	for _, tt := range tests {
		if got := ClassifyEmotion(tt.text); got != tt.want {
			t.Errorf("ClassifyEmotion(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestClassifyEmotionFoldsAccents(t *testing.T) {
	// "attaque" isn't in the table, but folded keywords still match.
	if got := ClassifyEmotion("Cours! Ils vont te KILL"); got != film.EmotionIntense {
		t.Fatalf("expected intense, got %s", got)
	}
}
