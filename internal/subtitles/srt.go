package subtitles

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"trailcut/internal/film"
)

var (
	markupPattern = regexp.MustCompile(`<[^>]*>|\{[^}]*\}`)
	speakerPrefix = regexp.MustCompile(`^([A-Z][A-Z .'-]{1,24}):\s+`)
)

// ParseSRT reads an SRT file and returns its cues as dialogue events in
// chronological order. Cues with no visible text after markup stripping are
// skipped. A leading "NAME:" prefix is captured as the speaker.
func ParseSRT(path string) ([]film.DialogueEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	return parseSRTContent(string(data))
}

func parseSRTContent(content string) ([]film.DialogueEvent, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimPrefix(content, "\uFEFF")
	blocks := strings.Split(strings.TrimSpace(content), "\n\n")

	events := make([]film.DialogueEvent, 0, len(blocks))
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		timingIdx := -1
		for i, line := range lines {
			if strings.Contains(line, "-->") {
				timingIdx = i
				break
			}
		}
		if timingIdx < 0 {
			continue
		}
		parts := strings.Split(lines[timingIdx], "-->")
		if len(parts) != 2 {
			continue
		}
		startS, errStart := parseSRTTimestamp(parts[0])
		endS, errEnd := parseSRTTimestamp(parts[1])
		if errStart != nil || errEnd != nil || endS < startS {
			continue
		}

		text := strings.TrimSpace(markupPattern.ReplaceAllString(strings.Join(lines[timingIdx+1:], " "), ""))
		var speaker string
		if m := speakerPrefix.FindStringSubmatch(text); m != nil {
			speaker = strings.TrimSpace(m[1])
			text = strings.TrimSpace(text[len(m[0]):])
		}
		if text == "" {
			continue
		}

		events = append(events, film.DialogueEvent{
			StartS:  startS,
			EndS:    endS,
			Text:    text,
			Emotion: ClassifyEmotion(text),
			Speaker: speaker,
		})
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].StartS < events[j].StartS })
	return events, nil
}

func parseSRTTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	// Normalize period to comma (SRT standard uses comma for milliseconds)
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}
