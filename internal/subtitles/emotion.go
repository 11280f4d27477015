package subtitles

import (
	"trailcut/internal/film"
	"trailcut/internal/textutil"
)

type emotionEntry struct {
	label    film.Emotion
	keywords map[string]bool
}

// Keyword tables evaluated in priority order, first match wins:
// intense > romantic > comedic > negative > positive > neutral.
var emotionTable = []emotionEntry{
	{film.EmotionIntense, wordSet("now", "run", "fight", "stop", "must", "war", "attack", "danger", "kill", "die")},
	{film.EmotionRomantic, wordSet("heart", "together", "always", "forever", "kiss", "love", "feel")},
	{film.EmotionComedic, wordSet("ha", "funny", "joke", "laugh", "silly", "weird", "crazy")},
	{film.EmotionNegative, wordSet("hate", "lost", "never", "dead", "fail", "cry", "wrong", "afraid")},
	{film.EmotionPositive, wordSet("happy", "wonderful", "hope", "proud", "yes", "win", "joy", "great", "safe")},
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// ClassifyEmotion returns a sentiment label for subtitle text based on
// keyword matching. Returns film.EmotionNeutral when no table entry matches.
func ClassifyEmotion(text string) film.Emotion {
	words := textutil.Words(text)
	for _, entry := range emotionTable {
		for _, w := range words {
			if entry.keywords[w] {
				return entry.label
			}
		}
	}
	return film.EmotionNeutral
}
