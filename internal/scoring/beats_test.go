package scoring

import (
	"testing"

	"trailcut/internal/film"
)

func TestClassifyBeatRules(t *testing.T) {
	tests := []struct {
		name string
		in   BeatInput
		want BeatType
	}{
		{"breath", BeatInput{Position: 0.50, Emotion: film.EmotionNeutral, Score: 0.10}, BeatBreath},
		{"climax peak", BeatInput{Position: 0.85, Emotion: film.EmotionIntense, Score: 0.75}, BeatClimaxPeak},
		{"money shot", BeatInput{Position: 0.50, Emotion: film.EmotionPositive, Score: 0.90}, BeatMoneyShot},
		{"character intro", BeatInput{Position: 0.05, Emotion: film.EmotionPositive, Score: 0.40, HasFace: true}, BeatCharacterIntro},
		{"inciting incident", BeatInput{Position: 0.20, Emotion: film.EmotionIntense, Score: 0.40}, BeatIncitingIncident},
		{"relationship", BeatInput{Position: 0.50, Emotion: film.EmotionRomantic, Score: 0.50, HasFace: true}, BeatRelationship},
		{"escalation via negative", BeatInput{Position: 0.50, Emotion: film.EmotionNegative, Score: 0.40}, BeatEscalation},
		{"catch-all", BeatInput{Position: 0.50, Emotion: film.EmotionComedic, Score: 0.40}, BeatEscalation},
		{"early intense face goes to inciting, not intro", BeatInput{Position: 0.05, Emotion: film.EmotionIntense, Score: 0.40, HasFace: true}, BeatIncitingIncident},
		{"high score beats romance", BeatInput{Position: 0.40, Emotion: film.EmotionRomantic, Score: 0.85, HasFace: true}, BeatMoneyShot},
	}
	for _, tt := range tests {
		if got := ClassifyBeat(tt.in); got != tt.want {
			t.Errorf("%s: ClassifyBeat(%+v) = %s, want %s", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestClassifyBeatTotal(t *testing.T) {
	emotions := []film.Emotion{
		film.EmotionIntense, film.EmotionRomantic, film.EmotionComedic,
		film.EmotionNegative, film.EmotionPositive, film.EmotionNeutral,
	}
	valid := map[BeatType]bool{
		BeatIncitingIncident: true, BeatCharacterIntro: true, BeatEscalation: true,
		BeatRelationship: true, BeatMoneyShot: true, BeatClimaxPeak: true, BeatBreath: true,
	}
	for pos := 0.0; pos <= 1.0; pos += 0.05 {
		for score := 0.0; score <= 1.0; score += 0.05 {
			for _, emotion := range emotions {
				for _, face := range []bool{false, true} {
					got := ClassifyBeat(BeatInput{Position: pos, Emotion: emotion, Score: score, HasFace: face})
					if !valid[got] {
						t.Fatalf("ClassifyBeat(pos=%f score=%f %s face=%v) returned invalid beat %q",
							pos, score, emotion, face, got)
					}
				}
			}
		}
	}
}

func TestAssignAct(t *testing.T) {
	tests := []struct {
		position float64
		beat     BeatType
		want     Act
	}{
		{0.03, BeatEscalation, ActColdOpen},
		{0.20, BeatEscalation, ActOne},
		{0.45, BeatEscalation, ActTwo},
		{0.60, BeatEscalation, ActBeatDrop},
		{0.70, BeatEscalation, ActTwo},
		{0.85, BeatMoneyShot, ActThree},
		{0.90, BeatBreath, ActBreath},
		{0.03, BeatBreath, ActBreath},
	}
	for _, tt := range tests {
		if got := AssignAct(tt.position, tt.beat); got != tt.want {
			t.Errorf("AssignAct(%f, %s) = %s, want %s", tt.position, tt.beat, got, tt.want)
		}
	}
}

func TestBreathBeatNeverActThree(t *testing.T) {
	for pos := 0.0; pos <= 1.0; pos += 0.01 {
		if act := AssignAct(pos, BeatBreath); act != ActBreath {
			t.Fatalf("breath beat at position %f assigned act %s", pos, act)
		}
	}
}
