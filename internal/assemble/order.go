package assemble

import (
	"sort"

	"trailcut/internal/zone"
)

// pacingSlack is how far the mean CLIMAX clip duration may exceed the vibe's
// act 3 target before the pacer intervenes.
const pacingSlack = 1.5

// orderClips replaces chronology with the trailer's dramatic curve: zone
// blocks in BEGINNING, ESCALATION, CLIMAX order (unassigned last), score
// descending within each block. The sort is stable so equal-score clips keep
// their chronological order.
func orderClips(clips []clip) {
	sort.SliceStable(clips, func(i, j int) bool {
		pi, pj := clips[i].zone.Priority(), clips[j].zone.Priority()
		if pi != pj {
			return pi < pj
		}
		return clips[i].score > clips[j].score
	})
}

// enforcePacing trims CLIMAX-zone clips when their mean duration exceeds
// 1.5x the vibe's act 3 target, pulling each clip's end down to the target
// with a hard floor of minClipDurationS. BEGINNING clips are never touched;
// the trailer must accelerate toward its end, not flatten everywhere.
func enforcePacing(clips []clip, targetS float64) {
	var total float64
	count := 0
	for _, c := range clips {
		if c.zone == zone.Climax {
			total += c.window.DurationS()
			count++
		}
	}
	if count == 0 || total/float64(count) <= pacingSlack*targetS {
		return
	}

	floor := targetS
	if floor < minClipDurationS {
		floor = minClipDurationS
	}
	for i := range clips {
		if clips[i].zone != zone.Climax {
			continue
		}
		if clips[i].window.DurationS() > floor {
			clips[i].window.EndS = clips[i].window.StartS + floor
		}
	}
}
