package film

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// LoadCandidates reads a staged candidate-scene list from a JSON file
// produced by the upstream keyframe/vision stages. Scenes are returned in
// chronological order regardless of file order.
func LoadCandidates(path string) ([]CandidateScene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}
	var scenes []CandidateScene
	if err := json.Unmarshal(data, &scenes); err != nil {
		return nil, fmt.Errorf("decode candidates %s: %w", path, err)
	}
	sort.SliceStable(scenes, func(i, j int) bool {
		return scenes[i].TimestampS < scenes[j].TimestampS
	})
	return scenes, nil
}
