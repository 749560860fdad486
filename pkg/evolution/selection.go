package evolution

import "math"

// Softmax parameters for fitness-proportional parent selection.
const (
	selectionTemperature = 10.0
	selectionCenter      = 0.5
)

// Parent is one archive member eligible for selection.
type Parent struct {
	Version        string
	Code           string
	BenchmarkScore float64
}

// selectParents samples count parents with replacement, weighted by a
// softmax over benchmark scores centered at 0.5. randFn returns uniform
// values in [0,1).
func selectParents(archive []Parent, count int, randFn func() float64) []Parent {
	if len(archive) == 0 || count <= 0 {
		return nil
	}

	weights := make([]float64, len(archive))
	total := 0.0
	for i, parent := range archive {
		weights[i] = math.Exp(selectionTemperature * (parent.BenchmarkScore - selectionCenter))
		total += weights[i]
	}

	selected := make([]Parent, 0, count)
	for n := 0; n < count; n++ {
		target := randFn() * total
		cumulative := 0.0
		picked := archive[len(archive)-1]
		for i, w := range weights {
			cumulative += w
			if target < cumulative {
				picked = archive[i]
				break
			}
		}
		selected = append(selected, picked)
	}
	return selected
}
