package atlas

import "github.com/piwi3910/SpritePack/model"

// Scenario defines a named set of settings to compare.
type Scenario struct {
	Name     string
	Settings model.AtlasSettings
}

// ScenarioResult holds the packing result and computed statistics for a
// single scenario.
type ScenarioResult struct {
	Scenario      Scenario
	Result        model.PackResult
	PageCount     int
	SpriteCount   int
	Occupancy     float64
	UnplacedCount int
}

// CompareScenarios packs the same entries under each scenario and returns
// the results in scenario order. This enables side-by-side comparison of
// different packing parameters (e.g., algorithm, padding, page rounding).
func CompareScenarios(scenarios []Scenario, entries []SpriteEntry) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		a := New(scenario.Settings)
		added := a.AddSprites(entries)
		result := a.Result()

		results = append(results, ScenarioResult{
			Scenario:      scenario,
			Result:        result,
			PageCount:     len(result.Pages),
			SpriteCount:   added,
			Occupancy:     result.TotalOccupancy(),
			UnplacedCount: len(entries) - added,
		})
	}

	return results
}

// DefaultScenarios generates a set of comparison scenarios based on the
// current settings, varying key parameters to show what-if alternatives.
func DefaultScenarios(base model.AtlasSettings) []Scenario {
	scenarios := []Scenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	// Scenario: try the other packing algorithms
	for _, alg := range model.Algorithms() {
		if alg == base.Algorithm {
			continue
		}
		alt := base
		alt.Algorithm = alg
		scenarios = append(scenarios, Scenario{
			Name:     algorithmLabel(alg) + " Algorithm",
			Settings: alt,
		})
	}

	// Scenario: no padding between sprites
	if base.Padding > 0 {
		noPad := base
		noPad.Padding = 0
		scenarios = append(scenarios, Scenario{
			Name:     "No Padding",
			Settings: noPad,
		})
	}

	// Scenario: exact page dimensions instead of power-of-two rounding
	if base.PowerOfTwo {
		exact := base
		exact.PowerOfTwo = false
		scenarios = append(scenarios, Scenario{
			Name:     "Exact Page Size",
			Settings: exact,
		})
	}

	return scenarios
}

func algorithmLabel(alg model.Algorithm) string {
	switch alg {
	case model.AlgorithmShelf:
		return "Shelf"
	case model.AlgorithmMaxRects:
		return "MaxRects"
	case model.AlgorithmGuillotine:
		return "Guillotine"
	default:
		return string(alg)
	}
}
