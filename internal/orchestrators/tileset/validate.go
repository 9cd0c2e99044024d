package tileset

import (
	"context"
	"fmt"
	"sort"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
)

// Validate runs structural checks and an edge-pattern reachability pass
// over a prototype list. Prototypes are never mutated: isolated patterns
// are flagged as warnings, and only a prototype with zero candidate
// neighbors in every direction is a hard error.
func (o *orchestrator) Validate(_ context.Context, input *ValidateInput) (*ValidateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("validate input is required")
	}

	output := &ValidateOutput{}

	for _, p := range input.Prototypes {
		if p.Structure == nil {
			output.Errors = append(output.Errors,
				fmt.Sprintf("prototype %d: missing structure", p.ID))
			continue
		}
		for _, d := range entities.AllDirections() {
			if !p.Edge(d).IsWellFormed() {
				output.Errors = append(output.Errors,
					fmt.Sprintf("prototype %d (%s): malformed %s edge pattern %q",
						p.ID, p.Structure.Name, d, p.Edge(d)))
			}
		}
		if p.Weight <= 0 {
			output.Errors = append(output.Errors,
				fmt.Sprintf("prototype %d (%s): weight must be positive, got %g",
					p.ID, p.Structure.Name, p.Weight))
		}
		if p.Role == "" {
			output.Errors = append(output.Errors,
				fmt.Sprintf("prototype %d (%s): empty role", p.ID, p.Structure.Name))
		}
	}

	o.checkConnectivity(input.Prototypes, output)

	output.IsValid = len(output.Errors) == 0
	return output, nil
}

// checkConnectivity collects the distinct edge patterns and flags the
// ones no other pattern can abut. A fully self-connecting pattern is
// valid, just isolated from the rest of the palette, so isolation is a
// warning. A prototype with no candidate neighbor on any of its four
// faces can never be placed next to anything and is an error.
func (o *orchestrator) checkConnectivity(prototypes []*entities.ResolvedPrototype, output *ValidateOutput) {
	patternSet := make(map[entities.EdgePattern]struct{})
	for _, p := range prototypes {
		if p.Structure == nil {
			continue
		}
		for _, d := range entities.AllDirections() {
			if p.Edge(d).IsWellFormed() {
				patternSet[p.Edge(d)] = struct{}{}
			}
		}
	}

	patterns := make([]entities.EdgePattern, 0, len(patternSet))
	for pattern := range patternSet {
		patterns = append(patterns, pattern)
	}
	sort.Slice(patterns, func(i, j int) bool { return patterns[i] < patterns[j] })

	for _, pattern := range patterns {
		// All-wall faces abut other all-wall faces; only patterns with
		// an opening participate in the isolation check.
		if !pattern.HasOpening() {
			continue
		}
		isolated := true
		for _, other := range patterns {
			if other != pattern && pattern.Compatible(other) {
				isolated = false
				break
			}
		}
		if isolated {
			output.Warnings = append(output.Warnings,
				fmt.Sprintf("edge pattern %q is compatible with no other pattern in the palette", pattern))
		}
	}

	for _, p := range prototypes {
		if p.Structure == nil {
			continue
		}
		placeable := false
		for _, d := range entities.AllDirections() {
			if o.hasCandidateNeighbor(p, d, prototypes) {
				placeable = true
				break
			}
		}
		if !placeable {
			output.Errors = append(output.Errors,
				fmt.Sprintf("prototype %d (%s): no candidate neighbor in any direction",
					p.ID, p.Structure.Name))
		}
	}
}

// hasCandidateNeighbor reports whether any prototype's opposite face can
// abut p's face in direction d.
func (o *orchestrator) hasCandidateNeighbor(p *entities.ResolvedPrototype, d entities.Direction, prototypes []*entities.ResolvedPrototype) bool {
	face := p.Edge(d)
	opposite := d.Opposite()
	for _, candidate := range prototypes {
		if candidate.Structure == nil {
			continue
		}
		if face.Compatible(candidate.Edge(opposite)) {
			return true
		}
	}
	return false
}
