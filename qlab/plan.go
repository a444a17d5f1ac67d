package qlab

import (
	"github.com/charmbracelet/log"
)

// PlannedCue is one step of creating a workspace: the cue to make and
// the earlier step whose group it belongs in.
type PlannedCue struct {
	Step   int    `json:"step" yaml:"step"`
	Parent int    `json:"parent" yaml:"parent"` // -1 for top level
	Depth  int    `json:"depth" yaml:"depth"`
	Type   string `json:"type" yaml:"type"`
	Number string `json:"number,omitempty" yaml:"number,omitempty"`
	Name   string `json:"name" yaml:"name"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Plan flattens records into the order cues would be created in QLab:
// depth first, each group before its children.
func Plan(records []Cue) []PlannedCue {
	var plan []PlannedCue
	for _, c := range records {
		plan = planCue(plan, c, -1, 0)
	}
	log.Debug("Planned cues", "steps", len(plan))
	return plan
}

func planCue(plan []PlannedCue, c Cue, parent int, depth int) []PlannedCue {
	NormalizeCue(&c)

	step := len(plan)
	plan = append(plan, PlannedCue{
		Step:   step,
		Parent: parent,
		Depth:  depth,
		Type:   c.Type,
		Number: c.Number,
		Name:   c.Name,
		Detail: detail(c),
	})

	for _, child := range c.Cues {
		plan = planCue(plan, child, step, depth+1)
	}
	return plan
}

// detail is the one-line payload of a cue: what it sends or targets
func detail(c Cue) string {
	switch c.Type {
	case CueTypeNetwork:
		return c.CustomString
	case CueTypeStart:
		return c.CueTargetNumber
	case CueTypeMIDI:
		if c.QList != "" {
			return "GO " + c.QNumber + " list " + c.QList
		}
		return "GO " + c.QNumber
	case CueTypeScript:
		return "script"
	}
	return ""
}
