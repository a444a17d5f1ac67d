package output

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenibako/qlab-csv/cues"
	"github.com/zenibako/qlab-csv/issues"
	"github.com/zenibako/qlab-csv/qlab"
)

func TestTableString(t *testing.T) {
	tbl := NewTable("A", "B").Row("1", "2").Row("3", "4")

	out := tbl.String()

	assert.Equal(t, 2, tbl.Len())
	for _, want := range []string{"A", "B", "1", "4"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderIssueTable(t *testing.T) {
	acc := issues.NewAcceptor()
	acc.Add(issues.Warn, 3, "99", "INVALID_CHANNEL", "Channel out of range")
	acc.Add(issues.Fatal, issues.WholeFile, "", "EMPTY_FILE", "File is empty")

	out := RenderIssueTable(acc.Issues())

	assert.Contains(t, out, "SEVERITY")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "INVALID_CHANNEL")
	assert.Contains(t, out, "FATAL")
	assert.Contains(t, out, "EMPTY_FILE")
}

func TestRenderCueTable(t *testing.T) {
	cs := []cues.Cue{
		cues.NewGroup("1", "Preset", "", []cues.Cue{cues.NewStart("S1", 0)}),
	}

	out := RenderCueTable(cs)

	assert.Contains(t, out, "Preset (S1)")
	assert.Contains(t, out, "  Start S1")
	assert.Contains(t, out, "1<S1>")
}

func TestRenderPlanTable(t *testing.T) {
	plan := qlab.Plan([]qlab.Cue{
		{Type: qlab.CueTypeGroup, Number: "1", Name: "Scene", Cues: []qlab.Cue{
			{Type: qlab.CueTypeStart, Name: "Start S1", CueTargetNumber: "S1"},
		}},
	})

	out := RenderPlanTable(plan)

	assert.Contains(t, out, "STEP")
	assert.Contains(t, out, "Scene")
	assert.Contains(t, out, "  Start S1")
}
