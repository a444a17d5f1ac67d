package qlab_test

import (
	"fmt"

	"github.com/zenibako/qlab-csv/cues"
	"github.com/zenibako/qlab-csv/qlab"
)

// Example demonstrating how to turn compiled cues into workspace records
func ExampleFromCues() {
	tree := []cues.Cue{
		cues.NewGroup("1", "House out", "", []cues.Cue{
			cues.NewLxGo("1", 0),
			cues.NewStart("S1", 0),
		}),
	}

	records := qlab.FromCues(tree)

	fmt.Println(records[0].Type, records[0].Name)
	for _, c := range records[0].Cues {
		fmt.Println("-", c.Type, c.Name)
	}

	// Output:
	// group House out (LX1,S1)
	// - midi LX Go 1
	// - start Start S1
}

// Example demonstrating how to get structured data for custom serialization
func ExampleToWorkspaceData() {
	cues := []qlab.Cue{
		{
			Type:   "group",
			Number: "1",
			Name:   "Scene 1",
			Cues: []qlab.Cue{
				{
					Type:            "start",
					Name:            "Start S1",
					CueTargetNumber: "S1",
				},
			},
		},
	}

	workspaceData := qlab.ToWorkspaceData("My Production", cues)

	fmt.Printf("Workspace: %s\n", workspaceData.Name)
	fmt.Printf("Top-level cues: %d\n", len(workspaceData.Cues))
	fmt.Printf("Nested cues: %d\n", len(workspaceData.Cues[0].Cues))
	fmt.Printf("Mode: %d\n", workspaceData.Cues[0].Mode)

	// Output:
	// Workspace: My Production
	// Top-level cues: 1
	// Nested cues: 1
	// Mode: 3
}

// Example demonstrating the order cues would be created in
func ExamplePlan() {
	records := []qlab.Cue{
		{Type: "group", Number: "1", Name: "Scene", Cues: []qlab.Cue{
			{Type: "network", Name: "Mute channel 1", CustomString: "/ch/01/mix/on 0"},
		}},
	}

	for _, step := range qlab.Plan(records) {
		fmt.Println(step.Step, step.Parent, step.Type, step.Name)
	}

	// Output:
	// 0 -1 group Scene
	// 1 0 network Mute channel 1
}
