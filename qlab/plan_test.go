package qlab

import "testing"

func TestPlanDepthFirst(t *testing.T) {
	plan := Plan(FromCues(sampleTree()))

	// group, 2 children, DCA group, 4 children, script
	if len(plan) != 9 {
		t.Fatalf("Expected 9 steps, got %d", len(plan))
	}

	wantParents := []int{-1, 0, 0, -1, 3, 3, 3, 3, -1}
	wantDepths := []int{0, 1, 1, 0, 1, 1, 1, 1, 0}
	for i, step := range plan {
		if step.Step != i {
			t.Errorf("step %d: numbered %d", i, step.Step)
		}
		if step.Parent != wantParents[i] {
			t.Errorf("step %d: expected parent %d, got %d", i, wantParents[i], step.Parent)
		}
		if step.Depth != wantDepths[i] {
			t.Errorf("step %d: expected depth %d, got %d", i, wantDepths[i], step.Depth)
		}
	}

	if plan[1].Detail != "GO 7 list 2" {
		t.Errorf("Unexpected LX detail %q", plan[1].Detail)
	}
	if plan[2].Detail != "S1" {
		t.Errorf("Unexpected start detail %q", plan[2].Detail)
	}
	if plan[4].Detail != `/dca/2/config/name "Band"` {
		t.Errorf("Unexpected network detail %q", plan[4].Detail)
	}
	if plan[8].Detail != "script" {
		t.Errorf("Unexpected script detail %q", plan[8].Detail)
	}
}

func TestPlanEmpty(t *testing.T) {
	if plan := Plan(nil); len(plan) != 0 {
		t.Errorf("Expected empty plan, got %d steps", len(plan))
	}
}
