package iomodel

import (
	"context"
	"testing"

	"github.com/econlab/gaming_impact/internal/iomodel/types"
	"github.com/econlab/gaming_impact/internal/logger"
)

func TestOrchestratorSkipsFailingStates(t *testing.T) {
	good := twoSectorState()
	good.State = "Goodland"

	// Missing V001 makes this one fail alignment.
	broken := twoSectorState()
	broken.State = "Brokenland"
	delete(broken.ValueAdded, types.VARowCompensation)

	o := NewOrchestrator(logger.New(logger.LevelError), 2)
	results := o.Run(context.Background(), []*types.RawStateTables{good, broken})

	if got, want := len(results), 2; got != want {
		t.Fatalf("len(results)=%d, want %d", got, want)
	}

	byState := map[string]StateResult{}
	for _, r := range results {
		byState[r.State] = r
	}

	g, ok := byState["Goodland"]
	if !ok || g.Err != nil {
		t.Fatalf("Goodland should have computed, got err=%v", g.Err)
	}
	if len(g.Multipliers.Sectors) == 0 {
		t.Fatalf("Goodland produced no sector multipliers")
	}

	b, ok := byState["Brokenland"]
	if !ok || b.Err == nil {
		t.Fatalf("Brokenland should have failed")
	}
	if _, isAlignment := b.Err.(*AlignmentError); !isAlignment {
		t.Fatalf("Brokenland err=%T, want *AlignmentError", b.Err)
	}
}

func TestOrchestratorManyStates(t *testing.T) {
	states := []*types.RawStateTables{}
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		st := twoSectorState()
		st.State = name
		states = append(states, st)
	}

	o := NewOrchestrator(logger.New(logger.LevelError), 3)
	results := o.Run(context.Background(), states)

	if got, want := len(results), len(states); got != want {
		t.Fatalf("len(results)=%d, want %d", got, want)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("state %s failed: %v", r.State, r.Err)
		}
	}
}
