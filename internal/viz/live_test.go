package viz

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/r7vme/ripple/internal/config"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Size = 16
	cfg.Drops = 3
	cfg.Seed = 1
	return cfg
}

func TestModelTick_StepsAndRecordsEnergy(t *testing.T) {
	m, err := NewModel(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	next, _ := m.Update(TickMsg(time.Now()))
	got := next.(Model)

	if got.err != nil {
		t.Fatalf("tick failed: %v", got.err)
	}
	if got.sim.StepsTaken() != stepsPerTick {
		t.Errorf("tick advanced %d steps, want %d", got.sim.StepsTaken(), stepsPerTick)
	}
	if len(got.energyHistory) != 1 {
		t.Errorf("energy history has %d entries, want 1", len(got.energyHistory))
	}
}

func TestModelDrop_KeepsClock(t *testing.T) {
	m, err := NewModel(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	next, _ := m.Update(TickMsg(time.Now()))
	ticked := next.(Model)
	steps := ticked.sim.StepsTaken()

	next, _ = ticked.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	dropped := next.(Model)

	if dropped.err != nil {
		t.Fatalf("drop failed: %v", dropped.err)
	}
	if dropped.sim.StepsTaken() != steps {
		t.Errorf("drop changed step count from %d to %d", steps, dropped.sim.StepsTaken())
	}
}
