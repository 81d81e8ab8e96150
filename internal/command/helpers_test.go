package command_test

import (
	"testing"

	"github.com/saadjs/dietman/internal/command"
	"github.com/saadjs/dietman/internal/model"
)

// run parses and executes one input line against the state.
func run(t *testing.T, st *model.State, line string) command.Command {
	t.Helper()
	cmd, err := command.New(line)
	if err != nil {
		t.Fatalf("parse %q: %v", line, err)
	}
	cmd.Execute(st)
	return cmd
}

// maleState returns a state with a valid male profile (70kg, 175cm, 25y).
func maleState() *model.State {
	st := model.NewState()
	st.Profile = model.Profile{
		Name: "Bob", Age: 25, Gender: model.GenderMale,
		HeightCM: 175, WeightKG: 70, WeightGoalKG: 65,
	}
	return st
}

// femaleState returns a state with a valid female profile (60kg, 165cm, 25y).
func femaleState() *model.State {
	st := model.NewState()
	st.Profile = model.Profile{
		Name: "Alice", Age: 25, Gender: model.GenderFemale,
		HeightCM: 165, WeightKG: 60, WeightGoalKG: 55,
	}
	return st
}
