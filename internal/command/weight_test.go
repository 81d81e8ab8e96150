package command_test

import (
	"strings"
	"testing"

	"github.com/saadjs/dietman/internal/ui"
)

func TestSetWeightUpdatesProfileAndHistory(t *testing.T) {
	t.Parallel()
	st := femaleState()
	cmd := run(t, st, "set-weight 58")
	if !strings.Contains(cmd.Result(), "58.00") {
		t.Fatalf("expected the new weight in the result, got %q", cmd.Result())
	}
	if st.Profile.WeightKG != 58 {
		t.Fatalf("expected current weight 58, got %v", st.Profile.WeightKG)
	}
	if len(st.Profile.WeightHistory) != 1 || st.Profile.WeightHistory[0].WeightKG != 58 {
		t.Fatalf("expected one history entry of 58, got %+v", st.Profile.WeightHistory)
	}
	if !cmd.NeedsSave() {
		t.Fatalf("expected set-weight to trigger persistence")
	}
}

func TestSetWeightGoalFeedback(t *testing.T) {
	t.Parallel()
	st := femaleState() // goal 55

	cmd := run(t, st, "set-weight 58")
	if !strings.Contains(cmd.Result(), "3.00 kg more to go") {
		t.Fatalf("expected remaining distance to goal, got %q", cmd.Result())
	}
	cmd = run(t, st, "set-weight 54")
	if !strings.Contains(cmd.Result(), "YOU DID IT!") {
		t.Fatalf("expected goal achieved feedback, got %q", cmd.Result())
	}
}

func TestCheckWeightProgressSingleEntry(t *testing.T) {
	t.Parallel()
	st := femaleState()
	run(t, st, "set-weight 58")

	cmd := run(t, st, "check-weight-progress")
	out := cmd.Result()
	if !strings.Contains(out, ui.CheckWeightRecordMessage) {
		t.Fatalf("expected the record header, got %q", out)
	}
	if !strings.Contains(out, "1. 58.00 kg") {
		t.Fatalf("expected exactly the single entry listed, got %q", out)
	}
	if strings.Contains(out, "2. ") {
		t.Fatalf("expected no second entry, got %q", out)
	}
}

func TestCheckWeightProgressVerdicts(t *testing.T) {
	t.Parallel()
	st := femaleState()
	run(t, st, "set-weight 60")
	run(t, st, "set-weight 58")
	cmd := run(t, st, "check-weight-progress")
	if !strings.Contains(cmd.Result(), "lost 2.00 kg") {
		t.Fatalf("expected a loss verdict, got %q", cmd.Result())
	}

	run(t, st, "set-weight 61")
	cmd = run(t, st, "check-weight-progress")
	if !strings.Contains(cmd.Result(), "gained 1.00 kg") {
		t.Fatalf("expected a gain verdict, got %q", cmd.Result())
	}
}

func TestCheckWeightProgressEmptyHistory(t *testing.T) {
	t.Parallel()
	cmd := run(t, femaleState(), "check-weight-progress")
	if cmd.Result() != ui.NoWeightRecordMessage {
		t.Fatalf("expected %q, got %q", ui.NoWeightRecordMessage, cmd.Result())
	}
}

func TestDeleteWeightBounds(t *testing.T) {
	t.Parallel()
	st := femaleState()
	run(t, st, "set-weight 60")
	run(t, st, "set-weight 59")

	for _, line := range []string{"delete-weight 0", "delete-weight 3", "delete-weight x"} {
		cmd := run(t, st, line)
		if cmd.Result() != ui.InvalidIndexMessage {
			t.Fatalf("%q: expected %q, got %q", line, ui.InvalidIndexMessage, cmd.Result())
		}
		if len(st.Profile.WeightHistory) != 2 {
			t.Fatalf("%q: expected history unchanged, got %d entries", line, len(st.Profile.WeightHistory))
		}
	}
}

func TestDeleteWeightValidIndex(t *testing.T) {
	t.Parallel()
	st := femaleState()
	run(t, st, "set-weight 60")
	run(t, st, "set-weight 59")

	cmd := run(t, st, "delete-weight 1")
	if !strings.Contains(cmd.Result(), "60.00 kg") || !strings.Contains(cmd.Result(), "removed successfully") {
		t.Fatalf("unexpected delete result %q", cmd.Result())
	}
	if len(st.Profile.WeightHistory) != 1 || st.Profile.WeightHistory[0].WeightKG != 59 {
		t.Fatalf("expected only the 59 entry left, got %+v", st.Profile.WeightHistory)
	}
	if !cmd.NeedsSave() {
		t.Fatalf("expected delete-weight to trigger persistence")
	}
}
