package command_test

import (
	"strings"
	"testing"

	"github.com/saadjs/dietman/internal/model"
	"github.com/saadjs/dietman/internal/ui"
)

func TestRecordMealAppendsEntries(t *testing.T) {
	t.Parallel()
	st := femaleState()
	cmd := run(t, st, "record-meal monday morning /chicken rice -- 500 /green tea -- 0")
	if !cmd.NeedsSave() {
		t.Fatalf("expected record-meal to trigger persistence")
	}
	record, ok := st.Records.Lookup(model.Monday)
	if !ok {
		t.Fatalf("expected a record for monday to be created lazily")
	}
	entries := record.Meals[model.Breakfast]
	if len(entries) != 2 {
		t.Fatalf("expected 2 breakfast entries, got %d", len(entries))
	}
	if entries[0].Name != "chicken rice" || entries[0].Calories == nil || *entries[0].Calories != 500 {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
	if entries[1].Name != "green tea" || entries[1].Calories == nil || *entries[1].Calories != 0 {
		t.Fatalf("unexpected second entry %+v", entries[1])
	}
}

func TestRecordMealKeepsUnknownCalories(t *testing.T) {
	t.Parallel()
	st := femaleState()
	run(t, st, "record-meal friday night /mystery stew -- lots")
	record, _ := st.Records.Lookup(model.Friday)
	entries := record.Meals[model.Dinner]
	if len(entries) != 1 {
		t.Fatalf("expected the entry to be recorded despite the bad calorie token, got %d entries", len(entries))
	}
	if entries[0].Calories != nil {
		t.Fatalf("expected unknown calories, got %v", *entries[0].Calories)
	}
}

func TestRecordMealRejectsBadDate(t *testing.T) {
	t.Parallel()
	st := femaleState()
	cmd := run(t, st, "record-meal funday morning /toast -- 100")
	if cmd.Result() != ui.InvalidDateMessage {
		t.Fatalf("expected %q, got %q", ui.InvalidDateMessage, cmd.Result())
	}
	if _, ok := st.Records.Lookup(model.Monday); ok {
		t.Fatalf("expected no record to be created")
	}
	if cmd.NeedsSave() {
		t.Fatalf("a rejected record-meal must not persist")
	}
}

func TestRecordMealRejectsBadDayPart(t *testing.T) {
	t.Parallel()
	st := femaleState()
	cmd := run(t, st, "record-meal monday midnight /toast -- 100")
	if cmd.Result() != ui.MealTypeError {
		t.Fatalf("expected %q, got %q", ui.MealTypeError, cmd.Result())
	}
}

func TestCheckMealListsSlotEntries(t *testing.T) {
	t.Parallel()
	st := femaleState()
	run(t, st, "record-meal Tuesday afternoon /noodle soup -- 350")

	cmd := run(t, st, "check-meal tuesday afternoon")
	out := cmd.Result()
	if !strings.Contains(out, "noodle soup") || !strings.Contains(out, "350.00") {
		t.Fatalf("expected the logged entry, got %q", out)
	}
}

func TestCheckMealEmptySlot(t *testing.T) {
	t.Parallel()
	cmd := run(t, femaleState(), "check-meal sunday morning")
	if cmd.Result() != ui.NoMealRecordedMessage {
		t.Fatalf("expected %q, got %q", ui.NoMealRecordedMessage, cmd.Result())
	}
}
