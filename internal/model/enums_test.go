package model_test

import (
	"strings"
	"testing"

	"github.com/saadjs/dietman/internal/model"
)

func TestParseWeekdayAnyCase(t *testing.T) {
	t.Parallel()
	for _, day := range model.AllWeekdays {
		for _, variant := range []string{strings.ToLower(string(day)), strings.ToUpper(string(day)), string(day)} {
			parsed, ok := model.ParseWeekday(variant)
			if !ok {
				t.Fatalf("expected %q to parse", variant)
			}
			if parsed != day {
				t.Fatalf("expected %q, got %q", day, parsed)
			}
		}
	}
}

func TestParseWeekdayRejectsUnknownLabel(t *testing.T) {
	t.Parallel()
	if _, ok := model.ParseWeekday("funday"); ok {
		t.Fatalf("expected funday to be rejected")
	}
}

func TestParseDayPartMapping(t *testing.T) {
	t.Parallel()
	cases := map[string]model.MealSlot{
		"morning":   model.Breakfast,
		"Afternoon": model.Lunch,
		"NIGHT":     model.Dinner,
	}
	for part, want := range cases {
		slot, ok := model.ParseDayPart(part)
		if !ok {
			t.Fatalf("expected %q to parse", part)
		}
		if slot != want {
			t.Fatalf("expected %q -> %q, got %q", part, want, slot)
		}
	}
	if _, ok := model.ParseDayPart("midnight"); ok {
		t.Fatalf("expected midnight to be rejected")
	}
}

func TestActivityFactors(t *testing.T) {
	t.Parallel()
	cases := map[string]float64{"low": 1.375, "moderate": 1.55, "high": 1.725}
	for level, want := range cases {
		factor, ok := model.ActivityFactor(level)
		if !ok {
			t.Fatalf("expected %q to be a valid activity level", level)
		}
		if factor != want {
			t.Fatalf("expected factor %v for %q, got %v", want, level, factor)
		}
	}
	if _, ok := model.ActivityFactor("extreme"); ok {
		t.Fatalf("expected extreme to be rejected")
	}
}

func TestParseGender(t *testing.T) {
	t.Parallel()
	if g, ok := model.ParseGender("FEMALE"); !ok || g != model.GenderFemale {
		t.Fatalf("expected FEMALE to parse as %q, got %q ok=%v", model.GenderFemale, g, ok)
	}
	if _, ok := model.ParseGender("other"); ok {
		t.Fatalf("expected unrecognized gender to be rejected")
	}
}
