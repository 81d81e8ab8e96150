// Package command implements one type per user-facing operation and the
// dispatcher that builds them from raw input lines. Every command follows
// the same three-phase contract: the constructor checks the field count,
// Execute validates field values and applies the command's single logical
// mutation, and Result returns the finalized message.
package command

import (
	"strconv"
	"strings"

	"github.com/saadjs/dietman/internal/model"
	"github.com/saadjs/dietman/internal/parser"
)

// Command is one fully parsed user operation.
type Command interface {
	// Execute validates field values and applies the command's effect on the
	// session state. Value failures substitute a descriptive message for the
	// normal result; they never abort the session.
	Execute(st *model.State)
	// Result returns the message to display, finalized by Execute.
	Result() string
	// NeedsSave reports whether the state mutated and must be persisted.
	NeedsSave() bool
	// IsExit reports whether the session loop should terminate.
	IsExit() bool
}

// base carries the pieces every command shares. Fields live only for one
// parse+execute+format cycle.
type base struct {
	keyword string
	result  string
	save    bool
}

func (b *base) Result() string  { return b.result }
func (b *base) NeedsSave() bool { return b.save }
func (b *base) IsExit() bool    { return false }

// New dispatches a raw input line to the matching command constructor.
// Unrecognized keywords fail with parser.ErrInvalidCommand; constructors fail
// with parser.ErrInvalidFormat when the description has too few fields.
func New(raw string) (Command, error) {
	keyword, description, err := parser.PrepareInput(raw)
	if err != nil {
		return nil, err
	}
	switch keyword {
	case "profile":
		return newProfileCommand(keyword), nil
	case "set-profile":
		return newSetProfileCommand(keyword, description)
	case "set-name":
		return newSetNameCommand(keyword, description)
	case "set-age":
		return newSetAgeCommand(keyword, description)
	case "set-gender":
		return newSetGenderCommand(keyword, description)
	case "set-height":
		return newSetHeightCommand(keyword, description)
	case "set-weight":
		return newSetWeightCommand(keyword, description)
	case "set-weight-goal":
		return newSetWeightGoalCommand(keyword, description)
	case "check-weight-progress":
		return newCheckWeightProgressCommand(keyword), nil
	case "delete-weight":
		return newDeleteWeightCommand(keyword, description)
	case "record-meal":
		return newRecordMealCommand(keyword, description)
	case "check-meal":
		return newCheckMealCommand(keyword, description)
	case "calculate":
		return newCalculateCommand(keyword, description)
	case "check-calories":
		return newCheckCaloriesCommand(keyword, description)
	case "check-bmi":
		return newCheckBMICommand(keyword), nil
	case "addf":
		return newAddFoodCommand(keyword, description)
	case "delf":
		return newDeleteFoodCommand(keyword, description)
	case "list-food":
		return newListFoodCommand(keyword), nil
	case "new-recipe":
		return newNewRecipeCommand(keyword, description)
	case "show-recipe":
		return newShowRecipeCommand(keyword), nil
	case "help":
		return newHelpCommand(keyword), nil
	case "exit":
		return newExitCommand(keyword), nil
	default:
		return nil, parser.ErrInvalidCommand
	}
}

// foodItem is one "name -- calories" chunk of a food description. Calories
// stays nil when the token is absent or unparseable.
type foodItem struct {
	name     string
	calories *float64
}

// parseFoodDescription splits a description of the form
// "/name -- calories /name -- calories" into items. A missing leading slash
// is tolerated for single-item descriptions.
func parseFoodDescription(description string) []foodItem {
	items := make([]foodItem, 0, 1)
	for _, chunk := range strings.Split(description, "/") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		name, caloriesRaw, hasCalories := strings.Cut(chunk, "--")
		item := foodItem{name: strings.TrimSpace(name)}
		if item.name == "" {
			continue
		}
		if hasCalories {
			if v, err := strconv.ParseFloat(strings.TrimSpace(caloriesRaw), 64); err == nil && v >= 0 {
				item.calories = &v
			}
		}
		items = append(items, item)
	}
	return items
}

func parsePositiveFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func parsePositiveInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
