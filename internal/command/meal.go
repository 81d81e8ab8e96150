package command

import (
	"fmt"
	"strings"

	"github.com/saadjs/dietman/internal/model"
	"github.com/saadjs/dietman/internal/parser"
	"github.com/saadjs/dietman/internal/ui"
)

const recordMealArguments = 3

type recordMealCommand struct {
	base
	dateRaw    string
	dayPartRaw string
	foodsRaw   string
}

func newRecordMealCommand(keyword, description string) (*recordMealCommand, error) {
	fields, err := parser.ParseDescription(description, recordMealArguments)
	if err != nil {
		return nil, err
	}
	return &recordMealCommand{
		base:       base{keyword: keyword},
		dateRaw:    fields[0],
		dayPartRaw: fields[1],
		foodsRaw:   fields[2],
	}, nil
}

func (c *recordMealCommand) Execute(st *model.State) {
	day, ok := model.ParseWeekday(c.dateRaw)
	if !ok {
		c.result = ui.InvalidDateMessage
		return
	}
	slot, ok := model.ParseDayPart(c.dayPartRaw)
	if !ok {
		c.result = ui.MealTypeError
		return
	}
	items := parseFoodDescription(c.foodsRaw)
	if len(items) == 0 {
		c.result = ui.InvalidFormatMessage
		return
	}

	record := st.Records.Record(day)
	names := make([]string, 0, len(items))
	for _, item := range items {
		// An unparseable calorie token records the food with an unknown
		// calorie value rather than rejecting the entry.
		record.AddFood(slot, model.FoodEntry{Name: item.name, Calories: item.calories})
		names = append(names, item.name)
	}
	c.save = true
	c.result = fmt.Sprintf("You just record the meal in the %s of %s: %s.",
		model.DayPart(slot), day, strings.Join(names, ", "))
}

const checkMealArguments = 2

type checkMealCommand struct {
	base
	dateRaw    string
	dayPartRaw string
}

func newCheckMealCommand(keyword, description string) (*checkMealCommand, error) {
	fields, err := parser.ParseDescription(description, checkMealArguments)
	if err != nil {
		return nil, err
	}
	return &checkMealCommand{
		base:       base{keyword: keyword},
		dateRaw:    fields[0],
		dayPartRaw: fields[1],
	}, nil
}

func (c *checkMealCommand) Execute(st *model.State) {
	day, ok := model.ParseWeekday(c.dateRaw)
	if !ok {
		c.result = ui.InvalidDateMessage
		return
	}
	slot, ok := model.ParseDayPart(c.dayPartRaw)
	if !ok {
		c.result = ui.MealTypeError
		return
	}
	record, ok := st.Records.Lookup(day)
	if !ok || len(record.Meals[slot]) == 0 {
		c.result = ui.NoMealRecordedMessage
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Meals recorded in the %s of %s:", model.DayPart(slot), day)
	for i, entry := range record.Meals[slot] {
		if entry.Calories != nil {
			fmt.Fprintf(&sb, "\n%d. %s (%.2f cal)", i+1, entry.Name, *entry.Calories)
		} else {
			fmt.Fprintf(&sb, "\n%d. %s (calories unknown)", i+1, entry.Name)
		}
	}
	c.result = sb.String()
}
