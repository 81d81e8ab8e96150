package command

import (
	"fmt"
	"strings"

	"github.com/saadjs/dietman/internal/model"
	"github.com/saadjs/dietman/internal/parser"
	"github.com/saadjs/dietman/internal/ui"
)

const checkCaloriesArguments = 2

type checkCaloriesCommand struct {
	base
	dateRaw     string
	activityRaw string
}

func newCheckCaloriesCommand(keyword, description string) (*checkCaloriesCommand, error) {
	fields, err := parser.ParseDescription(description, checkCaloriesArguments)
	if err != nil {
		return nil, err
	}
	return &checkCaloriesCommand{
		base:        base{keyword: keyword},
		dateRaw:     fields[0],
		activityRaw: fields[1],
	}, nil
}

func (c *checkCaloriesCommand) Execute(st *model.State) {
	day, ok := model.ParseWeekday(c.dateRaw)
	if !ok {
		c.result = ui.InvalidDateMessage
		return
	}
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}

	// Gender validity (for the BMR) and activity-level validity are checked
	// independently, but both failures collapse into the same message.
	valid := true
	bmr, ok := st.Profile.BMR()
	if !ok {
		valid = false
	}
	factor, ok := model.ActivityFactor(c.activityRaw)
	if !ok {
		valid = false
	}
	if !valid {
		c.result = ui.InvalidCaloriesRequirementError
		return
	}
	requirement := bmr * factor

	var sb strings.Builder
	fmt.Fprintf(&sb, "Calories for %s:", day)
	record, found := st.Records.Lookup(day)
	totalUnknown := 0
	var daily float64
	dailyCounted := 0
	if found {
		for _, slot := range model.AllMealSlots {
			total, counted, unknown := record.SlotCalories(slot)
			totalUnknown += unknown
			daily += total
			dailyCounted += counted
			if counted == 0 {
				fmt.Fprintf(&sb, "\nFor %s, %s", slot, ui.NoTimeCaloriesMessage)
				continue
			}
			fmt.Fprintf(&sb, "\nFor %s, %s%.2f cal.", slot, ui.TimeCaloriesMessage, total)
		}
	}
	if dailyCounted == 0 {
		fmt.Fprintf(&sb, "\n%s", ui.NoCaloriesMessage)
	} else {
		fmt.Fprintf(&sb, "\n%s%.2f cal.", ui.CaloriesMessage, daily)
	}
	if totalUnknown > 0 {
		fmt.Fprintf(&sb, "\n%s", ui.MissingCaloriesMessage)
	}
	fmt.Fprintf(&sb, "\nYour daily calories requirement is %.2f cal.", requirement)
	if dailyCounted > 0 {
		sb.WriteString("\n")
		switch {
		case daily < requirement*0.9:
			sb.WriteString(ui.InsufficientCaloriesMessage)
		case daily > requirement*1.1:
			sb.WriteString(ui.ExcessCaloriesMessage)
		default:
			sb.WriteString(ui.SufficientCaloriesMessage)
		}
	}
	c.result = sb.String()
}

type calculateCommand struct {
	base
	periodRaw string
}

func newCalculateCommand(keyword, description string) (*calculateCommand, error) {
	fields, err := parser.ParseDescription(description, 1)
	if err != nil {
		return nil, err
	}
	return &calculateCommand{base: base{keyword: keyword}, periodRaw: fields[0]}, nil
}

// Execute totals the calculable calories for one day, or for an inclusive
// DATE1->DATE2 range in week order.
func (c *calculateCommand) Execute(st *model.State) {
	fromRaw, toRaw, isRange := strings.Cut(c.periodRaw, "->")
	from, ok := model.ParseWeekday(fromRaw)
	if !ok {
		c.result = ui.InvalidDateMessage
		return
	}
	to := from
	if isRange {
		if to, ok = model.ParseWeekday(toRaw); !ok {
			c.result = ui.InvalidDateMessage
			return
		}
	}
	start, end := model.WeekIndex(from), model.WeekIndex(to)
	if start > end {
		start, end = end, start
	}

	var total float64
	counted, unknown := 0, 0
	for _, day := range model.AllWeekdays[start : end+1] {
		record, found := st.Records.Lookup(day)
		if !found {
			continue
		}
		t, cn, u := record.DailyCalories()
		total += t
		counted += cn
		unknown += u
	}
	if counted == 0 {
		c.result = ui.NoCaloriesMessage
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%.2f cal.", ui.CalculateCaloriesMessage, total)
	if unknown > 0 {
		fmt.Fprintf(&sb, "\n%s", ui.MissingCaloriesMessage)
	}
	c.result = sb.String()
}

type checkBMICommand struct {
	base
}

func newCheckBMICommand(keyword string) *checkBMICommand {
	return &checkBMICommand{base: base{keyword: keyword}}
}

func (c *checkBMICommand) Execute(st *model.State) {
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}
	if !st.Profile.IsValid() {
		c.result = ui.InvalidProfileMessage
		return
	}
	bmi := st.Profile.BMI()
	c.result = fmt.Sprintf("Your BMI is %.2f, which is in the %s range.", bmi, model.BMICategory(bmi))
}
