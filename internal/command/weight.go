package command

import (
	"fmt"
	"strings"

	"github.com/saadjs/dietman/internal/model"
	"github.com/saadjs/dietman/internal/parser"
	"github.com/saadjs/dietman/internal/ui"
)

type setWeightCommand struct {
	base
	weightRaw string
}

func newSetWeightCommand(keyword, description string) (*setWeightCommand, error) {
	fields, err := parser.ParseDescription(description, 1)
	if err != nil {
		return nil, err
	}
	return &setWeightCommand{base: base{keyword: keyword}, weightRaw: fields[0]}, nil
}

func (c *setWeightCommand) Execute(st *model.State) {
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}
	weight, ok := parsePositiveFloat(c.weightRaw)
	if !ok {
		c.result = ui.InvalidWeightMessage
		return
	}
	st.Profile.SetWeight(weight)
	c.save = true

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%.2f kg.", ui.WeightChangeMessage, weight)
	if goal := st.Profile.WeightGoalKG; goal > 0 {
		sb.WriteString("\n")
		if weight <= goal {
			sb.WriteString(ui.WeightGoalAchievedMessage)
		} else {
			fmt.Fprintf(&sb, ui.WeightGoalNotAchievedMessage, weight-goal)
		}
	}
	c.result = sb.String()
}

type checkWeightProgressCommand struct {
	base
}

func newCheckWeightProgressCommand(keyword string) *checkWeightProgressCommand {
	return &checkWeightProgressCommand{base: base{keyword: keyword}}
}

func (c *checkWeightProgressCommand) Execute(st *model.State) {
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}
	history := st.Profile.WeightHistory
	if len(history) == 0 {
		c.result = ui.NoWeightRecordMessage
		return
	}

	var sb strings.Builder
	sb.WriteString(ui.CheckWeightRecordMessage)
	for i, entry := range history {
		fmt.Fprintf(&sb, "\n%d. %.2f kg (%s)", i+1, entry.WeightKG, entry.RecordedAt.Format("2006-01-02"))
	}
	sb.WriteString("\n")

	first, last := history[0].WeightKG, history[len(history)-1].WeightKG
	switch {
	case last < first:
		fmt.Fprintf(&sb, ui.WeightLossMessage, first-last)
	case last > first:
		fmt.Fprintf(&sb, ui.WeightGainMessage, last-first)
	default:
		sb.WriteString(ui.WeightNoChangeMessage)
	}
	if goal := st.Profile.WeightGoalKG; goal > 0 {
		sb.WriteString("\n")
		if last <= goal {
			sb.WriteString(ui.WeightGoalAchievedMessage)
		} else {
			fmt.Fprintf(&sb, ui.WeightGoalNotAchievedMessage, last-goal)
		}
	}
	c.result = sb.String()
}

type deleteWeightCommand struct {
	base
	indexRaw string
}

func newDeleteWeightCommand(keyword, description string) (*deleteWeightCommand, error) {
	fields, err := parser.ParseDescription(description, 1)
	if err != nil {
		return nil, err
	}
	return &deleteWeightCommand{base: base{keyword: keyword}, indexRaw: fields[0]}, nil
}

func (c *deleteWeightCommand) Execute(st *model.State) {
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}
	index, ok := parsePositiveInt(c.indexRaw)
	if !ok {
		c.result = ui.InvalidIndexMessage
		return
	}
	if index > len(st.Profile.WeightHistory) {
		c.result = ui.InvalidIndexMessage
		return
	}
	removed := st.Profile.WeightHistory[index-1].WeightKG
	st.Profile.DeleteWeightEntry(index)
	c.save = true
	c.result = fmt.Sprintf("%.2f kg%s", removed, ui.WeightDeletedMessage)
}
