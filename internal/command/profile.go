package command

import (
	"fmt"
	"strings"

	"github.com/saadjs/dietman/internal/model"
	"github.com/saadjs/dietman/internal/parser"
	"github.com/saadjs/dietman/internal/ui"
)

const setProfileArguments = 6

type setProfileCommand struct {
	base
	name      string
	ageRaw    string
	genderRaw string
	heightRaw string
	weightRaw string
	goalRaw   string
}

func newSetProfileCommand(keyword, description string) (*setProfileCommand, error) {
	fields, err := parser.ParseDescription(description, setProfileArguments)
	if err != nil {
		return nil, err
	}
	return &setProfileCommand{
		base:      base{keyword: keyword},
		name:      strings.TrimSpace(fields[0]),
		ageRaw:    fields[1],
		genderRaw: fields[2],
		heightRaw: fields[3],
		weightRaw: fields[4],
		goalRaw:   fields[5],
	}, nil
}

// Execute validates every field before touching the profile: the update is
// all-or-nothing.
func (c *setProfileCommand) Execute(st *model.State) {
	if c.name == "" {
		c.result = ui.InvalidNameMessage
		return
	}
	age, ok := parsePositiveInt(c.ageRaw)
	if !ok {
		c.result = ui.InvalidAgeMessage
		return
	}
	gender, ok := model.ParseGender(c.genderRaw)
	if !ok {
		c.result = ui.InvalidGenderMessage
		return
	}
	height, ok := parsePositiveFloat(c.heightRaw)
	if !ok {
		c.result = ui.InvalidHeightMessage
		return
	}
	weight, ok := parsePositiveFloat(c.weightRaw)
	if !ok {
		c.result = ui.InvalidWeightMessage
		return
	}
	goal, ok := parsePositiveFloat(c.goalRaw)
	if !ok {
		c.result = ui.InvalidWeightGoalMessage
		return
	}

	st.Profile.Name = c.name
	st.Profile.Age = age
	st.Profile.Gender = gender
	st.Profile.HeightCM = height
	st.Profile.WeightKG = weight
	st.Profile.WeightGoalKG = goal
	c.save = true
	c.result = ui.ProfileUpdateMessage
}

type profileCommand struct {
	base
}

func newProfileCommand(keyword string) *profileCommand {
	return &profileCommand{base: base{keyword: keyword}}
}

func (c *profileCommand) Execute(st *model.State) {
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}
	p := &st.Profile
	c.result = fmt.Sprintf("Name: %s\nAge: %d\nGender: %s\nHeight: %.2f cm\nWeight: %.2f kg\nWeight Goal: %.2f kg",
		p.Name, p.Age, p.Gender, p.HeightCM, p.WeightKG, p.WeightGoalKG)
}

type setNameCommand struct {
	base
	name string
}

func newSetNameCommand(keyword, description string) (*setNameCommand, error) {
	fields, err := parser.ParseDescription(description, 1)
	if err != nil {
		return nil, err
	}
	return &setNameCommand{base: base{keyword: keyword}, name: strings.TrimSpace(fields[0])}, nil
}

func (c *setNameCommand) Execute(st *model.State) {
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}
	if c.name == "" {
		c.result = ui.InvalidNameMessage
		return
	}
	st.Profile.Name = c.name
	c.save = true
	c.result = ui.NameChangeMessage + c.name + "."
}

type setAgeCommand struct {
	base
	ageRaw string
}

func newSetAgeCommand(keyword, description string) (*setAgeCommand, error) {
	fields, err := parser.ParseDescription(description, 1)
	if err != nil {
		return nil, err
	}
	return &setAgeCommand{base: base{keyword: keyword}, ageRaw: fields[0]}, nil
}

func (c *setAgeCommand) Execute(st *model.State) {
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}
	age, ok := parsePositiveInt(c.ageRaw)
	if !ok {
		c.result = ui.InvalidAgeMessage
		return
	}
	st.Profile.Age = age
	c.save = true
	c.result = fmt.Sprintf("%s%d.", ui.AgeChangeMessage, age)
}

type setGenderCommand struct {
	base
	genderRaw string
}

func newSetGenderCommand(keyword, description string) (*setGenderCommand, error) {
	fields, err := parser.ParseDescription(description, 1)
	if err != nil {
		return nil, err
	}
	return &setGenderCommand{base: base{keyword: keyword}, genderRaw: fields[0]}, nil
}

func (c *setGenderCommand) Execute(st *model.State) {
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}
	gender, ok := model.ParseGender(c.genderRaw)
	if !ok {
		c.result = ui.InvalidGenderMessage
		return
	}
	st.Profile.Gender = gender
	c.save = true
	c.result = fmt.Sprintf("%s%s.", ui.GenderChangeMessage, gender)
}

type setHeightCommand struct {
	base
	heightRaw string
}

func newSetHeightCommand(keyword, description string) (*setHeightCommand, error) {
	fields, err := parser.ParseDescription(description, 1)
	if err != nil {
		return nil, err
	}
	return &setHeightCommand{base: base{keyword: keyword}, heightRaw: fields[0]}, nil
}

func (c *setHeightCommand) Execute(st *model.State) {
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}
	height, ok := parsePositiveFloat(c.heightRaw)
	if !ok {
		c.result = ui.InvalidHeightMessage
		return
	}
	st.Profile.HeightCM = height
	c.save = true
	c.result = fmt.Sprintf("%s%.2f cm.", ui.HeightChangeMessage, height)
}

type setWeightGoalCommand struct {
	base
	goalRaw string
}

func newSetWeightGoalCommand(keyword, description string) (*setWeightGoalCommand, error) {
	fields, err := parser.ParseDescription(description, 1)
	if err != nil {
		return nil, err
	}
	return &setWeightGoalCommand{base: base{keyword: keyword}, goalRaw: fields[0]}, nil
}

func (c *setWeightGoalCommand) Execute(st *model.State) {
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}
	goal, ok := parsePositiveFloat(c.goalRaw)
	if !ok {
		c.result = ui.InvalidWeightGoalMessage
		return
	}
	st.Profile.WeightGoalKG = goal
	c.save = true
	c.result = fmt.Sprintf("%s%.2f kg.", ui.WeightGoalChangeMessage, goal)
}
