package command

import (
	"fmt"
	"strings"

	"github.com/saadjs/dietman/internal/model"
	"github.com/saadjs/dietman/internal/parser"
	"github.com/saadjs/dietman/internal/ui"
)

type addFoodCommand struct {
	base
	foodsRaw string
}

func newAddFoodCommand(keyword, description string) (*addFoodCommand, error) {
	fields, err := parser.ParseDescription(description, 1)
	if err != nil {
		return nil, err
	}
	return &addFoodCommand{base: base{keyword: keyword}, foodsRaw: fields[0]}, nil
}

// Execute adds every entry with a parseable calorie value; entries without
// one are skipped and reported, without rejecting the rest of the batch.
func (c *addFoodCommand) Execute(st *model.State) {
	items := parseFoodDescription(c.foodsRaw)
	if len(items) == 0 {
		c.result = ui.InvalidFormatMessage
		return
	}
	added := make([]string, 0, len(items))
	skipped := false
	for _, item := range items {
		if item.calories == nil {
			skipped = true
			continue
		}
		st.Catalog.Add(item.name, *item.calories)
		added = append(added, item.name)
	}

	var sb strings.Builder
	if len(added) > 0 {
		c.save = true
		fmt.Fprintf(&sb, "Added to the food database: %s.", strings.Join(added, ", "))
	}
	if skipped {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(ui.InvalidFoodFormatError)
	}
	c.result = sb.String()
}

type deleteFoodCommand struct {
	base
	name string
}

func newDeleteFoodCommand(keyword, description string) (*deleteFoodCommand, error) {
	fields, err := parser.ParseDescription(description, 1)
	if err != nil {
		return nil, err
	}
	return &deleteFoodCommand{base: base{keyword: keyword}, name: strings.TrimSpace(fields[0])}, nil
}

// Execute removes a catalogue entry. Calories already snapshotted into daily
// records stay untouched.
func (c *deleteFoodCommand) Execute(st *model.State) {
	if c.name == "" || !st.Catalog.Remove(c.name) {
		c.result = ui.FoodNotFoundMessage
		return
	}
	c.save = true
	c.result = fmt.Sprintf("%s has been removed from the food database.", c.name)
}

type listFoodCommand struct {
	base
}

func newListFoodCommand(keyword string) *listFoodCommand {
	return &listFoodCommand{base: base{keyword: keyword}}
}

func (c *listFoodCommand) Execute(st *model.State) {
	if st.Catalog.Len() == 0 {
		c.result = ui.FoodDatabaseEmptyMessage
		return
	}
	var sb strings.Builder
	sb.WriteString(ui.FoodDatabaseMessage)
	for _, name := range st.Catalog.Names() {
		calories, _ := st.Catalog.Lookup(name)
		fmt.Fprintf(&sb, "\n%s: %.2f cal", name, calories)
	}
	c.result = sb.String()
}
