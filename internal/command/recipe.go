package command

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/saadjs/dietman/internal/model"
	"github.com/saadjs/dietman/internal/parser"
	"github.com/saadjs/dietman/internal/ui"
)

const newRecipeArguments = 2

type newRecipeCommand struct {
	base
	maxTypesRaw string
	activityRaw string
}

func newNewRecipeCommand(keyword, description string) (*newRecipeCommand, error) {
	fields, err := parser.ParseDescription(description, newRecipeArguments)
	if err != nil {
		return nil, err
	}
	return &newRecipeCommand{
		base:        base{keyword: keyword},
		maxTypesRaw: fields[0],
		activityRaw: fields[1],
	}, nil
}

// Execute picks random foods from the catalogue, at most max-food-types of
// them, keeping the combined calories within the daily requirement.
func (c *newRecipeCommand) Execute(st *model.State) {
	maxTypes, ok := parsePositiveInt(c.maxTypesRaw)
	if !ok {
		c.result = ui.InvalidRecipeFormatMessage
		return
	}
	if !st.Profile.IsSet() {
		c.result = ui.ProfileNotFoundMessage
		return
	}
	factor, ok := model.ActivityFactor(c.activityRaw)
	if !ok {
		c.result = ui.InvalidCaloriesRequirementError
		return
	}
	requirement, ok := st.Profile.CalorieRequirement(factor)
	if !ok {
		c.result = ui.InvalidCaloriesRequirementError
		return
	}
	if st.Catalog.Len() == 0 {
		c.result = ui.EmptyRecipeSourceMessage
		return
	}

	names := st.Catalog.Names()
	rand.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	recipe := &model.Recipe{RequirementKcal: requirement}
	for _, name := range names {
		if len(recipe.Items) == maxTypes {
			break
		}
		calories, _ := st.Catalog.Lookup(name)
		if recipe.TotalCalories+calories > requirement {
			continue
		}
		recipe.Items = append(recipe.Items, model.RecipeItem{Name: name, Calories: calories})
		recipe.TotalCalories += calories
	}
	st.Recipe = recipe
	c.result = renderRecipe(recipe)
}

type showRecipeCommand struct {
	base
}

func newShowRecipeCommand(keyword string) *showRecipeCommand {
	return &showRecipeCommand{base: base{keyword: keyword}}
}

func (c *showRecipeCommand) Execute(st *model.State) {
	if st.Recipe == nil {
		c.result = ui.NoRecipeMessage
		return
	}
	c.result = renderRecipe(st.Recipe)
}

func renderRecipe(recipe *model.Recipe) string {
	if len(recipe.Items) == 0 {
		return ui.NoRecipeFitMessage
	}
	var sb strings.Builder
	sb.WriteString("Here is your recommended recipe:")
	for i, item := range recipe.Items {
		fmt.Fprintf(&sb, "\n%d. %s (%.2f cal)", i+1, item.Name, item.Calories)
	}
	fmt.Fprintf(&sb, "\nTotal: %.2f cal out of a %.2f cal daily requirement.",
		recipe.TotalCalories, recipe.RequirementKcal)
	return sb.String()
}
