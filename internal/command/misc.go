package command

import (
	"github.com/saadjs/dietman/internal/model"
	"github.com/saadjs/dietman/internal/ui"
)

type helpCommand struct {
	base
}

func newHelpCommand(keyword string) *helpCommand {
	return &helpCommand{base: base{keyword: keyword}}
}

func (c *helpCommand) Execute(st *model.State) {
	c.result = ui.FunctionList
}

// exitCommand carries no domain effect; it signals the session to end.
type exitCommand struct {
	base
}

func newExitCommand(keyword string) *exitCommand {
	return &exitCommand{base: base{keyword: keyword}}
}

func (c *exitCommand) Execute(st *model.State) {
	c.result = ui.ExitAppMessage
}

func (c *exitCommand) IsExit() bool { return true }
