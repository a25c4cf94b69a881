package command

import (
	"github.com/urfave/cli"

	"github.com/compute-tools/vm-restore-points/cli/flags"
)

type ToggleDisableCommand struct {
}

func NewToggleDisableCommand() ToggleDisableCommand {
	return ToggleDisableCommand{}
}

func (t ToggleDisableCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "disable",
		Aliases: []string{"d"},
		Usage:   "Disable periodic restore points on the VM",
		Action:  t.Action,
	}
}

func (t ToggleDisableCommand) Action(c *cli.Context) error {
	if err := flags.ValidateRegion(c); err != nil {
		return err
	}
	return runToggle(c, false)
}
