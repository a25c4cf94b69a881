package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/compute-tools/vm-restore-points/cli/flags"
	"github.com/compute-tools/vm-restore-points/factory"
	"github.com/compute-tools/vm-restore-points/toggle"
)

type ToggleEnableCommand struct {
}

func NewToggleEnableCommand() ToggleEnableCommand {
	return ToggleEnableCommand{}
}

func (t ToggleEnableCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "enable",
		Aliases: []string{"e"},
		Usage:   "Enable periodic restore points on the VM, after validating it is supported",
		Action:  t.Action,
	}
}

func (t ToggleEnableCommand) Action(c *cli.Context) error {
	if err := flags.ValidateRegion(c); err != nil {
		return err
	}
	return runToggle(c, true)
}

func runToggle(c *cli.Context, enabled bool) error {
	toggler, err := factory.BuildToggler(c.GlobalString("subscription"), c.GlobalBool("debug"))
	if err != nil {
		return redCliError(err)
	}

	payload, err := toggler.Toggle(context.Background(), c.GlobalString("resource-group"), c.GlobalString("vm"), enabled)
	if err != nil {
		if _, ok := err.(toggle.ValidationErrors); ok {
			return cli.NewExitError(err.Error(), 1<<2)
		}
		return redCliError(err)
	}

	fmt.Println(payload)
	return nil
}
