package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/compute-tools/vm-restore-points/cli/command"
	"github.com/compute-tools/vm-restore-points/cli/flags"
)

var version string

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "rptoggle"
	app.Usage = "Enable or disable periodic restore points on an Azure VM"
	app.HelpName = "rptoggle"

	app.Flags = availableFlags()
	app.Before = validateFlags
	app.Commands = []cli.Command{
		command.NewToggleEnableCommand().Cli(),
		command.NewToggleDisableCommand().Cli(),
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func validateFlags(c *cli.Context) error {
	return flags.Validate([]string{"subscription", "resource-group", "vm", "region"}, c)
}

func availableFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "subscription, s",
			Usage:  "Azure subscription ID",
			EnvVar: "VMRP_SUBSCRIPTION_ID",
		},
		cli.StringFlag{
			Name:  "resource-group, g",
			Usage: "Resource group containing the VM",
		},
		cli.StringFlag{
			Name:  "vm",
			Usage: "Name of the VM",
		},
		cli.StringFlag{
			Name:  "region",
			Usage: "Region the VM runs in; the feature is only available in rolled-out regions",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logs",
		},
	}
}
