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
	app.Name = "vmrestore"
	app.Usage = "Restore an Azure VM's disks from a periodic restore point"
	app.HelpName = "vmrestore"

	app.Flags = availableFlags()
	app.Before = validateFlags
	app.Commands = []cli.Command{
		command.NewRestoreCommand().Cli(),
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func validateFlags(c *cli.Context) error {
	return flags.Validate([]string{"resource-group", "vm"}, c)
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
			Usage: "Name of the VM to restore",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logs",
		},
	}
}
