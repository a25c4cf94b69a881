package command

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/compute-tools/vm-restore-points/factory"
	"github.com/compute-tools/vm-restore-points/orchestrator"
)

type RestoreCommand struct {
}

func NewRestoreCommand() RestoreCommand {
	return RestoreCommand{}
}

func (r RestoreCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "restore",
		Aliases: []string{"r"},
		Usage:   "Restore the VM's disks from a restore point",
		Action:  r.Action,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "collection",
				Usage: "Restore point collection to use; discovered automatically when omitted",
			},
			cli.StringFlag{
				Name:  "restore-point",
				Usage: "Restore point to use; the newest one is used when omitted",
			},
			cli.StringFlag{
				Name:  "suffix",
				Value: "-restored",
				Usage: "Suffix appended to the names of the recreated disks",
			},
			cli.BoolFlag{
				Name:  "keep-original-disks",
				Usage: "Record in the summary that the pre-restore disks should be kept",
			},
			cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Resolve and validate everything but issue no mutating calls",
			},
		},
	}
}

func (r RestoreCommand) Action(c *cli.Context) error {
	trapSigint()

	config, err := factory.ConfigFromEnv()
	if err != nil {
		return redCliError(err)
	}

	subscriptionID := c.GlobalString("subscription")
	if subscriptionID == "" {
		subscriptionID = config.SubscriptionID
	}
	if subscriptionID == "" {
		return redCliError(errors.New("--subscription flag or VMRP_SUBSCRIPTION_ID is required."))
	}

	dryRun := c.Bool("dry-run")
	restorer, mutations, err := factory.BuildRestorer(subscriptionID, config.ReportDir, dryRun, c.GlobalBool("debug"), os.Stdout)
	if err != nil {
		return redCliError(err)
	}

	restoreErr := restorer.Restore(context.Background(), orchestrator.RestoreRequest{
		ResourceGroup:     c.GlobalString("resource-group"),
		VMName:            c.GlobalString("vm"),
		CollectionName:    c.String("collection"),
		RestorePointName:  c.String("restore-point"),
		Suffix:            c.String("suffix"),
		KeepOriginalDisks: c.Bool("keep-original-disks"),
	})

	if dryRun && restoreErr.IsNil() {
		fmt.Printf("Dry run complete; %d mutating call(s) were suppressed.\n", mutations.Count())
	}

	return processError(restoreErr)
}
