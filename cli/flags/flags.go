package flags

import (
	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func Validate(requiredFlags []string, c *cli.Context) error {
	if containsHelpFlag(c) {
		return nil
	}

	for _, flag := range requiredFlags {
		if c.GlobalString(flag) == "" {
			cli.ShowAppHelp(c)
			return redCliError(errors.Errorf("--%v flag is required.", flag))
		}
	}
	return nil
}

// AllowedRegions is the set of regions the periodic restore points feature
// is rolled out to.
var AllowedRegions = []string{
	"centraluseuap",
	"eastus2euap",
	"westcentralus",
	"northeurope",
	"westeurope",
	"eastus2",
}

func ValidateRegion(c *cli.Context) error {
	region := c.GlobalString("region")
	for _, allowed := range AllowedRegions {
		if region == allowed {
			return nil
		}
	}
	return redCliError(errors.Errorf("--region must be one of: %v", AllowedRegions))
}

func containsHelpFlag(c *cli.Context) bool {
	for _, arg := range c.Args() {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

func redCliError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
}
