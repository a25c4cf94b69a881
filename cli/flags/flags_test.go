package flags_test

import (
	"flag"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/urfave/cli"

	"github.com/compute-tools/vm-restore-points/cli/flags"
)

func newContext(values map[string]string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for name, value := range values {
		set.String(name, value, "")
	}
	app := cli.NewApp()
	app.Writer = io.Discard
	return cli.NewContext(app, set, nil)
}

var _ = Describe("Validate", func() {
	It("accepts a context with every required flag set", func() {
		c := newContext(map[string]string{"resource-group": "prod-rg", "vm": "vm1"})

		Expect(flags.Validate([]string{"resource-group", "vm"}, c)).To(Succeed())
	})

	It("rejects a context missing a required flag", func() {
		c := newContext(map[string]string{"resource-group": "prod-rg", "vm": ""})

		err := flags.Validate([]string{"resource-group", "vm"}, c)

		Expect(err).To(MatchError(ContainSubstring("--vm flag is required.")))
	})
})

var _ = Describe("ValidateRegion", func() {
	It("accepts every rolled-out region", func() {
		for _, region := range flags.AllowedRegions {
			c := newContext(map[string]string{"region": region})
			Expect(flags.ValidateRegion(c)).To(Succeed())
		}
	})

	It("rejects regions the feature has not reached", func() {
		c := newContext(map[string]string{"region": "brazilsouth"})

		Expect(flags.ValidateRegion(c)).To(MatchError(ContainSubstring("--region must be one of")))
	})

	It("rejects an empty region", func() {
		c := newContext(map[string]string{"region": ""})

		Expect(flags.ValidateRegion(c)).NotTo(Succeed())
	})
})
