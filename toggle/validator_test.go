package toggle_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/compute-tools/vm-restore-points/toggle"
)

var _ = Describe("Validator", func() {
	var (
		validator toggle.Validator
		profile   toggle.VMProfile
	)

	BeforeEach(func() {
		validator = toggle.NewValidator()
		profile = toggle.VMProfile{
			Name:             "vm1",
			ResourceGroup:    "prod-rg",
			Location:         "westeurope",
			Size:             "Standard_D4s_v5",
			PremiumIOCapable: true,
			Disks: []toggle.DiskProfile{
				{Name: "osdisk1", SKU: "Premium_LRS", OS: true},
				{Name: "data1", SKU: "StandardSSD_LRS"},
			},
		}
	})

	It("passes a supported VM", func() {
		Expect(validator.Validate(profile)).To(Succeed())
	})

	It("rejects a VM size without premium storage support", func() {
		profile.PremiumIOCapable = false
		profile.Size = "Standard_D4_v5"

		err := validator.Validate(profile)

		Expect(err).To(MatchError(ContainSubstring("Standard_D4_v5")))
		Expect(err).To(MatchError(ContainSubstring("premium storage")))
	})

	It("rejects scale set members", func() {
		profile.InScaleSet = true

		Expect(validator.Validate(profile)).To(MatchError(ContainSubstring("scale set")))
	})

	It("rejects ephemeral OS disks", func() {
		profile.EphemeralOSDisk = true

		Expect(validator.Validate(profile)).To(MatchError(ContainSubstring("ephemeral OS disk")))
	})

	It("rejects write accelerated, shared and unsupported-tier disks", func() {
		profile.Disks = append(profile.Disks,
			toggle.DiskProfile{Name: "wa-disk", SKU: "Premium_LRS", WriteAcceleratorEnabled: true},
			toggle.DiskProfile{Name: "shared-disk", SKU: "Premium_LRS", Shared: true},
			toggle.DiskProfile{Name: "ultra-disk", SKU: "UltraSSD_LRS"},
			toggle.DiskProfile{Name: "pv2-disk", SKU: "PremiumV2_LRS"},
		)

		err := validator.Validate(profile)

		Expect(err).To(MatchError(ContainSubstring("wa-disk")))
		Expect(err).To(MatchError(ContainSubstring("shared-disk")))
		Expect(err).To(MatchError(ContainSubstring("UltraSSD_LRS")))
		Expect(err).To(MatchError(ContainSubstring("PremiumV2_LRS")))
	})

	It("collects every failure instead of stopping at the first", func() {
		profile.PremiumIOCapable = false
		profile.InScaleSet = true
		profile.Disks[1].Shared = true

		err := validator.Validate(profile)

		validationErrs, ok := err.(toggle.ValidationErrors)
		Expect(ok).To(BeTrue())
		Expect(validationErrs).To(HaveLen(3))
		Expect(err.Error()).To(ContainSubstring("3 check(s) failed"))
	})
})
