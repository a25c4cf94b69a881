package toggle_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	orchestratorFakes "github.com/compute-tools/vm-restore-points/orchestrator/fakes"
	"github.com/compute-tools/vm-restore-points/toggle"
	"github.com/compute-tools/vm-restore-points/toggle/fakes"
)

var _ = Describe("Toggler", func() {
	var (
		inspector *fakes.FakeInspector
		patcher   *fakes.FakePatcher
		logger    *orchestratorFakes.FakeLogger
		toggler   toggle.Toggler
	)

	BeforeEach(func() {
		inspector = new(fakes.FakeInspector)
		patcher = new(fakes.FakePatcher)
		logger = new(orchestratorFakes.FakeLogger)
		toggler = toggle.NewToggler(inspector, patcher, toggle.NewValidator(), logger)

		inspector.ProfileReturns(toggle.VMProfile{
			Name:             "vm1",
			Size:             "Standard_D4s_v5",
			PremiumIOCapable: true,
			Disks: []toggle.DiskProfile{
				{Name: "osdisk1", SKU: "Premium_LRS", OS: true},
			},
		}, nil)
		patcher.SetPeriodicRestorePointsReturns(`{"isEnabled":true}`, nil)
	})

	Context("enabling", func() {
		It("validates the VM before patching", func() {
			payload, err := toggler.Toggle(context.Background(), "prod-rg", "vm1", true)

			Expect(err).NotTo(HaveOccurred())
			Expect(payload).To(Equal(`{"isEnabled":true}`))
			Expect(inspector.ProfileCallCount()).To(Equal(1))
			Expect(patcher.SetPeriodicRestorePointsCallCount()).To(Equal(1))

			_, resourceGroup, vmName, enabled := patcher.SetPeriodicRestorePointsArgsForCall(0)
			Expect(resourceGroup).To(Equal("prod-rg"))
			Expect(vmName).To(Equal("vm1"))
			Expect(enabled).To(BeTrue())
		})

		It("does not patch a VM that fails validation", func() {
			inspector.ProfileReturns(toggle.VMProfile{
				Name:       "vm1",
				Size:       "Standard_D4s_v5",
				InScaleSet: true,
			}, nil)

			_, err := toggler.Toggle(context.Background(), "prod-rg", "vm1", true)

			Expect(err).To(BeAssignableToTypeOf(toggle.ValidationErrors{}))
			Expect(patcher.SetPeriodicRestorePointsCallCount()).To(BeZero())
		})

		It("fails when the VM cannot be inspected", func() {
			inspector.ProfileReturns(toggle.VMProfile{}, errors.New("forbidden"))

			_, err := toggler.Toggle(context.Background(), "prod-rg", "vm1", true)

			Expect(err).To(MatchError(ContainSubstring("failed to inspect VM 'vm1'")))
			Expect(patcher.SetPeriodicRestorePointsCallCount()).To(BeZero())
		})
	})

	Context("disabling", func() {
		It("patches without inspecting or validating", func() {
			patcher.SetPeriodicRestorePointsReturns(`{"isEnabled":false}`, nil)

			payload, err := toggler.Toggle(context.Background(), "prod-rg", "vm1", false)

			Expect(err).NotTo(HaveOccurred())
			Expect(payload).To(Equal(`{"isEnabled":false}`))
			Expect(inspector.ProfileCallCount()).To(BeZero())

			_, _, _, enabled := patcher.SetPeriodicRestorePointsArgsForCall(0)
			Expect(enabled).To(BeFalse())
		})
	})

	It("wraps patch failures", func() {
		patcher.SetPeriodicRestorePointsReturns("", errors.New("conflict"))

		_, err := toggler.Toggle(context.Background(), "prod-rg", "vm1", false)

		Expect(err).To(MatchError(ContainSubstring("failed to update VM 'vm1'")))
	})
})
