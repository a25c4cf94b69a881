package orchestrator_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/compute-tools/vm-restore-points/executor"
	"github.com/compute-tools/vm-restore-points/orchestrator"
	"github.com/compute-tools/vm-restore-points/orchestrator/fakes"
)

var _ = Describe("DiskRecreator", func() {
	var (
		client    *fakes.FakeCloudClient
		logger    *fakes.FakeLogger
		recreator *orchestrator.DiskRecreator
		session   *orchestrator.Session
	)

	BeforeEach(func() {
		client = new(fakes.FakeCloudClient)
		logger = new(fakes.FakeLogger)
		recreator = orchestrator.NewDiskRecreator(client, logger, executor.NewSerialExecutor())

		session = orchestrator.NewSession(orchestrator.RestoreRequest{
			ResourceGroup: "prod-rg",
			VMName:        "vm1",
			Suffix:        "-restored",
		})
		session.SetVM(orchestrator.VM{
			ResourceGroup: "prod-rg",
			Name:          "vm1",
			Location:      "westeurope",
			Zones:         []string{"2"},
			OSDisk:        orchestrator.DiskRef{Name: "osdisk1"},
			DataDisks: []orchestrator.DiskRef{
				{Name: "data1", LUN: 0, Caching: "ReadOnly"},
				{Name: "data2", LUN: 2, Caching: "None"},
			},
		})
		session.SetRestorePoint(orchestrator.RestorePoint{
			Name:   "rp1",
			OSDisk: orchestrator.ManifestDisk{Name: "osdisk1", DiskRestorePointID: "drp-os", Caching: "ReadWrite"},
			DataDisks: []orchestrator.ManifestDisk{
				{Name: "data1", DiskRestorePointID: "drp-d1", LUN: 0, Caching: "ReadOnly"},
				{Name: "data2", DiskRestorePointID: "drp-d2", LUN: 2, Caching: "None"},
			},
		})

		client.GetDiskStub = func(ctx context.Context, resourceGroup, name string) (orchestrator.Disk, error) {
			skus := map[string]string{
				"osdisk1": "Premium_LRS",
				"data1":   "Premium_LRS",
				"data2":   "StandardSSD_LRS",
			}
			return orchestrator.Disk{Name: name, SKU: skus[name]}, nil
		}
		client.CreateDiskStub = func(ctx context.Context, resourceGroup string, spec orchestrator.DiskSpec) (orchestrator.Disk, error) {
			return orchestrator.Disk{Name: spec.Name, ID: "id-" + spec.Name, SKU: spec.SKU}, nil
		}
	})

	It("creates the OS disk first, then every data disk", func() {
		created, err := recreator.Recreate(context.Background(), session)

		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(HaveLen(3))
		Expect(client.CreateDiskCallCount()).To(Equal(3))

		_, _, osSpec := client.CreateDiskArgsForCall(0)
		Expect(osSpec.Name).To(Equal("osdisk1-restored"))
		Expect(osSpec.SourceRestorePointID).To(Equal("drp-os"))
		Expect(osSpec.SKU).To(Equal("Premium_LRS"))
		Expect(osSpec.Location).To(Equal("westeurope"))
		Expect(osSpec.Zones).To(Equal([]string{"2"}))

		_, _, d1Spec := client.CreateDiskArgsForCall(1)
		Expect(d1Spec.Name).To(Equal("data1-restored"))
		Expect(d1Spec.SourceRestorePointID).To(Equal("drp-d1"))
		Expect(d1Spec.SKU).To(Equal("Premium_LRS"))

		_, _, d2Spec := client.CreateDiskArgsForCall(2)
		Expect(d2Spec.Name).To(Equal("data2-restored"))
		Expect(d2Spec.SKU).To(Equal("StandardSSD_LRS"))

		Expect(created[0].OS).To(BeTrue())
		Expect(created[1].Source.LUN).To(Equal(int32(0)))
		Expect(created[2].Source.LUN).To(Equal(int32(2)))
	})

	It("tags every created disk with the run and its source restore point", func() {
		_, err := recreator.Recreate(context.Background(), session)

		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < client.CreateDiskCallCount(); i++ {
			_, _, spec := client.CreateDiskArgsForCall(i)
			Expect(spec.Tags).To(HaveKeyWithValue("restore-run-id", session.RunID()))
			Expect(spec.Tags).To(HaveKeyWithValue("source-restore-point", "rp1"))
		}
	})

	Context("when a manifest data disk is no longer attached to the VM", func() {
		BeforeEach(func() {
			vm := session.VM()
			vm.DataDisks = vm.DataDisks[:1]
			session.SetVM(vm)
		})

		It("falls back to the default tier and warns", func() {
			_, err := recreator.Recreate(context.Background(), session)

			Expect(err).NotTo(HaveOccurred())
			_, _, d2Spec := client.CreateDiskArgsForCall(2)
			Expect(d2Spec.SKU).To(Equal(orchestrator.DefaultDataDiskSKU))

			Expect(logger.WarnCallCount()).To(Equal(1))
			_, msg, args := logger.WarnArgsForCall(0)
			Expect(msg).To(ContainSubstring("falling back to tier"))
			Expect(args[0]).To(Equal("data2"))
		})
	})

	Context("when the VM's OS disk does not match the restore point's", func() {
		BeforeEach(func() {
			vm := session.VM()
			vm.OSDisk = orchestrator.DiskRef{Name: "replaced-osdisk"}
			session.SetVM(vm)
		})

		It("fails before creating anything", func() {
			_, err := recreator.Recreate(context.Background(), session)

			Expect(err).To(BeAssignableToTypeOf(orchestrator.TierLookupError{}))
			Expect(client.CreateDiskCallCount()).To(BeZero())
		})
	})

	Context("when a disk creation fails part-way", func() {
		BeforeEach(func() {
			client.CreateDiskStub = nil
			client.CreateDiskReturns(orchestrator.Disk{Name: "osdisk1-restored"}, nil)
			client.CreateDiskReturnsOnCall(1, orchestrator.Disk{}, errors.New("quota exceeded"))
		})

		It("stops at the failure and reports what was already created", func() {
			created, err := recreator.Recreate(context.Background(), session)

			Expect(err).To(BeAssignableToTypeOf(orchestrator.DiskCreationError{}))
			Expect(err).To(MatchError(ContainSubstring("quota exceeded")))
			Expect(client.CreateDiskCallCount()).To(Equal(2))
			Expect(created).To(HaveLen(1))
			Expect(created[0].OS).To(BeTrue())
		})
	})
})
