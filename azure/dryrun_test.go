package azure_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/compute-tools/vm-restore-points/azure"
	"github.com/compute-tools/vm-restore-points/counter"
	"github.com/compute-tools/vm-restore-points/orchestrator"
	"github.com/compute-tools/vm-restore-points/orchestrator/fakes"
)

var _ = Describe("DryRunClient", func() {
	var (
		delegate  *fakes.FakeCloudClient
		logger    *fakes.FakeLogger
		mutations *counter.Calls
		client    *azure.DryRunClient
	)

	BeforeEach(func() {
		delegate = new(fakes.FakeCloudClient)
		logger = new(fakes.FakeLogger)
		mutations = counter.NewCalls()
		client = azure.NewDryRunClient(delegate, logger, mutations)
	})

	It("passes reads through to the wrapped client", func() {
		delegate.GetVMReturns(orchestrator.VM{Name: "vm1"}, nil)

		vm, err := client.GetVM(context.Background(), "prod-rg", "vm1")

		Expect(err).NotTo(HaveOccurred())
		Expect(vm.Name).To(Equal("vm1"))
		Expect(delegate.GetVMCallCount()).To(Equal(1))
		Expect(mutations.Count()).To(BeZero())
	})

	It("suppresses every mutating call and counts it", func() {
		ctx := context.Background()

		_, err := client.CreateDisk(ctx, "prod-rg", orchestrator.DiskSpec{Name: "osdisk1-restored"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.DeallocateVM(ctx, "prod-rg", "vm1")).To(Succeed())
		Expect(client.DetachAllDataDisks(ctx, "prod-rg", "vm1")).To(Succeed())
		Expect(client.AttachDataDisks(ctx, "prod-rg", "vm1", []orchestrator.DiskAttachment{{}})).To(Succeed())
		Expect(client.SetOSDisk(ctx, "prod-rg", "vm1", orchestrator.Disk{Name: "osdisk1-restored"})).To(Succeed())
		Expect(client.StartVM(ctx, "prod-rg", "vm1")).To(Succeed())

		Expect(delegate.Invocations()).To(BeEmpty())
		Expect(mutations.Count()).To(Equal(6))
		Expect(mutations.Ops()).To(Equal([]string{
			"create-disk", "deallocate", "detach-data-disks", "attach-data-disks", "swap-os-disk", "start",
		}))
	})

	It("synthesizes a recognizable disk for suppressed creations", func() {
		disk, err := client.CreateDisk(context.Background(), "prod-rg", orchestrator.DiskSpec{
			Name:  "data1-restored",
			SKU:   "Premium_LRS",
			Zones: []string{"2"},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(disk.ID).To(Equal("dry-run:data1-restored"))
		Expect(disk.SKU).To(Equal("Premium_LRS"))
		Expect(disk.Zones).To(Equal([]string{"2"}))
		Expect(delegate.CreateDiskCallCount()).To(BeZero())
	})
})
