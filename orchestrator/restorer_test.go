package orchestrator_test

import (
	"bytes"
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/compute-tools/vm-restore-points/executor"
	"github.com/compute-tools/vm-restore-points/orchestrator"
	"github.com/compute-tools/vm-restore-points/orchestrator/fakes"
)

var _ = Describe("Restorer", func() {
	var (
		client       *fakes.FakeCloudClient
		logger       *fakes.FakeLogger
		reportWriter *fakes.FakeReportWriter
		out          *bytes.Buffer
		restorer     *orchestrator.Restorer
		request      orchestrator.RestoreRequest

		restoreErr orchestrator.Error
	)

	BeforeEach(func() {
		client = new(fakes.FakeCloudClient)
		logger = new(fakes.FakeLogger)
		reportWriter = new(fakes.FakeReportWriter)
		out = &bytes.Buffer{}

		request = orchestrator.RestoreRequest{
			ResourceGroup: "prod-rg",
			VMName:        "vm1",
			Suffix:        "-restored",
		}

		client.GetVMReturns(orchestrator.VM{
			ResourceGroup: "prod-rg",
			Name:          "vm1",
			Location:      "westeurope",
			Size:          "Standard_D4s_v5",
			OSDisk:        orchestrator.DiskRef{Name: "osdisk1", ID: "id-osdisk1"},
			DataDisks: []orchestrator.DiskRef{
				{Name: "data1", ID: "id-data1", LUN: 0, Caching: "ReadOnly"},
			},
		}, nil)
		client.ListRestorePointCollectionsReturns([]orchestrator.RestorePointCollection{
			{ResourceGroup: "prod-rg", Name: "rpc1"},
		}, nil)
		client.ListRestorePointsReturns([]orchestrator.RestorePoint{
			{
				Name:        "rp1",
				TimeCreated: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
				OSDisk:      orchestrator.ManifestDisk{Name: "osdisk1", DiskRestorePointID: "drp-os", Caching: "ReadWrite"},
				DataDisks: []orchestrator.ManifestDisk{
					{Name: "data1", DiskRestorePointID: "drp-d1", LUN: 0, Caching: "ReadOnly"},
				},
			},
		}, nil)
		client.GetDiskStub = func(ctx context.Context, resourceGroup, name string) (orchestrator.Disk, error) {
			return orchestrator.Disk{Name: name, SKU: "Premium_LRS"}, nil
		}
		client.CreateDiskStub = func(ctx context.Context, resourceGroup string, spec orchestrator.DiskSpec) (orchestrator.Disk, error) {
			return orchestrator.Disk{Name: spec.Name, ID: "id-" + spec.Name, SKU: spec.SKU}, nil
		}
		client.PowerStateReturns(orchestrator.PowerStateRunning, nil)
		reportWriter.WriteReturns("prod-rg/vm1-restore.yml", nil)
	})

	JustBeforeEach(func() {
		selector := orchestrator.NewSelector(client, logger)
		recreator := orchestrator.NewDiskRecreator(client, logger, executor.NewSerialExecutor())
		restorer = orchestrator.NewRestorer(client, logger, selector, recreator, reportWriter, out)

		restoreErr = restorer.Restore(context.Background(), request)
	})

	Context("when every step succeeds", func() {
		It("succeeds", func() {
			Expect(restoreErr.IsNil()).To(BeTrue())
		})

		It("creates the restored disks before touching the VM", func() {
			Expect(client.CreateDiskCallCount()).To(Equal(2))
			Expect(client.Invocations()["CreateDisk"]).NotTo(BeEmpty())

			_, _, osSpec := client.CreateDiskArgsForCall(0)
			Expect(osSpec.Name).To(Equal("osdisk1-restored"))
			_, _, dataSpec := client.CreateDiskArgsForCall(1)
			Expect(dataSpec.Name).To(Equal("data1-restored"))
		})

		It("walks the VM through the full mutation sequence", func() {
			Expect(client.DeallocateVMCallCount()).To(Equal(1))
			Expect(client.DetachAllDataDisksCallCount()).To(Equal(1))
			Expect(client.AttachDataDisksCallCount()).To(Equal(1))
			Expect(client.SetOSDiskCallCount()).To(Equal(1))
			Expect(client.StartVMCallCount()).To(Equal(1))

			_, _, _, attachments := client.AttachDataDisksArgsForCall(0)
			Expect(attachments).To(HaveLen(1))
			Expect(attachments[0].Disk.Name).To(Equal("data1-restored"))
			Expect(attachments[0].LUN).To(Equal(int32(0)))
			Expect(attachments[0].Caching).To(Equal("ReadOnly"))

			_, _, _, osDisk := client.SetOSDiskArgsForCall(0)
			Expect(osDisk.Name).To(Equal("osdisk1-restored"))
		})

		It("writes the run report and prints the summary", func() {
			Expect(reportWriter.WriteCallCount()).To(Equal(1))
			written := reportWriter.WriteArgsForCall(0)
			Expect(written.VMName).To(Equal("vm1"))
			Expect(written.RestorePoint).To(Equal("rp1"))
			Expect(written.CreatedDisks).To(HaveLen(2))
			Expect(written.PreRestoreDisks).To(HaveLen(2))

			Expect(out.String()).To(ContainSubstring("osdisk1-restored"))
			Expect(out.String()).To(ContainSubstring("data1-restored"))
			Expect(out.String()).To(ContainSubstring("prod-rg/vm1-restore.yml"))
		})
	})

	Context("when the VM is already deallocated", func() {
		BeforeEach(func() {
			client.PowerStateReturns(orchestrator.PowerStateDeallocated, nil)
		})

		It("skips deallocation and continues", func() {
			Expect(restoreErr.IsNil()).To(BeTrue())
			Expect(client.DeallocateVMCallCount()).To(BeZero())
			Expect(client.StartVMCallCount()).To(Equal(1))
		})
	})

	Context("when the VM does not exist", func() {
		BeforeEach(func() {
			client.GetVMReturns(orchestrator.VM{}, orchestrator.NewNotFoundError("VM 'vm1' not found"))
		})

		It("fails before anything is created", func() {
			Expect(restoreErr).To(HaveLen(1))
			Expect(client.CreateDiskCallCount()).To(BeZero())
			Expect(client.DeallocateVMCallCount()).To(BeZero())
		})
	})

	Context("when a disk creation fails", func() {
		BeforeEach(func() {
			client.CreateDiskStub = nil
			client.CreateDiskReturns(orchestrator.Disk{}, errors.New("quota exceeded"))
		})

		It("aborts before any VM mutation", func() {
			Expect(restoreErr).To(HaveLen(1))
			Expect(restoreErr[0]).To(BeAssignableToTypeOf(orchestrator.DiskCreationError{}))
			Expect(client.DeallocateVMCallCount()).To(BeZero())
			Expect(client.DetachAllDataDisksCallCount()).To(BeZero())
			Expect(orchestrator.BuildExitCode(restoreErr) & (1 << 3)).NotTo(BeZero())
		})
	})

	Context("when detaching the data disks fails", func() {
		BeforeEach(func() {
			client.DetachAllDataDisksReturns(errors.New("conflict"))
		})

		It("halts the sequence and hands over to remediation", func() {
			Expect(restoreErr.ContainsMutationFailure()).To(BeTrue())
			Expect(client.AttachDataDisksCallCount()).To(BeZero())
			Expect(client.SetOSDiskCallCount()).To(BeZero())
			Expect(client.StartVMCallCount()).To(BeZero())

			Expect(reportWriter.WriteCallCount()).To(Equal(1))
			written := reportWriter.WriteArgsForCall(0)
			Expect(written.FailedStep).To(Equal("detach-data-disks"))

			Expect(orchestrator.BuildExitCode(restoreErr) & (1 << 4)).NotTo(BeZero())
		})
	})

	Context("when starting the VM fails", func() {
		BeforeEach(func() {
			client.StartVMReturns(errors.New("allocation failure"))
		})

		It("reports the failed step with every disk already swapped in", func() {
			Expect(restoreErr.ContainsMutationFailure()).To(BeTrue())
			Expect(client.SetOSDiskCallCount()).To(Equal(1))

			written := reportWriter.WriteArgsForCall(0)
			Expect(written.FailedStep).To(Equal("start"))
			Expect(written.CreatedDisks).To(HaveLen(2))
		})
	})

	Context("when writing the report fails after a successful restore", func() {
		BeforeEach(func() {
			reportWriter.WriteReturns("", errors.New("disk full"))
		})

		It("still succeeds and prints the summary", func() {
			Expect(restoreErr.IsNil()).To(BeTrue())
			Expect(out.String()).To(ContainSubstring("osdisk1-restored"))
		})
	})
})
