package report_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v2"

	"github.com/compute-tools/vm-restore-points/report"
)

var _ = Describe("FileWriter", func() {
	var (
		dir    string
		writer report.FileWriter
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		writer = report.NewFileWriter(dir)
	})

	It("writes the report under a name derived from the VM and finish time", func() {
		lun := int32(2)
		finishedAt := time.Date(2024, 3, 10, 12, 30, 45, 0, time.UTC)

		path, err := writer.Write(report.Report{
			RunID:         "run-1",
			VMName:        "vm1",
			ResourceGroup: "prod-rg",
			Collection:    "rpc1",
			RestorePoint:  "rp1",
			FinishedAt:    finishedAt,
			CreatedDisks: []report.DiskRecord{
				{Name: "osdisk1-restored", SKU: "Premium_LRS", OSDisk: true},
				{Name: "data1-restored", SKU: "StandardSSD_LRS", LUN: &lun, Caching: "ReadOnly"},
			},
			PreRestoreDisks: []report.DiskRecord{
				{Name: "osdisk1"},
				{Name: "data1"},
			},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(dir, "vm1-restore-20240310T123045Z.yml")))

		payload, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())

		var written report.Report
		Expect(yaml.Unmarshal(payload, &written)).To(Succeed())
		Expect(written.VMName).To(Equal("vm1"))
		Expect(written.RestorePoint).To(Equal("rp1"))
		Expect(written.CreatedDisks).To(HaveLen(2))
		Expect(*written.CreatedDisks[1].LUN).To(Equal(int32(2)))
		Expect(written.PreRestoreDisks).To(HaveLen(2))
	})

	It("omits the failed step from clean-run reports", func() {
		path, err := writer.Write(report.Report{
			VMName:     "vm1",
			FinishedAt: time.Date(2024, 3, 10, 12, 30, 45, 0, time.UTC),
		})

		Expect(err).NotTo(HaveOccurred())
		payload, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(payload)).NotTo(ContainSubstring("failed_step"))
	})

	It("fails when the directory does not exist", func() {
		missing := report.NewFileWriter(filepath.Join(dir, "does-not-exist"))

		_, err := missing.Write(report.Report{VMName: "vm1", FinishedAt: time.Now()})

		Expect(err).To(MatchError(ContainSubstring("failed to write restore report")))
	})
})
