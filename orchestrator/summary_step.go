package orchestrator

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

type SummaryStep struct {
	out    io.Writer
	logger Logger
}

func NewSummaryStep(out io.Writer, logger Logger) Step {
	return &SummaryStep{out: out, logger: logger}
}

func (s *SummaryStep) Run(ctx context.Context, session *Session) error {
	request := session.Request()

	fmt.Fprintf(s.out, "\nRestore of VM '%s' completed using restore point '%s' (collection '%s')\n\n",
		request.VMName, session.RestorePoint().Name, session.Collection().Name)

	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Disk", "Source", "Tier", "LUN", "Caching"})
	for _, disk := range session.CreatedDisks() {
		lun := "-"
		if !disk.OS {
			lun = fmt.Sprintf("%d", disk.Source.LUN)
		}
		table.Append([]string{disk.Disk.Name, disk.Source.Name, disk.Disk.SKU, lun, disk.Source.Caching})
	}
	table.Render()

	fmt.Fprintf(s.out, "\nThe pre-restore disks are still present and unattached:\n")
	for _, disk := range session.PreRestoreDisks() {
		fmt.Fprintf(s.out, "  %s\n", disk.Name)
	}
	if request.KeepOriginalDisks {
		fmt.Fprintln(s.out, "They will be kept, as requested.")
	} else {
		fmt.Fprintln(s.out, "Delete them manually once the restored VM has been verified; this tool never deletes disks.")
	}

	if path := session.ReportPath(); path != "" {
		fmt.Fprintf(s.out, "Run report: %s\n", path)
	}
	return nil
}
