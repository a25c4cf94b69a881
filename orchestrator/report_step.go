package orchestrator

import (
	"context"
	"time"

	"github.com/compute-tools/vm-restore-points/report"
)

//go:generate counterfeiter -o fakes/fake_report_writer.go . ReportWriter
type ReportWriter interface {
	Write(report.Report) (string, error)
}

type ReportStep struct {
	writer ReportWriter
	logger Logger
	now    func() time.Time
}

func NewReportStep(writer ReportWriter, logger Logger) Step {
	return &ReportStep{writer: writer, logger: logger, now: time.Now}
}

func (s *ReportStep) Run(ctx context.Context, session *Session) error {
	path, err := s.writer.Write(buildReport(session, s.now()))
	if err != nil {
		// The restore itself succeeded; a report failure must not fail the
		// run, the operator still gets the summary on stdout.
		s.logger.Warn("restore", "Could not write restore report: %s", err)
		return nil
	}

	session.SetReportPath(path)
	s.logger.Info("restore", "Restore report written to %s", path)
	return nil
}

func buildReport(session *Session, finishedAt time.Time) report.Report {
	request := session.Request()

	r := report.Report{
		RunID:             session.RunID(),
		VMName:            request.VMName,
		ResourceGroup:     request.ResourceGroup,
		Collection:        session.Collection().Name,
		RestorePoint:      session.RestorePoint().Name,
		FinishedAt:        finishedAt,
		FailedStep:        session.FailedStep(),
		KeepOriginalDisks: request.KeepOriginalDisks,
	}

	for _, disk := range session.CreatedDisks() {
		record := report.DiskRecord{
			Name:    disk.Disk.Name,
			SKU:     disk.Disk.SKU,
			Caching: disk.Source.Caching,
			OSDisk:  disk.OS,
		}
		if !disk.OS {
			lun := disk.Source.LUN
			record.LUN = &lun
		}
		r.CreatedDisks = append(r.CreatedDisks, record)
	}

	for _, disk := range session.PreRestoreDisks() {
		record := report.DiskRecord{
			Name:    disk.Name,
			Caching: disk.Caching,
		}
		r.PreRestoreDisks = append(r.PreRestoreDisks, record)
	}

	return r
}
