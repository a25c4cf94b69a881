package factory

import (
	"io"

	"github.com/compute-tools/vm-restore-points/counter"
	"github.com/compute-tools/vm-restore-points/executor"
	"github.com/compute-tools/vm-restore-points/orchestrator"
	"github.com/compute-tools/vm-restore-points/report"
)

func BuildRestorer(subscriptionID, reportDir string, dryRun, debug bool, out io.Writer) (*orchestrator.Restorer, *counter.Calls, error) {
	logger := BuildLogger(debug)

	client, mutations, err := BuildCloudClient(subscriptionID, dryRun, logger)
	if err != nil {
		return nil, nil, err
	}

	selector := orchestrator.NewSelector(client, logger)
	recreator := orchestrator.NewDiskRecreator(client, logger, executor.NewSerialExecutor())
	reportWriter := report.NewFileWriter(reportDir)

	return orchestrator.NewRestorer(client, logger, selector, recreator, reportWriter, out), mutations, nil
}
