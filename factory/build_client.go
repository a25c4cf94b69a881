package factory

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/pkg/errors"

	"github.com/compute-tools/vm-restore-points/azure"
	"github.com/compute-tools/vm-restore-points/counter"
	"github.com/compute-tools/vm-restore-points/orchestrator"
)

// BuildCloudClient authenticates through the default credential chain
// (environment, workload identity, CLI session, managed identity) and
// returns the management-plane client. In dry-run mode the client is
// wrapped so no mutating call ever reaches the resource provider; the
// returned counter records every suppressed mutation.
func BuildCloudClient(subscriptionID string, dryRun bool, logger orchestrator.Logger) (orchestrator.CloudClient, *counter.Calls, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to acquire credentials")
	}

	client, err := azure.NewClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build compute client")
	}

	if !dryRun {
		return client, nil, nil
	}

	mutations := counter.NewCalls()
	return azure.NewDryRunClient(client, logger, mutations), mutations, nil
}
