package factory

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/pkg/errors"

	"github.com/compute-tools/vm-restore-points/azure"
	"github.com/compute-tools/vm-restore-points/toggle"
)

func BuildToggler(subscriptionID string, debug bool) (toggle.Toggler, error) {
	logger := BuildLogger(debug)

	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return toggle.Toggler{}, errors.Wrap(err, "failed to acquire credentials")
	}

	client, err := azure.NewClient(subscriptionID, credential, nil)
	if err != nil {
		return toggle.Toggler{}, errors.Wrap(err, "failed to build compute client")
	}

	patcher, err := azure.NewPatcher(subscriptionID, credential, nil)
	if err != nil {
		return toggle.Toggler{}, errors.Wrap(err, "failed to build update client")
	}

	return toggle.NewToggler(client, patcher, toggle.NewValidator(), logger), nil
}
