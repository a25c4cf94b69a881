package azure

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// The resiliency profile is not surfaced by the generated compute clients,
// so the flag is patched through the raw ARM pipeline at a pinned API
// version.
const resiliencyAPIVersion = "2023-09-01"

const (
	moduleName    = "github.com/compute-tools/vm-restore-points/azure"
	moduleVersion = "v1.0.0"
)

type Patcher struct {
	client         *arm.Client
	subscriptionID string
}

func NewPatcher(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Patcher, error) {
	client, err := arm.NewClient(moduleName, moduleVersion, credential, options)
	if err != nil {
		return nil, err
	}
	return &Patcher{client: client, subscriptionID: subscriptionID}, nil
}

func (p *Patcher) SetPeriodicRestorePoints(ctx context.Context, resourceGroup, vmName string, enabled bool) (string, error) {
	path := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Compute/virtualMachines/%s",
		url.PathEscape(p.subscriptionID), url.PathEscape(resourceGroup), url.PathEscape(vmName))

	req, err := runtime.NewRequest(ctx, http.MethodPatch, runtime.JoinPaths(p.client.Endpoint(), path))
	if err != nil {
		return "", err
	}
	query := req.Raw().URL.Query()
	query.Set("api-version", resiliencyAPIVersion)
	req.Raw().URL.RawQuery = query.Encode()

	body := map[string]interface{}{
		"properties": map[string]interface{}{
			"resiliencyProfile": map[string]interface{}{
				"periodicRestorePoints": map[string]interface{}{
					"isEnabled": enabled,
				},
			},
		},
	}
	if err := runtime.MarshalAsJSON(req, body); err != nil {
		return "", err
	}

	resp, err := p.client.Pipeline().Do(req)
	if err != nil {
		return "", err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK, http.StatusAccepted) {
		return "", runtime.NewResponseError(resp)
	}

	payload, err := runtime.Payload(resp)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
