package twingate

import (
	"context"
	"errors"
)

const opCreateResource = "create resource"

type resourceCreateResponse struct {
	ResourceCreate *struct {
		OK     bool             `json:"ok"`
		Error  *string          `json:"error"`
		Entity *CreatedResource `json:"entity"`
	} `json:"resourceCreate"`
}

// CreateResource creates a resource for one address in a remote network.
//
// A rejection by the service returns *ResourceCreationError carrying the
// service's message. The remote network ID is not validated locally.
func (c *RealClient) CreateResource(ctx context.Context, opts ResourceCreateOpts) (*CreatedResource, error) {
	if opts.Name == "" {
		return nil, errors.New("resource name is required")
	}
	if opts.Address == "" {
		return nil, errors.New("resource address is required")
	}

	var resp resourceCreateResponse
	vars := map[string]interface{}{
		"name":            opts.Name,
		"address":         opts.Address,
		"remoteNetworkId": opts.RemoteNetworkID,
	}
	if err := c.run(ctx, opCreateResource, mutationCreateResource, vars, &resp); err != nil {
		return nil, err
	}

	payload := resp.ResourceCreate
	if payload == nil {
		return nil, &MalformedResponseError{Op: opCreateResource, Err: errors.New("missing resourceCreate")}
	}
	if !payload.OK {
		rejected := &ResourceCreationError{Name: opts.Name, Address: opts.Address}
		if payload.Error != nil {
			rejected.Reason = *payload.Error
		}
		return nil, rejected
	}
	if payload.Entity == nil {
		return nil, &MalformedResponseError{Op: opCreateResource, Err: errors.New("ok response without entity")}
	}
	return payload.Entity, nil
}
