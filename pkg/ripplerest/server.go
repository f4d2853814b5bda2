package ripplerest

import (
	"context"
	"fmt"

	"github.com/ripplerest/ripplerest-go/pkg/ripplerest/types"
)

const (
	serverConnectedPath = "v1/server/connected"
	serverInfoPath      = "v1/server"
	uuidPath            = "v1/uuid"
	transactionPath     = "v1/transactions/{0}"
)

// IsServerConnected reports whether ripple-rest is connected to a rippled server. A nil receiver
// uses the default client.
func (c *Client) IsServerConnected(ctx context.Context) (bool, error) {
	const op = "IsServerConnected"
	c, err := resolveClient(op, c)
	if err != nil {
		return false, err
	}

	req, err := BuildGet(serverConnectedPath)
	if err != nil {
		return false, fmt.Errorf("building request: %w", err)
	}
	resp, err := execute[connectedResponse](ctx, c, op, req)
	if err != nil {
		return false, fmt.Errorf("checking server connection: %w", err)
	}

	c.metrics.SetServerConnected(resp.Connected)
	return resp.Connected, nil
}

// GetServerInfo returns the status of ripple-rest and the rippled server behind it.
func (c *Client) GetServerInfo(ctx context.Context) (*types.ServerInfo, error) {
	const op = "GetServerInfo"
	c, err := resolveClient(op, c)
	if err != nil {
		return nil, err
	}

	req, err := BuildGet(serverInfoPath)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := execute[serverInfoResponse](ctx, c, op, req)
	if err != nil {
		return nil, fmt.Errorf("getting server info: %w", err)
	}

	return &resp.ServerInfo, nil
}

// GenerateUUID asks the server for a fresh client_resource_id.
func (c *Client) GenerateUUID(ctx context.Context) (string, error) {
	const op = "GenerateUUID"
	c, err := resolveClient(op, c)
	if err != nil {
		return "", err
	}

	req, err := BuildGet(uuidPath)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	resp, err := execute[uuidResponse](ctx, c, op, req)
	if err != nil {
		return "", fmt.Errorf("generating uuid: %w", err)
	}

	return resp.UUID, nil
}

// GetTransaction returns the rippled transaction with the given hash.
func (c *Client) GetTransaction(ctx context.Context, hash string) (*types.Transaction, error) {
	const op = "GetTransaction"
	c, err := resolveClient(op, c)
	if err != nil {
		return nil, err
	}

	req, err := BuildGet(transactionPath, hash)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := execute[transactionResponse](ctx, c, op, req)
	if err != nil {
		return nil, fmt.Errorf("getting transaction %s: %w", hash, err)
	}

	return &resp.Transaction, nil
}
