package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gwhitehawk/device-net/server/api/rest/documents"
)

// GetNetwork reads the network subtree rooted at the specified device.
func (a *APIClient) GetNetwork(ctx context.Context, mac string) (*documents.NetworkNode, error) {
	code, _, body, err := a.get(ctx, fmt.Sprintf("/api/network/%s", url.PathEscape(mac)))
	if err != nil {
		return nil, fmt.Errorf("error in request: %w", err)
	}
	if !a.isOneOf(code, http.StatusOK) {
		return nil, a.makeHTTPError(code, body)
	}
	doc := &documents.NetworkNode{}
	if err := decode(body, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetFullNetwork reads one tree for every device without a parent in the network.
func (a *APIClient) GetFullNetwork(ctx context.Context) ([]*documents.NetworkNode, error) {
	code, _, body, err := a.get(ctx, "/api/network")
	if err != nil {
		return nil, fmt.Errorf("error in request: %w", err)
	}
	if !a.isOneOf(code, http.StatusOK) {
		return nil, a.makeHTTPError(code, body)
	}
	var docs []*documents.NetworkNode
	if err := decode(body, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
