package signature

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	capturePath = "/api/v1/signatures/capture"
	evolvePath  = "/api/v1/signatures/evolve"

	defaultClientTimeout = 15 * time.Second
	maxErrorBodyBytes    = 4096
)

var ErrSignatureServiceUnavailable = errors.New("signature service request failed")

// Client talks to a remote signature endpoint and satisfies Service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Service = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultClientTimeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) SignCapture(ctx context.Context, req CaptureRequest) (*SignedAction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return c.post(ctx, capturePath, req)
}

func (c *Client) SignEvolve(ctx context.Context, req EvolveRequest) (*SignedAction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return c.post(ctx, evolvePath, req)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (*SignedAction, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal signature request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build signature request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrSignatureServiceUnavailable, err.Error())
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))
		return nil, errors.Wrap(ErrSignatureServiceUnavailable, fmt.Sprintf("status %d: %s", res.StatusCode, strings.TrimSpace(string(msg))))
	}

	var signed SignedAction
	if err := json.NewDecoder(res.Body).Decode(&signed); err != nil {
		return nil, errors.Wrap(err, "failed to decode signature response")
	}

	if len(signed.Signature) != signatureLength {
		return nil, errors.Wrapf(ErrInvalidSignature, "service returned %d bytes", len(signed.Signature))
	}

	return &signed, nil
}
