// Package vapi is the outbound adapter for the Vapi.ai calling API.
//
// Rules:
// - No Vapi wire types outside this package; callers see call ids and errors.
// - All requests are bounded by a per-request timeout; no retries here.
package vapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"outbound-dialer/internal/config"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 30 * time.Second

// ErrTimeout marks a per-request deadline expiry, distinct from other
// transport failures.
var ErrTimeout = errors.New("timeout")

// ErrInvalidCredentials marks a 401 from the account endpoint.
var ErrInvalidCredentials = errors.New("vapi api key is invalid (401 Unauthorized)")

// APIError is a remote rejection: any response outside [200,300).
// Error text carries the status code and the raw body so failed numbers
// can be reported with full detail.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Body)
}

// Client talks to the Vapi call-creation and account endpoints.
type Client struct {
	http          *resty.Client
	phoneNumberID string
	workflowID    string
}

func NewClient(cfg config.APIConfig) *Client {
	hc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(cfg.Key)

	return &Client{
		http:          hc,
		phoneNumberID: cfg.PhoneNumberID,
		workflowID:    cfg.WorkflowID,
	}
}

type createCallPayload struct {
	PhoneNumberID string            `json:"phoneNumberId"`
	WorkflowID    string            `json:"workflowId"`
	Number        string            `json:"number"`
	Customer      map[string]string `json:"customer"`
}

type createCallResponse struct {
	CallID *string `json:"callId"`
}

// CreateCall asks Vapi to start one outbound call to number, passing
// variables through as the customer object. It returns the remote call id
// on success. A 2xx response without a callId is still a success with an
// empty id.
func (c *Client) CreateCall(ctx context.Context, number string, variables map[string]string) (string, error) {
	payload := createCallPayload{
		PhoneNumberID: c.phoneNumberID,
		WorkflowID:    c.workflowID,
		Number:        number,
		Customer:      variables,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/call")
	if err != nil {
		return "", classifyTransportErr(err)
	}
	if !resp.IsSuccess() {
		return "", &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	var out createCallResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("parsing call response: %w", err)
	}
	if out.CallID == nil {
		return "", nil
	}
	return *out.CallID, nil
}

// VerifyCredentials checks the API key against the account endpoint before
// any call is attempted.
func (c *Client) VerifyCredentials(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/account")
	if err != nil {
		return classifyTransportErr(err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrInvalidCredentials
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("account check failed: %w", &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())})
	}
	return nil
}

func classifyTransportErr(err error) error {
	var ue *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ue) && ue.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("network error: %v", err)
}
