package listings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
)

// Gateway errors.
var (
	// ErrHearingNotFound indicates the scheduling service holds no hearing
	// with the requested identifier.
	ErrHearingNotFound = errors.New("hearing not found")

	// ErrRequestFailed indicates the scheduling service rejected or failed
	// the request.
	ErrRequestFailed = errors.New("scheduling request failed")

	// ErrInvalidResponse indicates the scheduling service returned a body
	// that could not be decoded.
	ErrInvalidResponse = errors.New("invalid scheduling response")
)

// Gateway is the hearing-scheduling service boundary consumed by the
// orchestrator.
type Gateway interface {
	// CreateHearing submits a new hearing request.
	CreateHearing(ctx context.Context, payload HearingRequestPayload) (*hearings.SchedulingResponse, error)

	// UpdateHearing amends an existing hearing request.
	UpdateHearing(ctx context.Context, payload HearingRequestPayload, hearingID string) (*hearings.SchedulingResponse, error)

	// CancelHearing cancels an existing hearing request.
	CancelHearing(ctx context.Context, payload CancelRequestPayload, hearingID string) (*hearings.SchedulingResponse, error)

	// GetHearing fetches the full details of one hearing request.
	GetHearing(ctx context.Context, hearingID string) (*GetResponse, error)

	// HearingsForCase lists the hearing requests known for a case,
	// optionally filtered by status.
	HearingsForCase(ctx context.Context, caseID string, statusFilter *hearings.HmcStatus) (*CaseHearingsResponse, error)
}

// Config configures the scheduling gateway client.
type Config struct {
	// BaseURL is the root URL of the scheduling service.
	BaseURL string

	// SourceSystem identifies this service to the scheduling service.
	SourceSystem string

	// TimeoutMs bounds each request. Defaults to 30000.
	TimeoutMs int
}

// Client is the HTTP implementation of the scheduling gateway.
type Client struct {
	config Config
	client *http.Client
}

var _ Gateway = (*Client)(nil)

// NewClient creates a scheduling gateway client. A nil httpClient gets a
// client bounded by the configured timeout.
func NewClient(config Config, httpClient *http.Client) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrRequestFailed)
	}
	if config.SourceSystem == "" {
		config.SourceSystem = "SSCS"
	}
	if config.TimeoutMs <= 0 {
		config.TimeoutMs = 30000
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Duration(config.TimeoutMs) * time.Millisecond}
	}
	return &Client{config: config, client: httpClient}, nil
}

// CreateHearing submits a new hearing request.
func (c *Client) CreateHearing(ctx context.Context, payload HearingRequestPayload) (*hearings.SchedulingResponse, error) {
	return c.submit(ctx, http.MethodPost, "/hearing", payload)
}

// UpdateHearing amends an existing hearing request.
func (c *Client) UpdateHearing(ctx context.Context, payload HearingRequestPayload, hearingID string) (*hearings.SchedulingResponse, error) {
	return c.submit(ctx, http.MethodPut, "/hearing/"+url.PathEscape(hearingID), payload)
}

// CancelHearing cancels an existing hearing request.
func (c *Client) CancelHearing(ctx context.Context, payload CancelRequestPayload, hearingID string) (*hearings.SchedulingResponse, error) {
	return c.submit(ctx, http.MethodDelete, "/hearing/"+url.PathEscape(hearingID), payload)
}

// GetHearing fetches the full details of one hearing request. A 404 from the
// scheduling service is reported as ErrHearingNotFound wrapped in
// ErrGetHearing so callers can treat the request as no longer existing.
func (c *Client) GetHearing(ctx context.Context, hearingID string) (*GetResponse, error) {
	body, err := c.do(ctx, http.MethodGet, "/hearing/"+url.PathEscape(hearingID), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hearings.ErrGetHearing, err)
	}

	var response GetResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &response, nil
}

// HearingsForCase lists the hearing requests known for a case.
func (c *Client) HearingsForCase(ctx context.Context, caseID string, statusFilter *hearings.HmcStatus) (*CaseHearingsResponse, error) {
	path := "/hearings/" + url.PathEscape(caseID)
	if statusFilter != nil {
		path += "?status=" + url.QueryEscape(string(*statusFilter))
	}

	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var response CaseHearingsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &response, nil
}

// submit sends a mutating request and decodes the scheduling response.
func (c *Client) submit(ctx context.Context, method, path string, payload interface{}) (*hearings.SchedulingResponse, error) {
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	var response hearings.SchedulingResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &response, nil
}

// do performs one HTTP exchange and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Source-System", c.config.SourceSystem)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrHearingNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, errResp.Message)
		}
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	return body, nil
}
