package ilos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout applies to every request; there is no per-call override.
const DefaultTimeout = 30 * time.Second

// Client is the single shared ILOS backend client. Its configuration (base
// URL, timeout, logger) is set up once and not mutated while requests are in
// flight; individual calls share nothing else.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger
}

func NewClient(baseURL string) (*Client, error) {
	transport := &http.Transport{}

	envProxy := os.Getenv("HTTP_PROXY")
	if envProxy != "" {
		proxy, err := url.Parse(envProxy)
		if err != nil {
			return nil, fmt.Errorf("unable to parse HTTP_PROXY as a url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   DefaultTimeout,
		},
		baseURL: baseURL,
		logger:  zerolog.Nop(),
	}, nil
}

func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// SetLogger installs a logger for request/response tracing. The default is a
// no-op logger.
func (c *Client) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// classify maps a transport error or a non-2xx response onto exactly one of
// the sentinel kinds. First match wins: timeout, 401, 404, 5xx, no response,
// unknown. opMessage is shown only when classification lands on ErrUnknown;
// every other kind keeps its fixed template.
func classify(response *http.Response, err error, opMessage string) *APIError {
	switch {
	case isTimeout(err):
		return &APIError{Kind: ErrTimeout, Message: MsgTimeoutError, Cause: err}
	case response != nil && response.StatusCode == http.StatusUnauthorized:
		return &APIError{Kind: ErrUnauthorized, Message: MsgUnauthorized, Status: response.StatusCode, Cause: err}
	case response != nil && response.StatusCode == http.StatusNotFound:
		return &APIError{Kind: ErrNotFound, Message: MsgNotFound, Status: response.StatusCode, Cause: err}
	case response != nil && response.StatusCode >= http.StatusInternalServerError:
		return &APIError{Kind: ErrServer, Message: MsgServerError, Status: response.StatusCode, Cause: err}
	case response == nil:
		return &APIError{Kind: ErrNetwork, Message: MsgNetworkError, Cause: err}
	default:
		message := opMessage
		if message == "" {
			message = MsgUnknownError
		}
		return &APIError{Kind: ErrUnknown, Message: message, Status: response.StatusCode, Cause: err}
	}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// executeRequest performs one JSON round trip against the backend and decodes
// the body into decodeResponse (which may be nil to discard it). Every
// failure comes back as an *APIError.
func (c *Client) executeRequest(ctx context.Context, method, path string, body []byte, opMessage string, decodeResponse interface{}) error {
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &APIError{Kind: ErrUnknown, Message: unknownMessage(opMessage), Cause: err}
	}
	request.Header.Set("Content-Type", "application/json")

	return c.do(request, opMessage, decodeResponse)
}

func (c *Client) do(request *http.Request, opMessage string, decodeResponse interface{}) error {
	method := request.Method
	path := request.URL.Path

	c.logger.Debug().Str("method", method).Str("path", path).Msg("api request")

	response, err := c.httpClient.Do(request)
	if err != nil {
		apiErr := classify(nil, err, opMessage)
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("api request failed")
		return apiErr
	}
	defer response.Body.Close()

	c.logger.Debug().Int("status", response.StatusCode).Str("path", path).Msg("api response")

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return &APIError{Kind: ErrUnknown, Message: unknownMessage(opMessage), Status: response.StatusCode, Cause: err}
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if decodeResponse == nil {
			return nil
		}
		if err := json.Unmarshal(responseBody, decodeResponse); err != nil {
			return &APIError{
				Kind:    ErrUnknown,
				Message: unknownMessage(opMessage),
				Status:  response.StatusCode,
				Cause:   fmt.Errorf("unable to decode response body: %w", err),
			}
		}
		return nil
	}

	var backendErr BackendError
	if err := json.Unmarshal(responseBody, &backendErr); err == nil && backendErr.Message != "" {
		return classify(response, fmt.Errorf("backend: %s", backendErr.Message), opMessage)
	}

	return classify(response, nil, opMessage)
}

func unknownMessage(opMessage string) string {
	if opMessage == "" {
		return MsgUnknownError
	}
	return opMessage
}

// CheckHealth probes backend liveness. Diagnostic tooling calls this before a
// test run; normal operations never gate on it.
func (c *Client) CheckHealth(ctx context.Context) (HealthResponse, error) {
	response := HealthResponse{}
	err := c.executeRequest(ctx, http.MethodGet, EndpointHealth, nil, "Health check failed", &response)
	if err != nil {
		return HealthResponse{}, err
	}

	return response, nil
}

// GetEAMVUApplications lists the applications assigned to the EAMVU
// department. A payload that is not an array (the backend sometimes responds
// with an error object and a 200) yields an empty list, never an error.
func (c *Client) GetEAMVUApplications(ctx context.Context) ([]RawApplication, error) {
	var payload json.RawMessage
	err := c.executeRequest(ctx, http.MethodGet, EndpointEAMVUApplications, nil, "Failed to fetch EAMVU applications", &payload)
	if err != nil {
		return nil, err
	}

	var applications []RawApplication
	if err := json.Unmarshal(payload, &applications); err != nil {
		c.logger.Warn().Str("path", EndpointEAMVUApplications).Msg("applications payload is not an array")
		return []RawApplication{}, nil
	}
	if applications == nil {
		return []RawApplication{}, nil
	}

	return applications, nil
}

// GetApplicationDetails fetches the full form record for one LOS ID.
func (c *Client) GetApplicationDetails(ctx context.Context, losID string) (RawApplicationDetails, error) {
	response := RawApplicationDetails{}
	err := c.executeRequest(ctx, http.MethodGet, EndpointApplicationDetails(losID), nil, "Failed to fetch application details", &response)
	if err != nil {
		return RawApplicationDetails{}, err
	}

	return response, nil
}

// UpdateApplicationStatus submits a status transition. The status value is
// passed through untouched; the backend owns transition validation.
func (c *Client) UpdateApplicationStatus(ctx context.Context, losID, status, applicationType string) (UpdateAck, error) {
	requestJSON, err := json.Marshal(UpdateStatusRequest{
		LosID:           losID,
		Status:          status,
		ApplicationType: applicationType,
	})
	if err != nil {
		return UpdateAck{}, fmt.Errorf("unable to marshal update status request: %w", err)
	}

	response := UpdateAck{}
	err = c.executeRequest(ctx, http.MethodPost, EndpointUpdateStatus, requestJSON, "Failed to update application status", &response)
	if err != nil {
		return UpdateAck{}, err
	}

	return response, nil
}

func (c *Client) UpdateApplicationComment(ctx context.Context, losID, fieldName, commentText string) (UpdateAck, error) {
	requestJSON, err := json.Marshal(UpdateCommentRequest{
		LosID:       losID,
		FieldName:   fieldName,
		CommentText: commentText,
	})
	if err != nil {
		return UpdateAck{}, fmt.Errorf("unable to marshal update comment request: %w", err)
	}

	response := UpdateAck{}
	err = c.executeRequest(ctx, http.MethodPost, EndpointUpdateComment, requestJSON, "Failed to update application comment", &response)
	if err != nil {
		return UpdateAck{}, err
	}

	return response, nil
}

// GetApplicationComments lists officer comments for one application. The
// backend has shipped both a bare array and a {"comments": [...]} wrapper;
// both decode to the same canonical slice here so callers never see the
// ambiguity.
func (c *Client) GetApplicationComments(ctx context.Context, losID string) ([]RawComment, error) {
	var payload json.RawMessage
	err := c.executeRequest(ctx, http.MethodGet, EndpointApplicationComments(losID), nil, "Failed to fetch application comments", &payload)
	if err != nil {
		return nil, err
	}

	var comments []RawComment
	if err := json.Unmarshal(payload, &comments); err == nil {
		if comments == nil {
			return []RawComment{}, nil
		}
		return comments, nil
	}

	var envelope commentsEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Comments != nil {
		return envelope.Comments, nil
	}

	c.logger.Warn().Str("losId", losID).Msg("comments payload has an unexpected shape")
	return []RawComment{}, nil
}

func (c *Client) GetApplicationDocuments(ctx context.Context, losID string) ([]RawDocument, error) {
	var documents []RawDocument
	err := c.executeRequest(ctx, http.MethodGet, EndpointApplicationDocuments(losID), nil, "Failed to fetch application documents", &documents)
	if err != nil {
		return nil, err
	}
	if documents == nil {
		return []RawDocument{}, nil
	}

	return documents, nil
}

// UploadDocument sends one document as multipart/form-data with the losId and
// document parts. There is no chunking, resume, or progress reporting; the
// whole body is sent in a single fire-once request.
func (c *Client) UploadDocument(ctx context.Context, losID, filename string, document io.Reader) (UploadAck, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("losId", losID); err != nil {
		return UploadAck{}, fmt.Errorf("unable to write losId form field: %w", err)
	}
	part, err := writer.CreateFormFile("document", filename)
	if err != nil {
		return UploadAck{}, fmt.Errorf("unable to create document form file: %w", err)
	}
	if _, err := io.Copy(part, document); err != nil {
		return UploadAck{}, fmt.Errorf("unable to copy document into form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return UploadAck{}, fmt.Errorf("unable to finalize multipart body: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+EndpointUploadDocument, body)
	if err != nil {
		return UploadAck{}, &APIError{Kind: ErrUnknown, Message: "Failed to upload document", Cause: err}
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())

	response := UploadAck{}
	if err := c.do(request, "Failed to upload document", &response); err != nil {
		return UploadAck{}, err
	}

	return response, nil
}

// CheckCustomerStatus asks the bank's customer system whether a CNIC belongs
// to a new-to-bank or existing customer.
func (c *Client) CheckCustomerStatus(ctx context.Context, cnic string) (CustomerStatusResponse, error) {
	requestJSON, err := json.Marshal(CustomerStatusRequest{CNIC: cnic})
	if err != nil {
		return CustomerStatusResponse{}, fmt.Errorf("unable to marshal customer status request: %w", err)
	}

	response := CustomerStatusResponse{}
	err = c.executeRequest(ctx, http.MethodPost, EndpointCustomerStatus, requestJSON, "Failed to check customer status", &response)
	if err != nil {
		return CustomerStatusResponse{}, err
	}

	return response, nil
}

func (c *Client) GetCIFDetails(ctx context.Context, consumerID string) (CIFResponse, error) {
	response := CIFResponse{}
	err := c.executeRequest(ctx, http.MethodGet, EndpointCIFDetails(consumerID), nil, "Failed to fetch CIF details", &response)
	if err != nil {
		return CIFResponse{}, err
	}

	return response, nil
}

// GetAgentAssignments lists every agent-to-application assignment. This is a
// diagnostic endpoint, not part of the officer flow.
func (c *Client) GetAgentAssignments(ctx context.Context) ([]AgentAssignment, error) {
	var assignments []AgentAssignment
	err := c.executeRequest(ctx, http.MethodGet, EndpointAgentAssignments, nil, "Failed to fetch agent assignments", &assignments)
	if err != nil {
		return nil, err
	}
	if assignments == nil {
		return []AgentAssignment{}, nil
	}

	return assignments, nil
}

// TestBackendConnection probes the health endpoint and reports the outcome as
// a result value in both branches.
func (c *Client) TestBackendConnection(ctx context.Context) ConnectionTestResult {
	return c.probe(ctx, EndpointHealth, "Backend connection successful", "Backend connection failed")
}

// TestApplicationsEndpoint probes the sample-applications endpoint.
func (c *Client) TestApplicationsEndpoint(ctx context.Context) ConnectionTestResult {
	return c.probe(ctx, EndpointTestApplications, "Applications endpoint working", "Applications endpoint failed")
}

func (c *Client) probe(ctx context.Context, path, okMessage, failMessage string) ConnectionTestResult {
	var payload json.RawMessage
	err := c.executeRequest(ctx, http.MethodGet, path, nil, failMessage, &payload)
	if err != nil {
		result := ConnectionTestResult{Message: failMessage, Err: err.Error()}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			result.Status = apiErr.Status
		}
		return result
	}

	return ConnectionTestResult{Success: true, Status: http.StatusOK, Message: okMessage}
}

// BatchUpdateApplicationStatuses issues one status update per entry
// concurrently and waits for all of them to settle; an individual failure
// never aborts the rest. Results preserve input order.
func (c *Client) BatchUpdateApplicationStatuses(ctx context.Context, updates []StatusUpdate) BatchResult {
	results := make([]BatchItemResult, len(updates))

	var wg sync.WaitGroup
	for i, update := range updates {
		wg.Add(1)
		go func(i int, update StatusUpdate) {
			defer wg.Done()
			ack, err := c.UpdateApplicationStatus(ctx, update.LosID, update.Status, update.ApplicationType)
			results[i] = BatchItemResult{Update: update, Ack: ack, Err: err}
		}(i, update)
	}
	wg.Wait()

	batch := BatchResult{Results: results}
	for _, r := range results {
		if r.Err != nil {
			batch.Failed++
		} else {
			batch.Successful++
		}
	}

	c.logger.Debug().Int("successful", batch.Successful).Int("failed", batch.Failed).Msg("batch update settled")

	return batch
}

// GetApplicationStatistics fetches the application list and aggregates counts
// by status, priority, and type locally.
func (c *Client) GetApplicationStatistics(ctx context.Context) (ApplicationStatistics, error) {
	applications, err := c.GetEAMVUApplications(ctx)
	if err != nil {
		return ApplicationStatistics{}, err
	}

	stats := ApplicationStatistics{
		Total:      len(applications),
		ByStatus:   map[string]int{},
		ByPriority: map[string]int{},
		ByType:     map[string]int{},
	}
	for _, app := range applications {
		status := app.Status
		if status == "" {
			status = "Unknown"
		}
		stats.ByStatus[status]++

		priority := app.Priority
		if priority == "" {
			priority = "Low"
		}
		stats.ByPriority[priority]++

		applicationType := app.ApplicationType
		if applicationType == "" {
			applicationType = "Unknown"
		}
		stats.ByType[applicationType]++
	}

	return stats, nil
}
