// Package remote implements the record store contract against the hosted record
// API, normalizing its response envelopes.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hospital-registry/config"
	"hospital-registry/internal/domain/entity"
	domainRepo "hospital-registry/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const defaultTimeout = 15 * time.Second

// Client talks to the remote record store over HTTP JSON
type Client struct {
	baseURL    string
	projectID  string
	publicKey  string
	httpClient *http.Client
	log        *logrus.Logger
}

// NewClient creates a client for the configured project
func NewClient(cfg config.RemoteConfig, log *logrus.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		projectID: cfg.ProjectID,
		publicKey: cfg.PublicKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchRecords reads the records of table matching req
func (c *Client) FetchRecords(ctx context.Context, table string, req *FetchRequest) (*Response, error) {
	return c.do(ctx, http.MethodPost, tablePath(table, "records", "query"), req)
}

// GetRecordByID reads a single record
func (c *Client) GetRecordByID(ctx context.Context, table string, id int, req *FetchRequest) (*Response, error) {
	return c.do(ctx, http.MethodPost, tablePath(table, "records", strconv.Itoa(id), "query"), req)
}

// CreateRecords inserts records and reports a result per record
func (c *Client) CreateRecords(ctx context.Context, table string, records []entity.Fields) (*Response, error) {
	return c.do(ctx, http.MethodPost, tablePath(table, "records"), &WriteRequest{Records: records})
}

// UpdateRecords patches records; each record must carry its Id
func (c *Client) UpdateRecords(ctx context.Context, table string, records []entity.Fields) (*Response, error) {
	return c.do(ctx, http.MethodPatch, tablePath(table, "records"), &WriteRequest{Records: records})
}

// DeleteRecords removes records by id
func (c *Client) DeleteRecords(ctx context.Context, table string, ids []int) (*Response, error) {
	return c.do(ctx, http.MethodDelete, tablePath(table, "records"), &DeleteRequest{RecordIDs: ids})
}

// do sends one request and normalizes the envelope. Network failures, non-JSON bodies
// and a top-level success:false are all reported as ErrTransportUnavailable; per-record
// results are left for the caller to summarize.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	if c == nil || c.baseURL == "" {
		return nil, fmt.Errorf("%w: remote client not initialized", domainRepo.ErrTransportUnavailable)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("remote: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.projectID != "" {
		req.Header.Set("X-Project-Id", c.projectID)
	}
	if c.publicKey != "" {
		req.Header.Set("X-Public-Key", c.publicKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrTransportUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domainRepo.ErrTransportUnavailable, err)
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: status %d: invalid response body", domainRepo.ErrTransportUnavailable, resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusBadRequest || !out.Success {
		message := out.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		c.log.Warnf("Remote %s %s failed: %s", method, path, message)
		return nil, fmt.Errorf("%w: %s", domainRepo.ErrTransportUnavailable, message)
	}

	return &out, nil
}

func tablePath(table string, parts ...string) string {
	escaped := make([]string, 0, len(parts)+5)
	escaped = append(escaped, "", "api", "v1", "tables", url.PathEscape(table))
	escaped = append(escaped, parts...)
	return strings.Join(escaped, "/")
}
