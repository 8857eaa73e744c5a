// Package monitoring queries the time-series backend for port usage.
package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// TimeRange echoes the queried window in RFC 3339 form.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Outcome is the tagged result of a range query. Backend failures are not
// surfaced as Go errors: an unreachable or non-200 backend yields an
// error-tagged Outcome that the caller embeds in its response as-is.
type Outcome struct {
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data,omitempty"`
	Query     string          `json:"query,omitempty"`
	TimeRange *TimeRange      `json:"time_range,omitempty"`
	Error     string          `json:"error,omitempty"`
	Response  string          `json:"response,omitempty"`
}

// OK reports whether the query reached the backend and returned data.
func (o Outcome) OK() bool { return o.Status == StatusSuccess }

// QueryRangeRequest describes one range query.
type QueryRangeRequest struct {
	SwitchNumber string
	PortNumber   string
	Start        time.Time
	End          time.Time
	Step         string
}

// Selector builds the equality selector for a switch/port pair.
func Selector(switchNumber, portNumber string) string {
	return fmt.Sprintf("switch_number=%q,port_number=%q", switchNumber, portNumber)
}

// Client calls the backend's range-query endpoint.
type Client struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewClient builds a monitoring client against the given base URL.
func NewClient(baseURL string, client *http.Client, log *zap.Logger) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     log.Named("monitoring.client"),
	}
}

// QueryRange issues GET {base}/api/v1/query_range with the selector, epoch
// second bounds and step. One attempt, no retries.
func (c *Client) QueryRange(ctx context.Context, req QueryRangeRequest) Outcome {
	query := Selector(req.SwitchNumber, req.PortNumber)

	params := url.Values{}
	params.Set("query", query)
	params.Set("start", strconv.FormatInt(req.Start.Unix(), 10))
	params.Set("end", strconv.FormatInt(req.End.Unix(), 10))
	params.Set("step", req.Step)

	endpoint := c.baseURL + "/api/v1/query_range?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return c.failure(query, fmt.Sprintf("Failed to query monitoring system: %v", err), "")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return c.failure(query, fmt.Sprintf("Failed to query monitoring system: %v", err), "")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.failure(query, fmt.Sprintf("Failed to read monitoring response: %v", err), "")
	}

	if resp.StatusCode != http.StatusOK {
		return c.failure(query,
			fmt.Sprintf("Monitoring API returned status %d", resp.StatusCode),
			string(body),
		)
	}

	return Outcome{
		Status: StatusSuccess,
		Data:   json.RawMessage(body),
		Query:  query,
		TimeRange: &TimeRange{
			Start: req.Start.Format(time.RFC3339),
			End:   req.End.Format(time.RFC3339),
		},
	}
}

func (c *Client) failure(query, message, body string) Outcome {
	c.log.Warn("monitoring query failed",
		zap.String("query", query),
		zap.String("error", message),
	)
	return Outcome{
		Status:   StatusError,
		Error:    message,
		Response: body,
	}
}
