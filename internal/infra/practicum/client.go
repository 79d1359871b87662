// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// EndpointError reports a failure to obtain an answer from the homework
// statuses endpoint: either the transport failed or the service replied
// with a non-200 status.
type EndpointError struct {
	Endpoint   string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *EndpointError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error %q occurred when requesting the API endpoint: %s", e.Err, e.Endpoint)
	}
	return fmt.Sprintf("endpoint %s unavailable, status code: %d", e.Endpoint, e.StatusCode)
}

func (e *EndpointError) Unwrap() error { return e.Err }

// Client queries the Practicum homework statuses API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewClient(endpoint, token string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// HomeworkStatuses requests status updates starting from the fromDate
// cursor. The body is decoded with json.Number so the validator can
// check that the reported cursor is an integer; decode failures surface
// as a generic error, shape checks belong to the domain validator.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error building homework statuses request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	query := url.Values{}
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &EndpointError{Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &EndpointError{Endpoint: c.endpoint, StatusCode: resp.StatusCode}
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	var body any
	if err := decoder.Decode(&body); err != nil {
		return nil, fmt.Errorf("error decoding homework statuses response: %w", err)
	}
	return body, nil
}
