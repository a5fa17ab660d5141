// Package routing implements the RouteClient port against an OSRM-style
// table service. The solver behind the service is a black box; this adapter
// only fetches pairwise travel matrices and validates their shape.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/routing"
	"delivery/internal/pkg/errs"
)

const (
	defaultTimeout = 10 * time.Second
	maxAttempts    = 4
	initialBackoff = 200 * time.Millisecond
)

// Client calls the external route service's table endpoint.
// Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a route service client. The timeout bounds every
// request so a stuck route service surfaces as SolverUnavailableError
// instead of a hang; zero means the default of 10 seconds.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("routing.baseURL")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.With("component", "route_client"),
	}, nil
}

// tableResponse mirrors the table endpoint's JSON payload. Durations and
// Distances use pointers so a null cell (unroutable pair) is detectable.
type tableResponse struct {
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	Durations [][]*float64 `json:"durations"`
	Distances [][]*float64 `json:"distances"`
}

// TravelMatrix returns square duration and distance matrices aligned with
// the input point order. Any transport failure, timeout or malformed
// response is a SolverUnavailableError; callers must not receive a
// partial matrix.
func (c *Client) TravelMatrix(
	ctx context.Context,
	points []kernel.GeoPoint,
	vehicle routing.VehicleProfile,
	mode routing.SolverMode,
) (routing.Matrix, error) {
	if len(points) == 0 {
		return routing.Matrix{}, errs.NewValueIsRequiredError("points")
	}

	endpoint := c.tableURL(points, vehicle, mode)

	resp, err := c.doWithRetry(ctx, endpoint)
	if err != nil {
		return routing.Matrix{}, errs.NewSolverUnavailableError(err)
	}
	defer resp.Body.Close()

	var table tableResponse
	if err = json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return routing.Matrix{}, errs.NewSolverUnavailableError(
			fmt.Errorf("decode table response: %w", err))
	}

	// A non-Ok code with matrices present is tolerated; the service uses
	// it for advisory conditions like snapped coordinates.
	if table.Code != "Ok" {
		c.logger.Warn("route service returned non-ok code",
			"code", table.Code, "message", table.Message)
		if table.Durations == nil || table.Distances == nil {
			return routing.Matrix{}, errs.NewSolverUnavailableError(
				fmt.Errorf("route service code %s: %s", table.Code, table.Message))
		}
	}

	matrix, err := toMatrix(table)
	if err != nil {
		return routing.Matrix{}, err
	}

	if err = matrix.Validate(len(points)); err != nil {
		return routing.Matrix{}, err
	}

	return matrix, nil
}

// tableURL builds the table request. Coordinates follow the lon,lat pair
// convention of the route service.
func (c *Client) tableURL(
	points []kernel.GeoPoint,
	vehicle routing.VehicleProfile,
	mode routing.SolverMode,
) string {
	coords := make([]string, 0, len(points))
	for _, p := range points {
		coords = append(coords, fmt.Sprintf("%f,%f", p.Longitude(), p.Latitude()))
	}

	query := url.Values{}
	query.Set("annotations", "duration,distance")
	query.Set("mode", string(mode))

	return fmt.Sprintf("%s/table/v1/%s/%s?%s",
		c.baseURL, string(vehicle), strings.Join(coords, ";"), query.Encode())
}

// httpStatusError carries a non-2xx response for retry classification.
type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("route service status %d: %s", e.Code, e.Body)
}

// doWithRetry retries transient failures (network errors, 429 and 5xx
// responses) using exponential backoff while respecting context
// cancellation.
func (c *Client) doWithRetry(ctx context.Context, endpoint string) (*http.Response, error) {
	backoff := initialBackoff

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isRetryable(err) || attempt == maxAttempts {
			return nil, lastErr
		}

		c.logger.Warn("route service request failed, retrying",
			"attempt", attempt, "error", err)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

func isRetryable(err error) bool {
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// toMatrix converts the wire payload to the domain matrix, rejecting null
// cells so the planner never sees a fabricated metric.
func toMatrix(table tableResponse) (routing.Matrix, error) {
	durations, err := denseRows(table.Durations, "duration")
	if err != nil {
		return routing.Matrix{}, err
	}

	distances, err := denseRows(table.Distances, "distance")
	if err != nil {
		return routing.Matrix{}, err
	}

	return routing.Matrix{Durations: durations, Distances: distances}, nil
}

func denseRows(rows [][]*float64, name string) ([][]float64, error) {
	dense := make([][]float64, 0, len(rows))
	for i, row := range rows {
		values := make([]float64, 0, len(row))
		for j, cell := range row {
			if cell == nil {
				return nil, errs.NewSolverUnavailableError(
					fmt.Errorf("%s matrix cell [%d][%d] is null", name, i, j))
			}
			values = append(values, *cell)
		}
		dense = append(dense, values)
	}
	return dense, nil
}
