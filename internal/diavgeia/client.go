package diavgeia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const searchPath = "/search/advanced"

var tracer = otel.Tracer("diavgeia")

var ErrDecode = errors.New("undecodable search response")

// APIError represents a non-2xx HTTP response.
type APIError struct {
	StatusCode int
	Body       string // first 512 bytes
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

type ClientOptions struct {
	BaseURL   string
	UserAgent string
	// Timeout bounds a single request. Zero means no deadline.
	Timeout time.Duration
}

// Client talks to the open data search API. It never retries.
type Client struct {
	http *resty.Client
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.SetHeader("Accept", "application/json")
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	client.SetLogger(restyLogger{})
	client.OnAfterResponse(logResponse)

	return &Client{http: client}
}

// Search fetches one page of decisions matching q.
func (c *Client) Search(ctx context.Context, q string, page, size int) (*SearchResult, error) {
	ctx, span := tracer.Start(ctx, "client:Search", trace.WithAttributes(
		attribute.String("diavgeia.query", q),
		attribute.Int("diavgeia.page", page),
		attribute.Int("diavgeia.size", size),
	))
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":    q,
			"page": strconv.Itoa(page),
			"size": strconv.Itoa(size),
		}).
		Get(searchPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, fmt.Errorf("search page %d: %w", page, err)
	}

	if !res.IsSuccess() {
		body := res.String()
		if len(body) > 512 {
			body = body[:512]
		}
		apiErr := &APIError{StatusCode: res.StatusCode(), Body: body}
		span.SetStatus(codes.Error, apiErr.Error())
		return nil, fmt.Errorf("search page %d: %w", page, apiErr)
	}

	var result SearchResult
	if err := json.Unmarshal(res.Body(), &result); err != nil {
		span.SetStatus(codes.Error, "failed to parse json response")
		return nil, fmt.Errorf("search page %d: %w: %v", page, ErrDecode, err)
	}

	span.SetAttributes(
		attribute.Int("diavgeia.actual_size", result.Info.ActualSize),
		attribute.Int("diavgeia.total", result.Info.Total),
	)
	return &result, nil
}

func logResponse(_ *resty.Client, res *resty.Response) error {
	slog.DebugContext(
		res.Request.Context(), "search response",
		"url", res.Request.URL,
		"status", res.StatusCode(),
		"elapsed", res.Time(),
	)
	return nil
}

// restyLogger routes resty's own diagnostics through slog.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...any) {
	slog.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (restyLogger) Warnf(format string, v ...any) {
	slog.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (restyLogger) Debugf(format string, v ...any) {
	slog.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
