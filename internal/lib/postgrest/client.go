// Package postgrest provides a small PostgREST (Supabase REST) client.
//
// It covers the subset the API needs: select with equality filters and
// ordering, single-object reads, insert/update returning representation,
// and delete with an exact affected-row count. Every call is exactly one
// HTTP request; nothing is retried.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// CountExact asks PostgREST to compute an exact row count.
const CountExact = "exact"

const (
	mediaTypeJSON   = "application/json"
	mediaTypeObject = "application/vnd.pgrst.object+json"
)

// Client is a PostgREST API client. It is safe for concurrent use and
// never mutated after New returns.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config holds client configuration.
type Config struct {
	// URL is the project URL, e.g. https://xyz.supabase.co.
	URL string

	// APIKey is sent as both the apikey header and the bearer token.
	APIKey string

	// HTTPClient overrides the transport. Nil means a plain http.Client
	// without a timeout.
	HTTPClient *http.Client
}

// New creates a new PostgREST client.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("APIKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/") + "/rest/v1",
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// HTTPClient returns the underlying transport client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// From starts a query builder for a table.
func (c *Client) From(table string) *QueryBuilder {
	return &QueryBuilder{
		client: c,
		table:  table,
	}
}

// QueryBuilder builds one PostgREST request. Builders are not reusable
// across goroutines; start a new one with From for every query.
type QueryBuilder struct {
	client  *Client
	table   string
	columns string
	filters []filter
	orders  []string
	limit   int
	single  bool
	count   string
}

type filter struct {
	column string
	expr   string
}

// Select specifies columns to select (and to return from writes).
func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.columns = columns
	return q
}

// Eq adds an equality filter.
func (q *QueryBuilder) Eq(column string, value any) *QueryBuilder {
	q.filters = append(q.filters, filter{column: column, expr: fmt.Sprintf("eq.%v", value)})
	return q
}

// Order adds an ORDER BY clause.
func (q *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	dir := "asc"
	if !ascending {
		dir = "desc"
	}
	q.orders = append(q.orders, column+"."+dir)
	return q
}

// Limit sets the LIMIT.
func (q *QueryBuilder) Limit(n int) *QueryBuilder {
	q.limit = n
	return q
}

// Single expects exactly one row. PostgREST answers 406 with code
// PGRST116 when zero (or several) rows match.
func (q *QueryBuilder) Single() *QueryBuilder {
	q.single = true
	return q
}

// Count requests a row count (CountExact) in the Content-Range header.
func (q *QueryBuilder) Count(countType string) *QueryBuilder {
	q.count = countType
	return q
}

// Execute executes a SELECT query.
func (q *QueryBuilder) Execute(ctx context.Context) (*Response, error) {
	params := q.params()
	if q.limit > 0 {
		params.Set("limit", strconv.Itoa(q.limit))
	}
	if len(q.orders) > 0 {
		params.Set("order", strings.Join(q.orders, ","))
	}

	req, err := q.newRequest(ctx, http.MethodGet, params, nil)
	if err != nil {
		return nil, err
	}
	if q.count != "" {
		req.Header.Set("Prefer", "count="+q.count)
	}

	return q.client.do(req)
}

// ExecuteInsert executes an INSERT and returns the inserted rows.
func (q *QueryBuilder) ExecuteInsert(ctx context.Context, data any) (*Response, error) {
	req, err := q.newRequest(ctx, http.MethodPost, q.params(), data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")

	return q.client.do(req)
}

// ExecuteUpdate executes a PATCH on the filtered rows and returns them.
// No filters means every row; callers must filter.
func (q *QueryBuilder) ExecuteUpdate(ctx context.Context, data any) (*Response, error) {
	req, err := q.newRequest(ctx, http.MethodPatch, q.params(), data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")

	return q.client.do(req)
}

// ExecuteDelete executes a DELETE on the filtered rows. With Count set,
// Response.Count holds the number of deleted rows.
func (q *QueryBuilder) ExecuteDelete(ctx context.Context) (*Response, error) {
	req, err := q.newRequest(ctx, http.MethodDelete, q.params(), nil)
	if err != nil {
		return nil, err
	}

	prefer := []string{"return=minimal"}
	if q.count != "" {
		prefer = append(prefer, "count="+q.count)
	}
	req.Header.Set("Prefer", strings.Join(prefer, ","))

	return q.client.do(req)
}

func (q *QueryBuilder) params() url.Values {
	params := url.Values{}
	if q.columns != "" {
		params.Set("select", q.columns)
	}
	for _, f := range q.filters {
		params.Add(f.column, f.expr)
	}
	return params
}

func (q *QueryBuilder) newRequest(ctx context.Context, method string, params url.Values, data any) (*http.Request, error) {
	if q.table == "" {
		return nil, fmt.Errorf("table is required")
	}

	reqURL := q.client.baseURL + "/" + url.PathEscape(q.table)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var body io.Reader
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("marshal data: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q.client.setHeaders(req)
	if data != nil {
		req.Header.Set("Content-Type", mediaTypeJSON)
	}
	if q.single {
		req.Header.Set("Accept", mediaTypeObject)
	}

	return req, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", mediaTypeJSON)
}

func (c *Client) do(req *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newError(resp.StatusCode, body)
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
	}
	if n, ok := parseContentRange(resp.Header.Get("Content-Range")); ok {
		out.Count = &n
	}

	return out, nil
}

// parseContentRange extracts the total from "0-24/3573" or "*/0".
// An unknown total ("*") reports false.
func parseContentRange(v string) (int64, bool) {
	i := strings.LastIndexByte(v, '/')
	if i < 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(v[i+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
