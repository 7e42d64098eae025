package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/goccy/go-json"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TokenSource supplies bearer tokens for bank API calls.
type TokenSource interface {
	GetAccessToken(ctx context.Context) (string, error)
	InvalidateToken()
}

type Request struct {
	Method string
	Path   string // Relative to the client base URL.
	Query  url.Values
	Body   any // JSON encoded when not nil.
	Accept string
	Header http.Header
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// RestClient executes authenticated JSON requests against one bank API base URL.
type RestClient struct {
	name    string
	baseURL string
	client  *http.Client
	tokens  TokenSource
	header  http.Header
}

func NewRestClient(name, baseURL string, client *http.Client, tokens TokenSource, header http.Header) *RestClient {
	if header == nil {
		header = http.Header{}
	}
	return &RestClient{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		tokens:  tokens,
		header:  header,
	}
}

func (r *RestClient) BaseURL() string {
	return r.baseURL
}

// Execute sends req and decodes a JSON response into result (when not nil).
func (r *RestClient) Execute(ctx context.Context, req Request, result any) error {
	resp, err := r.Do(ctx, req)
	if err != nil {
		return err
	}
	if result == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, result); err != nil {
		return fmt.Errorf("%s: decode response of %s %s: %w", r.name, req.Method, req.Path, err)
	}
	return nil
}

// Do sends req with the current bearer token. Non-2xx responses are turned into model errors.
func (r *RestClient) Do(ctx context.Context, req Request) (Response, error) {
	ctx, span := otlp_util.Start(ctx, "sicoob/transport.RestClient.Do",
		trace.WithAttributes(
			attribute.String("client", r.name),
			attribute.String("method", req.Method),
			attribute.String("path", req.Path),
		),
	)
	defer span.End()

	token, err := r.tokens.GetAccessToken(ctx)
	if err != nil {
		return Response{}, err
	}

	var body io.Reader
	var payload []byte
	if req.Body != nil {
		payload, err = json.Marshal(req.Body)
		if err != nil {
			return Response{}, fmt.Errorf("%s: encode request body: %w", r.name, err)
		}
		body = bytes.NewReader(payload)
	}

	fullURL := r.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return Response{}, fmt.Errorf("%s: create http request: %w", r.name, err)
	}
	for k, values := range r.header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}
	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	accept := req.Accept
	if accept == "" {
		accept = "application/json"
	}
	httpReq.Header.Set("Accept", accept)

	logrus.Debugf("%s: %s %s (Authorization: Bearer [REDACTED], %d bytes)", r.name, req.Method, fullURL, len(payload))

	start := time.Now()
	httpResp, err := r.client.Do(httpReq)
	if err != nil {
		logrus.Warnf("%s: %s %s failed: %v", r.name, req.Method, req.Path, err)
		return Response{}, fmt.Errorf("%s: send http request: %w", r.name, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%s: read response body: %w", r.name, err)
	}
	span.SetAttributes(attribute.Int("status", httpResp.StatusCode))
	logrus.Debugf("%s: %s %s returned %d in %s", r.name, req.Method, req.Path, httpResp.StatusCode, time.Since(start))

	resp := Response{Status: httpResp.StatusCode, Header: httpResp.Header, Body: respBody}
	if httpResp.StatusCode/100 == 2 {
		return resp, nil
	}
	return resp, r.statusError(req, resp)
}

func (r *RestClient) statusError(req Request, resp Response) error {
	status := resp.Status
	switch {
	case status >= 500:
		logrus.Errorf("%s: %s %s returned %d: %s", r.name, req.Method, req.Path, status, string(resp.Body))
		return &model.ServerError{Status: status, Body: resp.Body}
	case status == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		logrus.Warnf("%s: rate limited on %s %s, retry after %q", r.name, req.Method, req.Path, resp.Header.Get("Retry-After"))
		return &model.RateLimitError{RetryAfter: retryAfter}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		r.tokens.InvalidateToken()
		logrus.Warnf("%s: %s %s returned %d, cached token invalidated", r.name, req.Method, req.Path, status)
		return &model.RemoteError{Status: status, Body: resp.Body, Err: model.ErrRemoteUnauthorized}
	case status == http.StatusNotFound:
		return &model.RemoteError{Status: status, Body: resp.Body, Err: model.ErrRemoteNotFound}
	default:
		logrus.Warnf("%s: %s %s returned %d: %s", r.name, req.Method, req.Path, status, string(resp.Body))
		return &model.RemoteError{Status: status, Body: resp.Body, Err: model.ErrRemoteValidation}
	}
}
