// Package backend is the REST adapter for the external commerce service. It
// owns the outgoing-request hooks (bearer credential attachment, multipart
// content-type handling) and the global incoming hook that ends the session
// whenever the backend rejects a credential.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/api/metrics"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Config captures the settings for the backend client.
type Config struct {
	// BaseURL is the root of the commerce API, e.g. http://localhost:8080/api.
	// Treated as an opaque string.
	BaseURL string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Client is the single HTTP doorway to the commerce backend. All typed
// endpoint groups (auth, catalog, orders) are methods on it.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

var (
	_ ports.AuthAPI    = (*Client)(nil)
	_ ports.CatalogAPI = (*Client)(nil)
	_ ports.OrderAPI   = (*Client)(nil)
)

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: strings.TrimSuffix(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: bearerTransport{next: http.DefaultTransport},
		},
		log: cfg.Logger,
	}
}

// --- Request credentials through context ---

type credentialsKey struct{}

// WithCredentials attaches the session's credentials to the request context
// so the transport can add the bearer header and the 401 hook can invalidate
// them.
func WithCredentials(ctx context.Context, rc ports.RequestCredentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, rc)
}

func credentialsFrom(ctx context.Context) ports.RequestCredentials {
	rc, _ := ctx.Value(credentialsKey{}).(ports.RequestCredentials)
	return rc
}

// bearerTransport attaches the bearer credential to every outgoing request
// when the session holds one.
type bearerTransport struct {
	next http.RoundTripper
}

func (t bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if rc := credentialsFrom(req.Context()); rc != nil {
		if cred := rc.Credential(); cred != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+cred)
		}
	}
	return t.next.RoundTrip(req)
}

// --- Request builders ---

func (c *Client) newJSONRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// newMultipartRequest builds a multipart form request. Any preset
// content-type is discarded so the multipart writer's own header, with its
// generated boundary, is the one that goes out.
func (c *Client) newMultipartRequest(ctx context.Context, method, path string, fields map[string]string, upload *ports.Upload) (*http.Request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	if upload != nil {
		part, err := w.CreateFormFile("image", upload.FileName)
		if err != nil {
			return nil, fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, upload.Content); err != nil {
			return nil, fmt.Errorf("copy upload: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Del("Content-Type")
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// --- Execution and error mapping ---

// errorEnvelope covers the error shapes the backend is known to return.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorEnvelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// roundTrip executes the request and maps the response. On 401 the stored
// credential is invalidated and the session ends, regardless of which call
// triggered it — except for the auth endpoints themselves, where a 401 is
// just a rejected login and must not end the session.
func (c *Client) roundTrip(op string, req *http.Request, out any, authExempt bool) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("%w: %s: %v", domain.ErrBackend, op, err)
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %s: decode response: %v", domain.ErrBackend, op, err)
		}
		return nil
	}

	var envelope errorEnvelope
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&envelope)

	switch {
	case resp.StatusCode == http.StatusUnauthorized && authExempt:
		return domain.ErrInvalidCredentials
	case resp.StatusCode == http.StatusUnauthorized:
		if rc := credentialsFrom(req.Context()); rc != nil {
			rc.Invalidate(req.Context())
			metrics.SessionsEndedTotal.WithLabelValues("expired").Inc()
		}
		c.log.Warn().Str("op", op).Msg("credential rejected by backend")
		return domain.ErrAuthExpired
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < 500:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, errText(envelope, resp.StatusCode))
	default:
		return fmt.Errorf("%w: %s", domain.ErrBackend, errText(envelope, resp.StatusCode))
	}
}

func errText(envelope errorEnvelope, status int) string {
	if msg := envelope.text(); msg != "" {
		return msg
	}
	return http.StatusText(status)
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	req, err := c.newJSONRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.roundTrip(op, req, out, false)
}
