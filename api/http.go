package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const authScheme = "DiadocAuth"

// RequestIDHeader carries the server-side request id. It is logged with every
// completed call.
const RequestIDHeader = "X-Request-Id"

// Config configures the HTTP client.
type Config struct {
	// BaseURL of the API, e.g. https://diadoc-api.kontur.ru.
	BaseURL string
	// ClientID is the integrator key sent with every request.
	ClientID string
	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration
}

type httpClient struct {
	client   *resty.Client
	clientID string

	logger zerolog.Logger
}

// NewHTTPClient constructs the HTTP implementation of [Client]. The base URL
// is normalised (a missing scheme defaults to https, trailing slashes are
// dropped). Returns an error when the URL or the client id is missing.
func NewHTTPClient(cfg Config, logger zerolog.Logger) (Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if strings.TrimSpace(cfg.ClientID) == "" {
		return nil, fmt.Errorf("client id is required")
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpClient{
		client:   client,
		clientID: strings.TrimSpace(cfg.ClientID),
		logger:   logger.With().Str("component", "diadoc-api").Logger(),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authorization renders the DiadocAuth header value. token may be empty for
// calls that only need the client id.
func (h *httpClient) authorization(token string) string {
	value := authScheme + " ddauth_api_client_id=" + h.clientID
	if token = strings.TrimSpace(token); token != "" {
		value += ", ddauth_token=" + token
	}
	return value
}

func (h *httpClient) request(ctx context.Context, token string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", h.authorization(token))
}

// execute sends req and maps the outcome. Transport failures are wrapped with
// op, non-2xx statuses become *ResponseError.
func (h *httpClient) execute(op string, req *resty.Request, method, endpoint string) (*resty.Response, error) {
	resp, err := req.Execute(method, endpoint)
	if err != nil {
		h.logger.Err(err).
			Str("op", op).
			Str("method", method).
			Str("endpoint", endpoint).
			Msg("request failed")
		return nil, fmt.Errorf("%s request: %w", op, err)
	}

	h.logger.Debug().
		Str("op", op).
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Str("request_id", resp.Header().Get(RequestIDHeader)).
		Dur("duration", resp.Time()).
		Msg("request completed")

	if err = mapHTTPError(method, endpoint, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
