package wyscout

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/scouting-board/internal/domain/player"
	"github.com/riskibarqy/scouting-board/internal/platform/logging"
	"github.com/riskibarqy/scouting-board/internal/platform/resilience"
	"github.com/riskibarqy/scouting-board/internal/usecase"
)

const (
	defaultBaseURL     = "https://apirest.wyscout.com"
	defaultRatePerSec  = 8
	maxResponseBytes   = 2 << 20
	playerDetailsQuery = "currentTeam"
)

var errWyscoutTransient = crerr.New("wyscout transient failure")

type ClientConfig struct {
	HTTPClient        *http.Client
	BaseURL           string
	Username          string
	Password          string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerSecond float64
	Burst             int
	Logger            *logging.Logger
	CircuitBreaker    resilience.CircuitBreakerConfig
}

// Client reads player profiles from the Wyscout REST API.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	username     string
	password     string
	maxRetries   int
	limiter      *rate.Limiter
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       resilience.SingleFlight
	retryBackoff time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRatePerSec
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = int(rps)
		if burst < 1 {
			burst = 1
		}
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		username:     strings.TrimSpace(cfg.Username),
		password:     cfg.Password,
		maxRetries:   max(cfg.MaxRetries, 0),
		limiter:      rate.NewLimiter(rate.Limit(rps), burst),
		logger:       logger,
		breaker:      resilience.NewNamedCircuitBreaker("wyscout", cfg.CircuitBreaker, resilience.LogTransitions(logger)),
		retryBackoff: 500 * time.Millisecond,
	}
}

// GetPlayerDetails returns player.ErrDetailsNotFound when the provider does
// not know the id.
func (c *Client) GetPlayerDetails(ctx context.Context, providerID string) (player.Details, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return player.Details{}, fmt.Errorf("%w: provider id is required", usecase.ErrInvalidInput)
	}

	path := "/v3/players/" + url.PathEscape(providerID)
	var payload playerPayload
	if err := c.doJSON(ctx, path, url.Values{"details": {playerDetailsQuery}}, &payload); err != nil {
		return player.Details{}, crerr.Wrapf(err, "fetch player details provider_id=%s", providerID)
	}

	return payload.toDetails(providerID), nil
}

// doJSON admits one request per URL through the breaker: callers that join an
// in-flight request share its outcome and never take a half-open slot.
func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		if err := c.breaker.Allow(); err != nil {
			return nil, err
		}
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if crerr.Is(reqErr, errWyscoutTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return raw, reqErr
	})
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "wyscout circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: player data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		if crerr.Is(err, errWyscoutTransient) {
			return fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode provider payload")
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, crerr.Wrap(err, "wait for rate limiter")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("Accept", "application/json")
		req.SetBasicAuth(c.username, c.password)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = crerr.Wrapf(errWyscoutTransient, "send request: %v", err)
		} else {
			raw, readErr := readBody(resp)
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errWyscoutTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, crerr.Wrapf(player.ErrDetailsNotFound, "provider status=%d", resp.StatusCode)
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errWyscoutTransient, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.Wrap(errWyscoutTransient, "provider request failed")
	}
	c.logger.WarnContext(ctx, "wyscout request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.B...), nil
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
