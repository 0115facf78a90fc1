package cricapi

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/cricktrackr/internal/platform/logging"
	"github.com/riskibarqy/cricktrackr/internal/platform/metrics"
	"github.com/riskibarqy/cricktrackr/internal/platform/resilience"
	"github.com/riskibarqy/cricktrackr/internal/usecase"
)

const (
	defaultBaseURL       = "https://api.cricapi.com/v1"
	defaultRatePerSecond = 5.0
	maxResponseBytes     = 6 << 20

	endpointCurrentMatches = "currentMatches"
	endpointPlayerInfo     = "players_info"
	endpointPlayers        = "players"

	outcomeSuccess     = "success"
	outcomeFailure     = "failure"
	outcomeCircuitOpen = "circuit_open"
	outcomeNoKey       = "no_key"
)

var apiKeyParamRegex = regexp.MustCompile(`apikey=[^&\s"']+`)
var errCricAPITransient = crerr.New("cricapi transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RatePerSecond  float64
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads matches and players from CricAPI. Calls are never coalesced:
// each caller issues its own request.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	limiter        *rate.Limiter
	breaker        *resilience.Breaker
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
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	rps := cfg.RatePerSecond
	if rps <= 0 {
		rps = defaultRatePerSecond
	}
	breaker := resilience.NewBreaker(cfg.CircuitBreaker,
		resilience.WithFailurePredicate(isCircuitFailure),
		resilience.WithStateHook(func(from, to resilience.State) {
			logger.Warn("cricapi circuit breaker state changed", "from", from.String(), "to", to.String())
		}),
	)

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		breaker:    breaker,
	}
}

func (c *Client) FetchCurrentMatches(ctx context.Context) ([]usecase.ExternalMatch, error) {
	data, err := c.doEnvelope(ctx, endpointCurrentMatches, map[string]string{"offset": "0"})
	if err != nil {
		return nil, err
	}

	var rawItems []json.RawMessage
	if err := sonic.Unmarshal(data, &rawItems); err != nil {
		return nil, fmt.Errorf("%w: currentMatches data is not a list: %v", usecase.ErrProviderUnavailable, err)
	}

	out := make([]usecase.ExternalMatch, 0, len(rawItems))
	for i, raw := range rawItems {
		item, err := decodeMatch(raw)
		if err != nil {
			c.logger.WarnContext(ctx, "drop undecodable cricapi match", "index", i, "error", err)
			metrics.MalformedItemsTotal.WithLabelValues(metrics.KindMatch).Inc()
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (c *Client) FetchPlayerInfo(ctx context.Context, playerID string) (usecase.ExternalPlayer, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return usecase.ExternalPlayer{}, fmt.Errorf("%w: player id is required", usecase.ErrInvalidInput)
	}

	data, err := c.doEnvelope(ctx, endpointPlayerInfo, map[string]string{"id": playerID})
	if err != nil {
		return usecase.ExternalPlayer{}, err
	}

	item, err := decodePlayer(data)
	if err != nil {
		metrics.MalformedItemsTotal.WithLabelValues(metrics.KindPlayer).Inc()
		return usecase.ExternalPlayer{}, fmt.Errorf("%w: player=%s: %v", usecase.ErrMalformedItem, playerID, err)
	}
	return item, nil
}

func (c *Client) FetchPlayers(ctx context.Context, offset int) ([]usecase.ExternalPlayerSummary, error) {
	data, err := c.doEnvelope(ctx, endpointPlayers, map[string]string{"offset": strconv.Itoa(max(offset, 0))})
	if err != nil {
		return nil, err
	}

	var rawItems []json.RawMessage
	if err := sonic.Unmarshal(data, &rawItems); err != nil {
		return nil, fmt.Errorf("%w: players data is not a list: %v", usecase.ErrProviderUnavailable, err)
	}

	out := make([]usecase.ExternalPlayerSummary, 0, len(rawItems))
	for _, raw := range rawItems {
		var item usecase.ExternalPlayerSummary
		if err := sonic.Unmarshal(raw, &item); err != nil || strings.TrimSpace(item.ID) == "" {
			metrics.MalformedItemsTotal.WithLabelValues(metrics.KindPlayer).Inc()
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// doEnvelope calls one endpoint and returns the raw "data" member of a
// successful envelope.
func (c *Client) doEnvelope(ctx context.Context, endpoint string, query map[string]string) (json.RawMessage, error) {
	start := time.Now()
	defer func() {
		metrics.ProviderRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	if c.apiKey == "" {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, outcomeNoKey).Inc()
		return nil, fmt.Errorf("%w: cricapi key is not configured", usecase.ErrProviderUnavailable)
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("apikey", c.apiKey)
	fullURL := c.baseURL + "/" + endpoint + "?" + values.Encode()

	var raw []byte
	err := c.breaker.Execute(func() error {
		var reqErr error
		raw, reqErr = c.executeRequest(ctx, fullURL)
		return reqErr
	})
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "cricapi circuit breaker rejected request", "endpoint", endpoint, "state", c.breaker.State().String())
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, outcomeCircuitOpen).Inc()
		return nil, fmt.Errorf("%w: cricket data provider is temporarily unavailable", usecase.ErrProviderUnavailable)
	}
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, outcomeFailure).Inc()
		return nil, fmt.Errorf("%w: %s: %s", usecase.ErrProviderUnavailable, endpoint, sanitizeSensitiveText(err.Error(), c.apiKey))
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, outcomeFailure).Inc()
		return nil, fmt.Errorf("%w: decode %s envelope: %v", usecase.ErrProviderUnavailable, endpoint, err)
	}
	if !strings.EqualFold(strings.TrimSpace(env.Status), "success") || isEmptyJSON(env.Data) {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, outcomeFailure).Inc()
		return nil, fmt.Errorf("%w: %s status=%q reason=%q", usecase.ErrProviderUnavailable, endpoint, env.Status, sanitizeSensitiveText(env.Reason, c.apiKey))
	}

	metrics.ProviderRequestsTotal.WithLabelValues(endpoint, outcomeSuccess).Inc()
	return env.Data, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errCricAPITransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errCricAPITransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errCricAPITransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "cricapi request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(body, maxResponseBytes)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.B...), nil
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "apikey=REDACTED")
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return apiKeyParamRegex.ReplaceAllString(rawURL, "apikey=REDACTED")
	}
	query := parsed.Query()
	if query.Has("apikey") {
		query.Set("apikey", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errCricAPITransient)
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

func isEmptyJSON(raw json.RawMessage) bool {
	text := strings.TrimSpace(string(raw))
	return text == "" || text == "null"
}
