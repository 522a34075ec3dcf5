package exchangerates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	latestRatesPath = "latest"
	accessKeyParam  = "access_key"

	maxBodyBytes = 1 << 20
)

type config interface {
	BaseURL() string
	AccessKey() string
	Timeout() time.Duration
}

// APIError is the structured error the rate service reports with success=false.
type APIError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	if e.Info != "" {
		return fmt.Sprintf("rate service error %d: %s", e.Code, e.Info)
	}
	return fmt.Sprintf("rate service error %d: %s", e.Code, e.Type)
}

type ratesResponse struct {
	Success   bool               `json:"success"`
	Timestamp int64              `json:"timestamp"`
	Base      string             `json:"base"`
	Date      string             `json:"date"`
	Rates     map[string]float64 `json:"rates"`
	Error     *APIError          `json:"error"`
}

// Client fetches the full latest rate table. The base currency is whatever
// the service uses for the access key's plan.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func New(config config) *Client {
	baseURL := config.BaseURL()
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  config.AccessKey(),
		client:  &http.Client{Timeout: config.Timeout()},
	}
}

// GetLatestRates calls GET latest?access_key=. An empty accessKey falls back
// to the configured one. Structured service failures come back as *APIError,
// anything else is a transport problem.
func (c *Client) GetLatestRates(ctx context.Context, accessKey string) (rates currency.Table, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "getLatestRates")
	defer func() {
		if err != nil {
			ext.Error.Set(span, true)
		}
		span.Finish()
	}()

	if accessKey == "" {
		accessKey = c.apiKey
	}

	start := time.Now()
	rates, err = c.fetch(ctx, accessKey)
	observeFetch(time.Since(start), err)
	return rates, err
}

func (c *Client) fetch(ctx context.Context, accessKey string) (currency.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+latestRatesPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build rates request")
	}
	q := url.Values{}
	q.Add(accessKeyParam, accessKey)
	req.URL.RawQuery = q.Encode()

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request rates")
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			logger.Error("failed to close rates response", zap.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read rates response")
	}
	logger.Debug("new response from rate service", zap.Int("status", res.StatusCode), zap.Int("bytes", len(body)))

	var rates ratesResponse
	if err = json.Unmarshal(body, &rates); err != nil {
		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("rate service returned HTTP %d", res.StatusCode)
		}
		return nil, errors.Wrap(err, "unmarshalling response")
	}

	if rates.Error != nil {
		return nil, rates.Error
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate service returned HTTP %d", res.StatusCode)
	}
	if !rates.Success || rates.Rates == nil {
		return nil, errors.New("rate service reported failure without details")
	}

	logger.Info("pulled latest rates", zap.String("base", rates.Base), zap.String("date", rates.Date), zap.Int("count", len(rates.Rates)))
	return rates.Rates, nil
}
