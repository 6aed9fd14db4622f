// Package weather looks up current conditions from the OpenWeatherMap API
// and exposes the lookup as the get_today_weather tool.
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

var xlog = logrus.WithField("module", "weather")

// maxBodySize caps how much of the upstream body is read.
const maxBodySize = 1 << 20

// HTTPDoer is the subset of *http.Client used by Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client performs weather lookups against one configured endpoint.
// It is stateless between calls and safe for concurrent use.
type Client struct {
	baseURL  string
	apiKey   string
	units    string
	language string
	http     HTTPDoer
}

// NewClient creates a Client whose HTTP timeout comes from cfg.
func NewClient(cfg config.WeatherConfig, apiKey string) *Client {
	return NewClientWithHTTP(cfg, apiKey, &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
}

// NewClientWithHTTP creates a Client using the given HTTP implementation (for testing).
func NewClientWithHTTP(cfg config.WeatherConfig, apiKey string, doer HTTPDoer) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   apiKey,
		units:    cfg.Units,
		language: cfg.Language,
		http:     doer,
	}
}

// Lookup fetches the current weather for city. It never returns an error:
// every failure is folded into Result.Error so the caller can hand it to the model.
func (c *Client) Lookup(ctx context.Context, city string) Result {
	start := time.Now()
	log := xlog.WithField("city", city)

	req, err := c.newRequest(ctx, city)
	if err != nil {
		log.WithError(err).Warn("building weather request failed")
		return requestFailed(city, err.Error())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		desc := describeTransportError(err)
		log.WithField("error", desc).Warn("weather request failed")
		return requestFailed(city, desc)
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":     resp.StatusCode,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode == http.StatusNotFound {
		log.Info("city not found")
		return notFound(city)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("weather API returned error status")
		return requestFailed(city, fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.WithError(err).Warn("reading weather response failed")
		return requestFailed(city, describeTransportError(err))
	}

	result, ok := parseBody(city, body)
	if !ok {
		log.Warn("weather response is not a JSON object")
		return requestFailed(city, "invalid JSON in response body")
	}

	log.Debug("weather lookup succeeded")
	return result
}

func (c *Client) newRequest(ctx context.Context, city string) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", c.units)
	if c.language != "" {
		q.Set("lang", c.language)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// parseBody extracts the five weather fields. Missing text fields become
// Unknown and missing numbers stay nil; only a non-object body is rejected.
func parseBody(city string, body []byte) (Result, bool) {
	if !gjson.ValidBytes(body) {
		return Result{}, false
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return Result{}, false
	}

	return Result{
		City:        city,
		Weather:     stringOr(doc.Get("weather.0.main"), Unknown),
		Description: stringOr(doc.Get("weather.0.description"), Unknown),
		Temperature: floatPtr(doc.Get("main.temp")),
		FeelsLike:   floatPtr(doc.Get("main.feels_like")),
		Humidity:    intPtr(doc.Get("main.humidity")),
	}, true
}

func stringOr(r gjson.Result, fallback string) string {
	if r.Type != gjson.String {
		return fallback
	}
	return r.Str
}

func floatPtr(r gjson.Result) *float64 {
	if r.Type != gjson.Number {
		return nil
	}
	v := r.Float()
	return &v
}

// intPtr rounds fractional values to the nearest integer.
func intPtr(r gjson.Result) *int {
	if r.Type != gjson.Number {
		return nil
	}
	v := int(math.Round(r.Float()))
	return &v
}

// describeTransportError strips the request URL from client errors,
// since it carries the API key in its query string.
func describeTransportError(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}
