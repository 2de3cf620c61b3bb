// Package weather fetches today's weather label from the external weather
// API. The label is captured once when a todo is created and never refreshed.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/taskmate/taskmate-backend/internal/config"
	"github.com/taskmate/taskmate-backend/internal/domain"
)

// Client fetches daily weather labels over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	now        func() time.Time
}

// NewClient creates a Client from WeatherConfig.
func NewClient(cfg config.WeatherConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "weather"),
		now:        time.Now,
	}
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "weather"),
		now:        time.Now,
	}
}

// dailyWeather is one entry of the API response: a month-day key and label.
type dailyWeather struct {
	Date    string `json:"date"`
	Weather string `json:"weather"`
}

// TodayWeather returns the weather label for today's date (MM-dd).
// All failures surface as domain.ServerError with fixed messages.
func (c *Client) TodayWeather(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", fmt.Errorf("weather: create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "weather request failed", slog.String("error", err.Error()))
		return "", domain.NewServerError("날씨 데이터를 가져오는데 실패했습니다.")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewServerError(fmt.Sprintf("날씨 데이터를 가져오는데 실패했습니다. 상태 코드: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewServerError("날씨 데이터를 가져오는데 실패했습니다.")
	}

	var days []dailyWeather
	if err := json.Unmarshal(body, &days); err != nil {
		return "", domain.NewServerError("날씨 데이터를 가져오는데 실패했습니다.")
	}
	if len(days) == 0 {
		return "", domain.NewServerError("날씨 데이터가 없습니다.")
	}

	today := c.now().Format("01-02")
	for _, d := range days {
		if d.Date == today {
			c.log.DebugContext(ctx, "weather response",
				slog.String("date", today),
				slog.String("weather", d.Weather),
			)
			return d.Weather, nil
		}
	}

	return "", domain.NewServerError("오늘에 해당하는 날씨 데이터를 찾을 수 없습니다.")
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "weather retrying request", slog.String("reason", reason))

	retryReq := req.Clone(ctx)
	return c.httpClient.Do(retryReq)
}
