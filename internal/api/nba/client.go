package nba

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hoopsdata/nbastats/internal/config"
	jsoniter "github.com/json-iterator/go"
)

const defaultBaseURL = "https://stats.nba.com/stats"

// rateLimitDelay is the unconditional courtesy pause after every call;
// stats.nba.com throttles callers that fire requests back to back.
const rateLimitDelay = 1 * time.Second

type Client struct {
	httpClient *http.Client
	baseURL    string
	delay      time.Duration
	Config     config.NBAAPI
}

func NewClient(cfg config.NBAAPI) *Client {
	return New(defaultBaseURL, cfg)
}

// New creates a client against a custom base URL (tests, local mirrors).
func New(baseURL string, cfg config.NBAAPI) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		delay:      rateLimitDelay,
		Config:     cfg,
	}
}

func (c *Client) Get(endpoint string, params map[string]string, result interface{}) error {
	url := fmt.Sprintf("%s%s", c.baseURL, endpoint)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	q := req.URL.Query()
	for key, value := range params {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()

	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, snippet)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if err := jsoniter.Unmarshal(body, result); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	time.Sleep(c.delay)

	return nil
}

// setHeaders makes the request look like nba.com's own frontend; the stats
// endpoint rejects anything else.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Origin", "https://www.nba.com")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("x-nba-stats-origin", "stats")
	req.Header.Set("x-nba-stats-token", "true")
}
