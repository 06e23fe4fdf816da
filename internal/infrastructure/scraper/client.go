package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"

	"github.com/greatestleague/dashboard-api/internal/domain/matchup"
	"github.com/greatestleague/dashboard-api/internal/domain/standing"
	"github.com/greatestleague/dashboard-api/internal/platform/logging"
)

const (
	defaultTimeout   = 20 * time.Second
	defaultRateLimit = 2.0
	userAgent        = "greatestleague-dashboard/1.0"
)

type ClientConfig struct {
	HTTPClient        *fasthttp.Client
	BaseURL           string
	LeagueID          string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerSecond float64
	Logger            *logging.Logger
}

// Client scrapes the league host's scoreboard and standings pages.
// Requests are rate limited so a full backfill stays polite.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	leagueID   string
	timeout    time.Duration
	maxRetries int
	limiter    *rate.Limiter
	logger     *logging.Logger
	now        func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRateLimit
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		leagueID:   strings.TrimSpace(cfg.LeagueID),
		timeout:    timeout,
		maxRetries: maxRetries,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
		now:        time.Now,
	}
}

// ScrapeWeek fetches one week's scoreboard and returns its games. An
// unplayed week parses to an empty slice, not an error.
func (c *Client) ScrapeWeek(ctx context.Context, year, week int) ([]matchup.Record, error) {
	url := fmt.Sprintf("%s/league/%s/scoreboard?year=%d&week=%d", c.baseURL, c.leagueID, year, week)
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch scoreboard %d week %d: %w", year, week, err)
	}
	defer bytebufferpool.Put(body)

	records, err := parseScoreboard(body.B, year, week, c.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("parse scoreboard %d week %d: %w", year, week, err)
	}
	c.logger.DebugContext(ctx, "scraped scoreboard",
		"year", year,
		"week", week,
		"games", len(records),
	)
	return records, nil
}

// ScrapeStandings fetches a season's standings page. The final table is
// empty until the bracket wraps up.
func (c *Client) ScrapeStandings(ctx context.Context, year int) ([]standing.Record, []standing.Record, error) {
	url := fmt.Sprintf("%s/league/%s/standings?year=%d", c.baseURL, c.leagueID, year)
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch standings %d: %w", year, err)
	}
	defer bytebufferpool.Put(body)

	regular, final, err := parseStandings(body.B, year, c.now().UTC())
	if err != nil {
		return nil, nil, fmt.Errorf("parse standings %d: %w", year, err)
	}
	c.logger.DebugContext(ctx, "scraped standings",
		"year", year,
		"regular_rows", len(regular),
		"final_rows", len(final),
	)
	return regular, final, nil
}

// fetch downloads a page into a pooled buffer. The caller returns the
// buffer to bytebufferpool when done with it.
func (c *Client) fetch(ctx context.Context, url string) (*bytebufferpool.ByteBuffer, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.fetchOnce(url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		c.logger.WarnContext(ctx, "scrape request failed",
			"url", url,
			"attempt", attempt+1,
			"error", err,
		)
	}
	return nil, lastErr
}

func (c *Client) fetchOnce(url string) (*bytebufferpool.ByteBuffer, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(userAgent)

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, crerr.Wrapf(err, "request %s", url)
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return nil, crerr.Newf("request %s: unexpected status %d", url, code)
	}

	body := bytebufferpool.Get()
	if _, err := body.Write(resp.Body()); err != nil {
		bytebufferpool.Put(body)
		return nil, crerr.Wrap(err, "copy response body")
	}
	return body, nil
}
