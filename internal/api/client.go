package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Gateway defines the backend operations the console uses. It is implemented
// by *Client and can be swapped out in tests.
type Gateway interface {
	Stats(ctx context.Context) (Stats, error)
	Groups(ctx context.Context) ([]Group, error)
	Posts(ctx context.Context, groupID string, page, pageSize int) ([]Post, Pagination, error)
	Post(ctx context.Context, postID string) (Post, error)
	Comments(ctx context.Context, postID string) ([]Comment, error)
	CrawlerConfigs(ctx context.Context) ([]CrawlerConfig, error)
	CrawlerConfig(ctx context.Context, id int64) (CrawlerConfig, error)
	CreateCrawlerConfig(ctx context.Context, req CrawlerConfigRequest) error
	UpdateCrawlerConfig(ctx context.Context, id int64, req CrawlerConfigRequest) error
	DeleteCrawlerConfig(ctx context.Context, id int64) error
	RunCrawler(ctx context.Context, id int64) error
	BotConfig(ctx context.Context) (BotConfig, error)
	UpdateBotConfig(ctx context.Context, req BotConfigUpdate) error
	TestBotReply(ctx context.Context, req TestReplyRequest) (string, error)
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

// Error is an application-level failure: the backend answered with
// success=false and a message. Transport and parse failures are returned as
// plain wrapped errors instead.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "unknown backend error"
	}
	return e.Message
}

// Client talks to the douban-bot HTTP API. Calls are at-most-once: there are
// no retries and no client-imposed timeout; callers that need a deadline
// layer one onto the context.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	log       zerolog.Logger
}

const (
	defaultAPIBind   = "127.0.0.1:8080"
	defaultUserAgent = "douban-console/0.1"
)

// NewClient builds a Client using the provided host:port or URL value.
func NewClient(apiBind string, log zerolog.Logger) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		log:       log,
	}, nil
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Pagination *Pagination     `json:"pagination"`
}

// Stats retrieves the aggregate crawl counters.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	if _, err := c.call(ctx, http.MethodGet, "/api/stats", nil, nil, &stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// Groups retrieves every crawled group.
func (c *Client) Groups(ctx context.Context) ([]Group, error) {
	var groups []Group
	if _, err := c.call(ctx, http.MethodGet, "/api/groups", nil, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Posts retrieves one page of posts. An empty groupID means all groups.
func (c *Client) Posts(ctx context.Context, groupID string, page, pageSize int) ([]Post, Pagination, error) {
	values := url.Values{}
	values.Set("group_id", groupID)
	values.Set("page", strconv.Itoa(page))
	values.Set("page_size", strconv.Itoa(pageSize))

	var posts []Post
	pagination, err := c.call(ctx, http.MethodGet, "/api/posts", values, nil, &posts)
	if err != nil {
		return nil, Pagination{}, err
	}
	if pagination == nil {
		pagination = &Pagination{Page: page, Pages: 1, Total: len(posts)}
	}
	return posts, *pagination, nil
}

// Post retrieves a single post by its backend post id.
func (c *Client) Post(ctx context.Context, postID string) (Post, error) {
	var post Post
	if _, err := c.call(ctx, http.MethodGet, "/api/post/"+url.PathEscape(postID), nil, nil, &post); err != nil {
		return Post{}, err
	}
	return post, nil
}

// Comments retrieves the comment thread for a post.
func (c *Client) Comments(ctx context.Context, postID string) ([]Comment, error) {
	var comments []Comment
	if _, err := c.call(ctx, http.MethodGet, "/api/comments/"+url.PathEscape(postID), nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CrawlerConfigs retrieves every crawler job configuration.
func (c *Client) CrawlerConfigs(ctx context.Context) ([]CrawlerConfig, error) {
	var configs []CrawlerConfig
	if _, err := c.call(ctx, http.MethodGet, "/api/config/crawler", nil, nil, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// CrawlerConfig retrieves a single configuration, secret redacted.
func (c *Client) CrawlerConfig(ctx context.Context, id int64) (CrawlerConfig, error) {
	var config CrawlerConfig
	if _, err := c.call(ctx, http.MethodGet, crawlerPath(id), nil, nil, &config); err != nil {
		return CrawlerConfig{}, err
	}
	return config, nil
}

// CreateCrawlerConfig creates a new crawler job configuration.
func (c *Client) CreateCrawlerConfig(ctx context.Context, req CrawlerConfigRequest) error {
	_, err := c.call(ctx, http.MethodPost, "/api/config/crawler", nil, req, nil)
	return err
}

// UpdateCrawlerConfig updates an existing configuration. A request without a
// cookie leaves the stored cookie untouched.
func (c *Client) UpdateCrawlerConfig(ctx context.Context, id int64, req CrawlerConfigRequest) error {
	_, err := c.call(ctx, http.MethodPut, crawlerPath(id), nil, req, nil)
	return err
}

// DeleteCrawlerConfig removes a configuration.
func (c *Client) DeleteCrawlerConfig(ctx context.Context, id int64) error {
	_, err := c.call(ctx, http.MethodDelete, crawlerPath(id), nil, nil, nil)
	return err
}

// RunCrawler triggers an immediate crawl for the configuration. The job runs
// asynchronously on the backend; success only means it was accepted.
func (c *Client) RunCrawler(ctx context.Context, id int64) error {
	_, err := c.call(ctx, http.MethodPost, crawlerPath(id)+"/run", nil, nil, nil)
	return err
}

// BotConfig retrieves the singleton bot configuration, secrets redacted.
func (c *Client) BotConfig(ctx context.Context) (BotConfig, error) {
	var config BotConfig
	if _, err := c.call(ctx, http.MethodGet, "/api/bot/config", nil, nil, &config); err != nil {
		return BotConfig{}, err
	}
	return config, nil
}

// UpdateBotConfig applies a partial update to the bot configuration.
func (c *Client) UpdateBotConfig(ctx context.Context, req BotConfigUpdate) error {
	_, err := c.call(ctx, http.MethodPut, "/api/bot/config", nil, req, nil)
	return err
}

// TestBotReply asks the backend to generate a reply for a hypothetical post.
// The call has no side effects on persisted state.
func (c *Client) TestBotReply(ctx context.Context, req TestReplyRequest) (string, error) {
	var payload struct {
		Reply string `json:"reply"`
	}
	if _, err := c.call(ctx, http.MethodPost, "/api/bot/test", nil, req, &payload); err != nil {
		return "", err
	}
	return payload.Reply, nil
}

func crawlerPath(id int64) string {
	return "/api/config/crawler/" + strconv.FormatInt(id, 10)
}

// call performs one HTTP exchange and decodes the backend envelope. A
// success=false envelope comes back as *Error; anything that prevented a
// well-formed envelope from arriving is a plain wrapped error.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, dest any) (*Pagination, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: path}
	if query != nil {
		rel.RawQuery = query.Encode()
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		c.log.Warn().
			Str("method", method).
			Str("path", rel.Path).
			Int("status", resp.StatusCode).
			Str("error", env.Error).
			Msg("backend reported failure")
		return nil, &Error{Message: env.Error, Status: resp.StatusCode}
	}

	if dest != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, dest); err != nil {
			return nil, fmt.Errorf("decode data: %w", err)
		}
	}
	return env.Pagination, nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
