package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(baseURL, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, defaultAPIBind, u.Host)

	u, err = parseBaseURL("10.0.0.5:9000")
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:9000", u.String())

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	require.NoError(t, err)
	assert.Empty(t, u.Path)
	assert.Empty(t, u.RawQuery)
	assert.Empty(t, u.Fragment)
}

func TestClient_PostsEncodesQueryAndUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"post_id": "p1", "title": "first", "is_matched": true},
				{"postId": "p2", "title": "second", "isMatched": false}
			],
			"pagination": {"page": 2, "pages": 7, "total": 130}
		}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	posts, pagination, err := c.Posts(context.Background(), "g42", 2, 20)
	require.NoError(t, err)

	assert.Equal(t, "g42", gotQuery.Get("group_id"))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "20", gotQuery.Get("page_size"))

	require.Len(t, posts, 2)
	assert.Equal(t, "p1", posts[0].PostID)
	assert.True(t, posts[0].IsMatched)
	assert.Equal(t, "p2", posts[1].PostID)

	assert.Equal(t, Pagination{Page: 2, Pages: 7, Total: 130}, pagination)
}

func TestClient_MissingPaginationSynthesizesSinglePage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": [{"post_id": "p1"}]}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	_, pagination, err := c.Posts(context.Background(), "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, Pagination{Page: 1, Pages: 1, Total: 1}, pagination)
}

func TestClient_BackendFailureBecomesTypedError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success": false, "error": "crawler is busy"}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	err := c.RunCrawler(context.Background(), 7)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "crawler is busy", apiErr.Message)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestClient_MalformedEnvelopeIsPlainError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	_, err := c.Stats(context.Background())
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "parse failures must not look like backend errors")
}

func TestClient_CrawlerConfigOmitsUntypedCookie(t *testing.T) {
	t.Parallel()

	var gotBody map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/config/crawler/3", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	err := c.UpdateCrawlerConfig(context.Background(), 3, CrawlerConfigRequest{
		Name:     "watch",
		GroupURL: "https://www.douban.com/group/abc/",
	})
	require.NoError(t, err)

	_, hasCookie := gotBody["cookie"]
	assert.False(t, hasCookie, "request without a typed cookie must omit the field")
	assert.Equal(t, json.RawMessage(`"watch"`), gotBody["name"])
}

func TestClient_CrawlerConfigSendsTypedCookie(t *testing.T) {
	t.Parallel()

	var gotBody map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	err := c.CreateCrawlerConfig(context.Background(), CrawlerConfigRequest{
		Name:     "watch",
		GroupURL: "https://www.douban.com/group/abc/",
		Cookie:   NewSecret("bid=xyz"),
	})
	require.NoError(t, err)

	assert.Equal(t, json.RawMessage(`"bid=xyz"`), gotBody["cookie"])
}

func TestClient_BotToggleSendsOnlyEnabled(t *testing.T) {
	t.Parallel()

	var gotBody map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/bot/config", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	t.Cleanup(server.Close)

	enabled := true
	c := newTestClient(t, server.URL)
	err := c.UpdateBotConfig(context.Background(), BotConfigUpdate{Enabled: &enabled})
	require.NoError(t, err)

	require.Len(t, gotBody, 1, "toggle body must carry only the enabled flag, got %v", gotBody)
	assert.Equal(t, json.RawMessage(`true`), gotBody["enabled"])
}

func TestClient_TestBotReply(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bot/test", r.URL.Path)
		var req TestReplyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "looking for a flat", req.Title)
		_, _ = w.Write([]byte(`{"success": true, "data": {"reply": "still available, DM me"}}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	reply, err := c.TestBotReply(context.Background(), TestReplyRequest{
		Title:   "looking for a flat",
		Content: "two rooms near the metro",
	})
	require.NoError(t, err)
	assert.Equal(t, "still available, DM me", reply)
}

func TestClient_NullDataLeavesDestUntouched(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": null}`))
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)
	groups, err := c.Groups(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}
