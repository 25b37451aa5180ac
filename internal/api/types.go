package api

import (
	"encoding/json"
	"time"
)

const backendTimestampLayout = "2006-01-02 15:04:05"

// Stats aggregates the backend's crawl counters.
type Stats struct {
	Groups   int
	Posts    int
	Comments int
}

// UnmarshalJSON tolerates both field-naming revisions of /api/stats
// (groups_count vs groups, and so on).
func (s *Stats) UnmarshalJSON(data []byte) error {
	var raw struct {
		Groups        *int `json:"groups"`
		GroupsCount   *int `json:"groups_count"`
		Posts         *int `json:"posts"`
		PostsCount    *int `json:"posts_count"`
		Comments      *int `json:"comments"`
		CommentsCount *int `json:"comments_count"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Groups = firstInt(raw.GroupsCount, raw.Groups)
	s.Posts = firstInt(raw.PostsCount, raw.Posts)
	s.Comments = firstInt(raw.CommentsCount, raw.Comments)
	return nil
}

// Group is one crawled discussion group.
type Group struct {
	ID          string
	Name        string
	MemberCount int
}

func (g *Group) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		MemberCount  *int   `json:"member_count"`
		MemberCountC *int   `json:"memberCount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.ID = raw.ID
	g.Name = raw.Name
	g.MemberCount = firstInt(raw.MemberCount, raw.MemberCountC)
	return nil
}

// Author carries the display name of a post or comment author.
type Author struct {
	Name string `json:"name"`
}

// Post is a crawled group post. The backend's field naming drifted between
// snake_case and camelCase across revisions; both spellings decode into the
// same struct here so the rest of the console sees one schema.
type Post struct {
	PostID          string
	Title           string
	Content         string
	Created         string
	Updated         string
	Author          Author
	IsMatched       bool
	KeywordList     []string
	Alt             string
	BotReplied      bool
	BotReplyContent string
	BotReplyAt      string
}

func (p *Post) UnmarshalJSON(data []byte) error {
	var raw struct {
		PostID           string   `json:"post_id"`
		PostIDC          string   `json:"postId"`
		Title            string   `json:"title"`
		Content          string   `json:"content"`
		Created          string   `json:"created"`
		Updated          string   `json:"updated"`
		AuthorInfo       *Author  `json:"author_info"`
		AuthorInfoC      *Author  `json:"authorInfo"`
		IsMatched        *bool    `json:"is_matched"`
		IsMatchedC       *bool    `json:"isMatched"`
		KeywordList      []string `json:"keyword_list"`
		KeywordListC     []string `json:"keywordList"`
		Alt              string   `json:"alt"`
		BotReplied       *bool    `json:"bot_replied"`
		BotRepliedC      *bool    `json:"botReplied"`
		BotReplyContent  string   `json:"bot_reply_content"`
		BotReplyContentC string   `json:"botReplyContent"`
		BotReplyAt       string   `json:"bot_reply_at"`
		BotReplyAtC      string   `json:"botReplyAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.PostID = firstString(raw.PostID, raw.PostIDC)
	p.Title = raw.Title
	p.Content = raw.Content
	p.Created = raw.Created
	p.Updated = raw.Updated
	if raw.AuthorInfo != nil {
		p.Author = *raw.AuthorInfo
	} else if raw.AuthorInfoC != nil {
		p.Author = *raw.AuthorInfoC
	}
	p.IsMatched = firstBool(raw.IsMatched, raw.IsMatchedC)
	if raw.KeywordList != nil {
		p.KeywordList = raw.KeywordList
	} else {
		p.KeywordList = raw.KeywordListC
	}
	p.Alt = raw.Alt
	p.BotReplied = firstBool(raw.BotReplied, raw.BotRepliedC)
	p.BotReplyContent = firstString(raw.BotReplyContent, raw.BotReplyContentC)
	p.BotReplyAt = firstString(raw.BotReplyAt, raw.BotReplyAtC)
	return nil
}

// ParsedCreated returns the parsed creation timestamp.
func (p Post) ParsedCreated() time.Time {
	return ParseTime(p.Created)
}

// Comment is one reply under a post.
type Comment struct {
	Author    Author
	Content   string
	Created   string
	LikeCount int
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	var raw struct {
		AuthorInfo  *Author `json:"author_info"`
		AuthorInfoC *Author `json:"authorInfo"`
		Content     string  `json:"content"`
		Created     string  `json:"created"`
		LikeCount   *int    `json:"like_count"`
		LikeCountC  *int    `json:"likeCount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.AuthorInfo != nil {
		c.Author = *raw.AuthorInfo
	} else if raw.AuthorInfoC != nil {
		c.Author = *raw.AuthorInfoC
	}
	c.Content = raw.Content
	c.Created = raw.Created
	c.LikeCount = firstInt(raw.LikeCount, raw.LikeCountC)
	return nil
}

// Pagination describes the window the backend just served. Page is 1-based.
// The values are authoritative only for that window.
type Pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

// CrawlerConfig is one crawler job definition. The cookie is write-only:
// the read path only reports whether one is stored.
type CrawlerConfig struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	GroupURL        string   `json:"groupUrl"`
	GroupID         string   `json:"groupId"`
	Keywords        []string `json:"keywords"`
	ExcludeKeywords []string `json:"excludeKeywords"`
	Pages           int      `json:"pages"`
	SleepSeconds    int      `json:"sleepSeconds"`
	Enabled         bool     `json:"enabled"`
	CrawlComments   bool     `json:"crawlComments"`
	HasCookie       bool     `json:"hasCookie"`
	CreatedAt       string   `json:"createdAt"`
}

// CrawlerConfigRequest is the outgoing body for create and update. Cookie is
// serialized only when the operator supplied a new value; an absent field
// tells the backend to keep the stored one.
type CrawlerConfigRequest struct {
	Name            string   `json:"name"`
	GroupURL        string   `json:"groupUrl"`
	Keywords        []string `json:"keywords"`
	ExcludeKeywords []string `json:"excludeKeywords"`
	Pages           int      `json:"pages"`
	SleepSeconds    int      `json:"sleepSeconds"`
	Enabled         bool     `json:"enabled"`
	CrawlComments   bool     `json:"crawlComments"`
	Cookie          Secret   `json:"cookie,omitzero"`
}

// BotConfig is the singleton auto-reply bot configuration. Secrets are
// redacted to presence flags on the read path.
type BotConfig struct {
	Enabled              bool     `json:"enabled"`
	HasAPIKey            bool     `json:"hasApiKey"`
	APIType              string   `json:"apiType"`
	APIBase              string   `json:"apiBase"`
	Model                string   `json:"model"`
	Temperature          float64  `json:"temperature"`
	MaxTokens            int      `json:"maxTokens"`
	ReplyKeywords        []string `json:"replyKeywords"`
	MinReplyDelay        int      `json:"minReplyDelay"`
	MaxReplyDelay        int      `json:"maxReplyDelay"`
	ReplySpeedMultiplier float64  `json:"replySpeedMultiplier"`
	ReplyCheckInterval   int      `json:"replyCheckInterval"`
	MaxHistoryPosts      int      `json:"maxHistoryPosts"`
	MaxHistoryComments   int      `json:"maxHistoryComments"`
	EnableStyleLearning  bool     `json:"enableStyleLearning"`
	CustomPrompt         string   `json:"customPrompt"`
	HasCookie            bool     `json:"hasCookie"`
}

// BotConfigUpdate is a partial update body for /api/bot/config. Nil fields
// are left out of the request entirely, so the backend keeps their stored
// values. The enabled-only toggle uses the same type.
type BotConfigUpdate struct {
	Enabled              *bool    `json:"enabled,omitempty"`
	APIType              *string  `json:"apiType,omitempty"`
	APIBase              *string  `json:"apiBase,omitempty"`
	APIKey               Secret   `json:"apiKey,omitzero"`
	Model                *string  `json:"model,omitempty"`
	Temperature          *float64 `json:"temperature,omitempty"`
	MaxTokens            *int     `json:"maxTokens,omitempty"`
	ReplyKeywords        []string `json:"replyKeywords,omitempty"`
	MinReplyDelay        *int     `json:"minReplyDelay,omitempty"`
	MaxReplyDelay        *int     `json:"maxReplyDelay,omitempty"`
	ReplySpeedMultiplier *float64 `json:"replySpeedMultiplier,omitempty"`
	ReplyCheckInterval   *int     `json:"replyCheckInterval,omitempty"`
	MaxHistoryPosts      *int     `json:"maxHistoryPosts,omitempty"`
	MaxHistoryComments   *int     `json:"maxHistoryComments,omitempty"`
	EnableStyleLearning  *bool    `json:"enableStyleLearning,omitempty"`
	CustomPrompt         *string  `json:"customPrompt,omitempty"`
	Cookie               Secret   `json:"cookie,omitzero"`
}

// TestReplyRequest asks the backend to simulate a bot reply without touching
// persisted state.
type TestReplyRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	GroupID string `json:"groupId,omitempty"`
}

// ParseTime parses the timestamp formats the backend emits. Invalid or empty
// values return the zero time.
func ParseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(backendTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}

func firstInt(candidates ...*int) int {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return 0
}

func firstBool(candidates ...*bool) bool {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return false
}

func firstString(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
