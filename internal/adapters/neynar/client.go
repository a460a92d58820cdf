package neynar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fc-wrapped/internal/domain"
	"fc-wrapped/internal/infra/metrics"
)

const defaultBaseURL = "https://api.neynar.com"

// Client выполняет запросы к Neynar API.
type Client struct {
	http     *http.Client
	baseURL  string
	apiKey   string
	cache    domain.Cache
	cacheTTL time.Duration
}

var (
	_ domain.ProfileProvider = (*Client)(nil)
	_ domain.CastProvider    = (*Client)(nil)
)

// NewClient создаёт клиента Neynar.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{http: &http.Client{Timeout: timeout}, baseURL: baseURL, apiKey: apiKey}
}

// WithCache включает TTL-кэш сырых ответов апстрима. Ядро агрегации кэш не
// трогает: кэшируется только JSON внешнего сервиса.
func (c *Client) WithCache(cache domain.Cache, ttl time.Duration) *Client {
	c.cache = cache
	c.cacheTTL = ttl
	return c
}

type bioPayload struct {
	Text string `json:"text"`
}

type profilePayload struct {
	Bio bioPayload `json:"bio"`
}

type userPayload struct {
	FID            int64          `json:"fid"`
	Username       string         `json:"username"`
	DisplayName    string         `json:"display_name"`
	PfpURL         string         `json:"pfp_url"`
	Profile        profilePayload `json:"profile"`
	FollowerCount  int            `json:"follower_count"`
	FollowingCount int            `json:"following_count"`
}

type bulkUsersResponse struct {
	Users []userPayload `json:"users"`
}

type reactionsPayload struct {
	LikesCount   int `json:"likes_count"`
	RecastsCount int `json:"recasts_count"`
}

type channelPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type mentionPayload struct {
	FID         int64  `json:"fid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	PfpURL      string `json:"pfp_url"`
}

type castPayload struct {
	Text              string           `json:"text"`
	Hash              string           `json:"hash"`
	Reactions         reactionsPayload `json:"reactions"`
	Channel           *channelPayload  `json:"channel"`
	MentionedProfiles []mentionPayload `json:"mentioned_profiles"`
}

type castFeedResponse struct {
	Casts []castPayload `json:"casts"`
}

// GetProfile возвращает профиль пользователя через bulk-эндпоинт.
func (c *Client) GetProfile(ctx context.Context, fid int64) (domain.UserProfile, error) {
	endpoint := c.baseURL + "/v2/farcaster/user/bulk?fids=" + strconv.FormatInt(fid, 10)
	body, err := c.doGet(ctx, "user_bulk", endpoint)
	if err != nil {
		return domain.UserProfile{}, err
	}

	var payload bulkUsersResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.UserProfile{}, fmt.Errorf("neynar: decode users: %w", err)
	}
	if len(payload.Users) == 0 {
		return domain.UserProfile{}, domain.ErrUserNotFound
	}

	user := payload.Users[0]
	return domain.UserProfile{
		FID:            user.FID,
		Username:       user.Username,
		DisplayName:    user.DisplayName,
		PfpURL:         user.PfpURL,
		Bio:            user.Profile.Bio.Text,
		FollowerCount:  user.FollowerCount,
		FollowingCount: user.FollowingCount,
	}, nil
}

// ListCasts возвращает последние касты пользователя без реплаев.
func (c *Client) ListCasts(ctx context.Context, fid int64, limit int) ([]domain.Cast, error) {
	query := url.Values{}
	query.Set("fid", strconv.FormatInt(fid, 10))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("include_replies", "false")
	endpoint := c.baseURL + "/v2/farcaster/feed/user/casts?" + query.Encode()

	body, err := c.doGet(ctx, "user_casts", endpoint)
	if err != nil {
		return nil, err
	}

	var payload castFeedResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("neynar: decode casts: %w", err)
	}

	casts := make([]domain.Cast, 0, len(payload.Casts))
	for _, raw := range payload.Casts {
		cast := domain.Cast{
			Text:    raw.Text,
			Hash:    raw.Hash,
			Likes:   raw.Reactions.LikesCount,
			Recasts: raw.Reactions.RecastsCount,
		}
		if raw.Channel != nil && raw.Channel.ID != "" {
			cast.Channel = &domain.Channel{ID: raw.Channel.ID, Name: raw.Channel.Name}
		}
		for _, mention := range raw.MentionedProfiles {
			cast.MentionedProfiles = append(cast.MentionedProfiles, domain.MentionedProfile{
				FID:         mention.FID,
				Username:    mention.Username,
				DisplayName: mention.DisplayName,
				PfpURL:      mention.PfpURL,
			})
		}
		casts = append(casts, cast)
	}
	return casts, nil
}

func (c *Client) doGet(ctx context.Context, operation, endpoint string) ([]byte, error) {
	if c.cache != nil {
		if cached, err := c.cache.Get(endpoint); err == nil && len(cached) > 0 {
			metrics.UpstreamCacheHits.WithLabelValues(operation).Inc()
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("neynar: build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api_key", c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveNetworkRequest("neynar", operation, c.baseURL, start, err)
		return nil, fmt.Errorf("neynar: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	metrics.ObserveNetworkRequest("neynar", operation, c.baseURL, start, err)
	if err != nil {
		return nil, fmt.Errorf("neynar: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("neynar: %s вернул статус %d", operation, resp.StatusCode)
	}

	if c.cache != nil {
		_ = c.cache.Set(endpoint, body, c.cacheTTL)
	}
	return body, nil
}
