package neynar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fc-wrapped/internal/domain"
)

func TestGetProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/farcaster/user/bulk" {
			t.Fatalf("неожиданный путь %s", r.URL.Path)
		}
		if r.URL.Query().Get("fids") != "42" {
			t.Fatalf("ожидали fids=42, получили %q", r.URL.Query().Get("fids"))
		}
		if r.Header.Get("api_key") != "test-key" {
			t.Fatalf("ожидали заголовок api_key")
		}
		w.Write([]byte(`{"users":[{"fid":42,"username":"alice","display_name":"Alice","pfp_url":"https://pfp","profile":{"bio":{"text":"строю протоколы"}},"follower_count":12000,"following_count":300}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, time.Second)
	profile, err := client.GetProfile(context.Background(), 42)
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if profile.FID != 42 || profile.Username != "alice" || profile.Bio != "строю протоколы" {
		t.Fatalf("профиль распакован неверно: %+v", profile)
	}
	if profile.FollowerCount != 12000 || profile.FollowingCount != 300 {
		t.Fatalf("счётчики подписок распакованы неверно: %+v", profile)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, time.Second)
	_, err := client.GetProfile(context.Background(), 404)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("ожидали ErrUserNotFound, получили %v", err)
	}
}

func TestGetProfileUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, time.Second)
	_, err := client.GetProfile(context.Background(), 1)
	if err == nil {
		t.Fatalf("ожидали ошибку на статус 500")
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("ошибка апстрима не должна быть not found")
	}
}

func TestListCasts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/farcaster/feed/user/casts" {
			t.Fatalf("неожиданный путь %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("fid") != "42" || query.Get("limit") != "150" || query.Get("include_replies") != "false" {
			t.Fatalf("неверные параметры запроса: %v", query)
		}
		w.Write([]byte(`{"casts":[
			{"text":"gm","hash":"0x1","reactions":{"likes_count":10,"recasts_count":2},"channel":{"id":"dev","name":"Dev"},"mentioned_profiles":[{"fid":7,"username":"ally"}]},
			{"text":"без опциональных полей","hash":"0x2"}
		]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, time.Second)
	casts, err := client.ListCasts(context.Background(), 42, 150)
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(casts) != 2 {
		t.Fatalf("ожидали 2 каста, получили %d", len(casts))
	}
	if casts[0].Likes != 10 || casts[0].Recasts != 2 || casts[0].Channel == nil || casts[0].Channel.ID != "dev" {
		t.Fatalf("первый каст распакован неверно: %+v", casts[0])
	}
	if len(casts[0].MentionedProfiles) != 1 || casts[0].MentionedProfiles[0].FID != 7 {
		t.Fatalf("упоминания распакованы неверно: %+v", casts[0].MentionedProfiles)
	}
	// отсутствующие опциональные поля деградируют в нули, а не в ошибку
	if casts[1].Likes != 0 || casts[1].Channel != nil || casts[1].MentionedProfiles != nil {
		t.Fatalf("отсутствующие поля должны давать нули: %+v", casts[1])
	}
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Set(key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.data[key]
	if !ok {
		return nil, errors.New("нет ключа")
	}
	return value, nil
}

func TestListCastsUsesCache(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"casts":[{"text":"gm","hash":"0x1"}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, time.Second).WithCache(newMemoryCache(), time.Minute)

	for i := 0; i < 3; i++ {
		casts, err := client.ListCasts(context.Background(), 42, 150)
		if err != nil {
			t.Fatalf("не ожидали ошибку: %v", err)
		}
		if len(casts) != 1 {
			t.Fatalf("ожидали 1 каст, получили %d", len(casts))
		}
	}
	if hits != 1 {
		t.Fatalf("ожидали один запрос к апстриму, получили %d", hits)
	}
}
