package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestUserStatsJSONRoundTrip(t *testing.T) {
	original := UserStats{
		FID:            42,
		Username:       "alice",
		DisplayName:    "Alice",
		PfpURL:         "https://pfp",
		Bio:            "строю протоколы",
		FollowerCount:  12000,
		FollowingCount: 300,
		TotalCasts:     88,
		TotalLikes:     640,
		TopChannel:     TopChannel{ID: "dev", Name: "Dev", CastsInChannel: 31},
		TopCast:        TopCast{Text: "gm", Likes: 77, Recasts: 12, Hash: "0xabc"},
		ClosestFriend:  ClosestFriend{FID: 7, Username: "ally", DisplayName: "Ally", PfpURL: "https://ally", InteractionCount: 9},
		Persona:        "The Curator",
		Percentile:     "Top 20%",
	}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("не ожидали ошибку сериализации: %v", err)
	}

	var decoded UserStats
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("не ожидали ошибку десериализации: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("сводка изменилась после round-trip:\n%+v\n%+v", original, decoded)
	}

	// имена полей на проводе зафиксированы контрактом API
	for _, field := range []string{"\"fid\":", "\"displayName\":", "\"pfpUrl\":", "\"totalCasts\":", "\"castsInChannel\":", "\"closestFriend\":", "\"interactionCount\":", "\"percentile\":"} {
		if !strings.Contains(string(raw), field) {
			t.Fatalf("в JSON нет поля %s: %s", field, raw)
		}
	}
}
