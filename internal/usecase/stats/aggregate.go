package stats

import (
	"fc-wrapped/internal/domain"
)

const topCastTextLimit = 100

// defaultTopChannel используется, когда ни один каст не привязан к каналу.
var defaultTopChannel = domain.TopChannel{ID: "farcaster", Name: "Farcaster"}

// fallbackFriend возвращается, когда в кастах нет ни одного упоминания.
var fallbackFriend = domain.ClosestFriend{
	FID:         3,
	Username:    "dwr.eth",
	DisplayName: "Dan Romero",
	PfpURL:      "https://i.imgur.com/Y3Oszaz.jpg",
}

type channelTally struct {
	name  string
	count int
}

type mentionTally struct {
	profile domain.MentionedProfile
	count   int
}

// Aggregate строит сводку за один проход по кастам. При равенстве лайков
// топ-кастом остаётся увиденный раньше; то же правило действует для каналов
// и упоминаний при финальном выборе максимума.
func Aggregate(profile domain.UserProfile, casts []domain.Cast) domain.UserStats {
	totalLikes := 0
	var topCast *domain.Cast
	if len(casts) > 0 {
		topCast = &casts[0]
	}

	channelCounts := make(map[string]*channelTally)
	channelOrder := make([]string, 0)
	mentionCounts := make(map[int64]*mentionTally)
	mentionOrder := make([]int64, 0)

	for i := range casts {
		cast := &casts[i]
		totalLikes += cast.Likes

		if cast.Likes > topCast.Likes {
			topCast = cast
		}

		if cast.Channel != nil && cast.Channel.ID != "" {
			tally, ok := channelCounts[cast.Channel.ID]
			if !ok {
				// имя запоминаем при первой встрече и больше не обновляем
				name := cast.Channel.Name
				if name == "" {
					name = cast.Channel.ID
				}
				tally = &channelTally{name: name}
				channelCounts[cast.Channel.ID] = tally
				channelOrder = append(channelOrder, cast.Channel.ID)
			}
			tally.count++
		}

		for _, mention := range cast.MentionedProfiles {
			tally, ok := mentionCounts[mention.FID]
			if !ok {
				tally = &mentionTally{profile: mention}
				mentionCounts[mention.FID] = tally
				mentionOrder = append(mentionOrder, mention.FID)
			}
			tally.count++
		}
	}

	topChannel := defaultTopChannel
	for _, id := range channelOrder {
		if tally := channelCounts[id]; tally.count > topChannel.CastsInChannel {
			topChannel = domain.TopChannel{ID: id, Name: tally.name, CastsInChannel: tally.count}
		}
	}

	closestFriend := fallbackFriend
	maxInteractions := 0
	for _, fid := range mentionOrder {
		if tally := mentionCounts[fid]; tally.count > maxInteractions {
			maxInteractions = tally.count
			closestFriend = domain.ClosestFriend{
				FID:              fid,
				Username:         tally.profile.Username,
				DisplayName:      tally.profile.DisplayName,
				PfpURL:           tally.profile.PfpURL,
				InteractionCount: tally.count,
			}
		}
	}

	result := domain.UserStats{
		FID:            profile.FID,
		Username:       profile.Username,
		DisplayName:    profile.DisplayName,
		PfpURL:         profile.PfpURL,
		Bio:            profile.Bio,
		FollowerCount:  profile.FollowerCount,
		FollowingCount: profile.FollowingCount,
		TotalCasts:     len(casts),
		TotalLikes:     totalLikes,
		TopChannel:     topChannel,
		TopCast:        displayTopCast(topCast),
		ClosestFriend:  closestFriend,
	}
	result.Persona = DeterminePersona(result)
	result.Percentile = CalculatePercentile(result)
	return result
}

// displayTopCast готовит топ-каст к выдаче: текст усекается ровно один раз,
// на выходе; внутри прохода каст хранится с полным текстом.
func displayTopCast(cast *domain.Cast) domain.TopCast {
	if cast == nil {
		return domain.TopCast{}
	}
	return domain.TopCast{
		Text:    truncateText(cast.Text, topCastTextLimit),
		Likes:   cast.Likes,
		Recasts: cast.Recasts,
		Hash:    cast.Hash,
	}
}

func truncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
