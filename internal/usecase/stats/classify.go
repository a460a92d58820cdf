package stats

import "fc-wrapped/internal/domain"

// DeterminePersona подбирает архетип пользователя по активности.
// Порядок правил фиксирован: срабатывает первое подходящее.
func DeterminePersona(s domain.UserStats) string {
	switch {
	case s.TotalCasts > 1000 && s.FollowerCount > 5000:
		return "The Legend"
	case s.TotalCasts > 500 && s.TotalLikes > 1000:
		return "The Influencer"
	case s.FollowerCount > 10000:
		return "The Celebrity"
	case s.TotalCasts > 500:
		return "The Builder"
	case s.TotalLikes > 500:
		return "The Curator"
	case s.TotalCasts > 100:
		return "The Active One"
	case s.FollowerCount > 1000:
		return "The Rising Star"
	default:
		return "The Explorer"
	}
}

// CalculatePercentile переводит взвешенный скор активности в полосу.
// Это эвристика с фиксированными порогами, а не настоящий перцентиль.
func CalculatePercentile(s domain.UserStats) string {
	score := float64(s.TotalCasts)*2 + float64(s.TotalLikes) + float64(s.FollowerCount)*0.1
	switch {
	case score > 5000:
		return "Top 1%"
	case score > 2000:
		return "Top 5%"
	case score > 1000:
		return "Top 10%"
	case score > 500:
		return "Top 20%"
	case score > 200:
		return "Top 30%"
	default:
		return "Top 50%"
	}
}
