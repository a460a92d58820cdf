package domain

// UserProfile описывает профиль пользователя Farcaster.
type UserProfile struct {
	FID            int64
	Username       string
	DisplayName    string
	PfpURL         string
	Bio            string
	FollowerCount  int
	FollowingCount int
}

// Channel описывает канал (сабкоммьюнити), к которому привязан каст.
type Channel struct {
	ID   string
	Name string
}

// MentionedProfile — минимальный профиль упомянутого в касте пользователя.
type MentionedProfile struct {
	FID         int64
	Username    string
	DisplayName string
	PfpURL      string
}

// Cast представляет единицу пользовательского контента с счётчиками реакций.
type Cast struct {
	Text              string
	Hash              string
	Likes             int
	Recasts           int
	Channel           *Channel
	MentionedProfiles []MentionedProfile
}

// TopChannel — самый активный канал пользователя.
type TopChannel struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CastsInChannel int    `json:"castsInChannel"`
}

// TopCast — каст с наибольшим числом лайков, текст усечён для показа.
type TopCast struct {
	Text    string `json:"text"`
	Likes   int    `json:"likes"`
	Recasts int    `json:"recasts"`
	Hash    string `json:"hash"`
}

// ClosestFriend — чаще всего упоминаемый контакт.
type ClosestFriend struct {
	FID              int64  `json:"fid"`
	Username         string `json:"username"`
	DisplayName      string `json:"displayName"`
	PfpURL           string `json:"pfpUrl"`
	InteractionCount int    `json:"interactionCount"`
}

// UserStats — итоговая сводка «год в обзоре» для одного пользователя.
// Создаётся заново на каждый запрос и после классификации не изменяется.
type UserStats struct {
	FID            int64         `json:"fid"`
	Username       string        `json:"username"`
	DisplayName    string        `json:"displayName"`
	PfpURL         string        `json:"pfpUrl"`
	Bio            string        `json:"bio"`
	FollowerCount  int           `json:"followerCount"`
	FollowingCount int           `json:"followingCount"`
	TotalCasts     int           `json:"totalCasts"`
	TotalLikes     int           `json:"totalLikes"`
	TopChannel     TopChannel    `json:"topChannel"`
	TopCast        TopCast       `json:"topCast"`
	ClosestFriend  ClosestFriend `json:"closestFriend"`
	Persona        string        `json:"persona"`
	Percentile     string        `json:"percentile"`
}
