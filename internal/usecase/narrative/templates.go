package narrative

import (
	"fmt"

	"fc-wrapped/internal/domain"
)

// Template описывает один слот повествования: вступительный текст без
// статистики, число авторских вариантов фразы и признак динамической фразы,
// которая всегда перекрывает выбор варианта.
type Template struct {
	Base     string
	Variants int
	Dynamic  bool
}

// Slot связывает идентификатор слота с его сидом выбора варианта.
type Slot struct {
	ID   string
	Seed int64
}

// Slots перечисляет слоты в порядке показа слайдов.
var Slots = []Slot{
	{ID: "awakening", Seed: 1},
	{ID: "journey", Seed: 2},
	{ID: "voice", Seed: 3},
	{ID: "nakama", Seed: 4},
	{ID: "power", Seed: 5},
	{ID: "persona", Seed: 6},
}

// templates — неизменяемая таблица слотов, заполняется один раз при старте.
var templates = map[string]Template{
	"awakening": {
		Base:     "In the year 2025, among millions of voices in the decentralized cosmos, only a few truly made their mark...",
		Variants: 3,
		Dynamic:  true,
	},
	"journey": {
		Base:     "Every wanderer finds a place to call home. Through countless channels, your path led you to where you truly belong...",
		Variants: 3,
		Dynamic:  true,
	},
	"voice": {
		Base:     "Sometimes, a single message can move mountains. Your words found their way into the hearts of many...",
		Variants: 3,
		Dynamic:  true,
	},
	"nakama": {
		Base:     "No hero walks alone. In the digital realm, true bonds are forged through shared moments and meaningful exchanges...",
		Variants: 3,
		Dynamic:  true,
	},
	"power": {
		Base:     "True power isn't measured in tokens alone. It's measured in the community you've built and the trust you've earned...",
		Variants: 3,
		Dynamic:  true,
	},
	"persona": {
		Base:     "After all your adventures, this is who you truly are...",
		Variants: 3,
		Dynamic:  true,
	},
}

// renderDynamic отрисовывает динамическую фразу слота.
func renderDynamic(slotID string, s domain.UserStats) string {
	switch slotID {
	case "awakening":
		return fmt.Sprintf("You emerged as **%s** of all Farcaster users. In a world of endless noise, your voice broke through. This is where your story begins.", s.Percentile)
	case "journey":
		return fmt.Sprintf("Your journey led you to **/%s**. With **%d** casts in this sanctuary, you've become part of something bigger than yourself.", s.TopChannel.ID, s.TopChannel.CastsInChannel)
	case "voice":
		return fmt.Sprintf("Your most beloved cast touched **%d** hearts. In the endless scroll of content, your words made people stop, think, and feel. That's true impact.", s.TopCast.Likes)
	case "nakama":
		return fmt.Sprintf("Your closest ally is **@%s**. Through **%d** conversations, you've proven that even in web3, human connection is what matters most.", s.ClosestFriend.Username, s.ClosestFriend.InteractionCount)
	case "power":
		return fmt.Sprintf("**%d** followers have chosen to walk alongside you. You follow **%d** builders you admire. Together, you're shaping the future of social.", s.FollowerCount, s.FollowingCount)
	case "persona":
		return fmt.Sprintf("You are **%s**. %s Your journey in 2025 has been extraordinary - and this is only the beginning of your story.", s.Persona, bioOr(s, "A unique force in the Farcaster ecosystem."))
	default:
		return ""
	}
}

// renderVariant отрисовывает авторскую фразу слота по индексу варианта.
func renderVariant(slotID string, index int, s domain.UserStats) string {
	switch slotID {
	case "awakening":
		switch index {
		case 0:
			return fmt.Sprintf("In the vast ocean of Farcaster, you emerged as **%s**. With **%d** casts, you've carved your name into the protocol's history.", s.Percentile, s.TotalCasts)
		case 1:
			return fmt.Sprintf("Your presence resonates across the network - **%d** casts, **%d** souls who believe in your vision. This is your awakening.", s.TotalCasts, s.FollowerCount)
		default:
			return fmt.Sprintf("Among the elite **%s**, you've risen above the noise. Every cast was a step toward greatness.", s.Percentile)
		}
	case "journey":
		switch index {
		case 0:
			return fmt.Sprintf("Your sanctuary is **/%s** - a place where **%d** of your thoughts found a home. This channel became your digital village.", s.TopChannel.ID, s.TopChannel.CastsInChannel)
		case 1:
			return fmt.Sprintf("In **/%s**, you've found your tribe. **%d** casts later, this community knows your name and welcomes your voice.", s.TopChannel.ID, s.TopChannel.CastsInChannel)
		default:
			return fmt.Sprintf("**/%s** is where your heart beats strongest - **%d** moments of connection, laughter, and shared dreams.", s.TopChannel.ID, s.TopChannel.CastsInChannel)
		}
	case "voice":
		switch index {
		case 0:
			return fmt.Sprintf("**%d** hearts resonated with your most powerful message. In that moment, strangers became friends, and your voice echoed across the decentralized realm.", s.TopCast.Likes)
		case 1:
			return fmt.Sprintf("Your voice reached **%d** souls, and **%d** chose to amplify your words. Some messages are meant to travel far.", s.TopCast.Likes, s.TopCast.Recasts)
		default:
			return fmt.Sprintf("One cast, **%d** connections made. This is the power of authentic expression - your legacy in 280 characters or less.", s.TopCast.Likes)
		}
	case "nakama":
		switch index {
		case 0:
			return fmt.Sprintf("**@%s** - your closest ally in this journey. Through **%d** conversations, you've built a friendship that transcends the blockchain.", s.ClosestFriend.Username, s.ClosestFriend.InteractionCount)
		case 1:
			return fmt.Sprintf("In **@%s**, you found your nakama - a true companion. **%d** moments of connection, support, and shared adventures.", s.ClosestFriend.Username, s.ClosestFriend.InteractionCount)
		default:
			return fmt.Sprintf("**@%s** knows your journey better than most. **%d** exchanges of trust, laughter, and mutual respect.", s.ClosestFriend.Username, s.ClosestFriend.InteractionCount)
		}
	case "power":
		switch index {
		case 0:
			return fmt.Sprintf("**%d** followers trust your vision and await your next thought. You follow **%d** builders, learning and growing together.", s.FollowerCount, s.FollowingCount)
		case 1:
			return fmt.Sprintf("Your influence spans **%d** connections - each one a person who chose to hear your voice. You're connected to **%d** brilliant minds.", s.FollowerCount, s.FollowingCount)
		default:
			return fmt.Sprintf("**%d** believe in your journey. In return, you believe in **%d** others. This is the network effect of trust.", s.FollowerCount, s.FollowingCount)
		}
	case "persona":
		switch index {
		case 0:
			return fmt.Sprintf("You are **%s** - %s", s.Persona, bioOr(s, "forever building, forever learning."))
		case 1:
			return fmt.Sprintf("**%s** is your essence. %s", s.Persona, bioOr(s, "Your story continues..."))
		default:
			return fmt.Sprintf("The world knows you as **%s**. %s", s.Persona, bioOr(s, "And that's just the beginning."))
		}
	default:
		return ""
	}
}

func bioOr(s domain.UserStats, fallback string) string {
	if s.Bio != "" {
		return s.Bio
	}
	return fallback
}
