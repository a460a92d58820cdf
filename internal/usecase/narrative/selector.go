package narrative

import (
	"math"

	"fc-wrapped/internal/domain"
)

// SeededRandom отображает целый сид в детерминированное число из [0,1).
// Формула frac(sin(seed)*10000) намеренно слабая: её единственное назначение —
// стабильный выбор фразы на пользователя. Не заменять криптографическим
// генератором и не использовать там, где важна непредсказуемость.
func SeededRandom(seed int64) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// variantIndex выбирает индекс варианта для пары (сид слота, FID).
func variantIndex(slotSeed, fid int64, variants int) int {
	return int(math.Floor(SeededRandom(slotSeed+fid) * float64(variants)))
}

// Dialogue возвращает текст слота для пользователя. Без статистики отдаётся
// вступительный текст слота; динамическая фраза всегда перекрывает выбор
// варианта. Для фиксированных (слот, FID) результат всегда один и тот же.
func Dialogue(slotID string, stats *domain.UserStats, slotSeed int64) string {
	template, ok := templates[slotID]
	if !ok {
		return ""
	}
	if stats == nil {
		return template.Base
	}
	if template.Dynamic {
		return renderDynamic(slotID, *stats)
	}
	return renderVariant(slotID, variantIndex(slotSeed, stats.FID, template.Variants), *stats)
}

// Dialogues строит реплики всех слотов в порядке показа.
func Dialogues(stats *domain.UserStats) map[string]string {
	out := make(map[string]string, len(Slots))
	for _, slot := range Slots {
		out[slot.ID] = Dialogue(slot.ID, stats, slot.Seed)
	}
	return out
}
