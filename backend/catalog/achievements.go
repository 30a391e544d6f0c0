package catalog

import "finansy/backend/models"

// Achievements — отображаемые данные достижений в порядке показа.
// Условия открытия определяет движок прогресса.
func Achievements() []models.AchievementInfo {
	return []models.AchievementInfo{
		{ID: "first-quiz", Name: "Первый шаг", Desc: "Пройди первый квиз", Icon: "🎯"},
		{ID: "quiz-expert", Name: "Эксперт", Desc: "Пройди 10 квизов", Icon: "🏆"},
		{ID: "quiz-master", Name: "Мастер", Desc: "Пройди 50 квизов", Icon: "👑"},
		{ID: "perfectionist", Name: "Перфекционист", Desc: "5 идеальных результатов", Icon: "⭐"},
		{ID: "perfect-10", Name: "Безупречный", Desc: "10 идеальных результатов", Icon: "✨"},
		{ID: "rich", Name: "Богач", Desc: "Накопи 500 монет", Icon: "💰"},
		{ID: "millionaire", Name: "Миллионер", Desc: "Накопи 1000 монет", Icon: "💎"},
		{ID: "mega-rich", Name: "Мега-богач", Desc: "Накопи 2000 монет", Icon: "👑"},
		{ID: "level-5", Name: "Знаток", Desc: "Достигни 5 уровня", Icon: "🌟"},
		{ID: "level-10", Name: "Легенда", Desc: "Достигни 10 уровня", Icon: "🔥"},
		{ID: "streak-7", Name: "Неделя", Desc: "7 дней подряд", Icon: "📅"},
		{ID: "streak-30", Name: "Месяц", Desc: "30 дней подряд", Icon: "📆"},
	}
}
