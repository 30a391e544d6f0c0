package engine

import "finansy/backend/models"

// AchievementReward — разовый бонус монет за каждое открытое достижение.
const AchievementReward = 50

type achievementCheck struct {
	ID  string
	Met func(models.ProgressRecord) bool
}

// Таблица достижений в фиксированном порядке проверки. Счётчики квизов
// и идеальных результатов сравниваются на точное равенство: достижение
// можно навсегда пропустить, если точное значение перескочено пакетным
// обновлением. Это поведение исходной версии, менять его без решения
// владельцев продукта нельзя. Пороговые условия (монеты, уровень,
// серия) используют >= и пропущены быть не могут.
var achievementChecks = []achievementCheck{
	{"first-quiz", func(r models.ProgressRecord) bool { return r.TotalQuizzes == 1 }},
	{"quiz-expert", func(r models.ProgressRecord) bool { return r.TotalQuizzes == 10 }},
	{"quiz-master", func(r models.ProgressRecord) bool { return r.TotalQuizzes == 50 }},
	{"perfectionist", func(r models.ProgressRecord) bool { return r.PerfectScores == 5 }},
	{"perfect-10", func(r models.ProgressRecord) bool { return r.PerfectScores == 10 }},
	{"rich", func(r models.ProgressRecord) bool { return r.Coins >= 500 }},
	{"millionaire", func(r models.ProgressRecord) bool { return r.Coins >= 1000 }},
	{"mega-rich", func(r models.ProgressRecord) bool { return r.Coins >= 2000 }},
	{"level-5", func(r models.ProgressRecord) bool { return r.Level >= 5 }},
	{"level-10", func(r models.ProgressRecord) bool { return r.Level >= 10 }},
	{"streak-7", func(r models.ProgressRecord) bool { return r.DailyStreak >= 7 }},
	{"streak-30", func(r models.ProgressRecord) bool { return r.DailyStreak >= 30 }},
}

// applyAchievements открывает все условия, выполненные к текущему моменту.
// Условия вычисляются по снимку записи до начисления бонусов прохода:
// +50 монет за «rich» не открывает «millionaire» в том же проходе.
func (e *Engine) applyAchievements(rec *models.ProgressRecord) {
	snapshot := *rec
	for _, check := range achievementChecks {
		if check.Met(snapshot) && !rec.HasAchievement(check.ID) {
			rec.Achievements = append(rec.Achievements, check.ID)
			rec.Coins += AchievementReward
		}
	}
}
