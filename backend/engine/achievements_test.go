package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finansy/backend/models"
)

func TestAchievementUnlockAwardsCoins(t *testing.T) {
	eng := New(fixedClock("2026-03-10"))
	rec := baseRecord()
	rec.TotalQuizzes = 9

	updated, err := eng.CompleteQuiz(rec, 0, 10, models.CategoryBasics)
	require.NoError(t, err)

	assert.True(t, updated.HasAchievement("quiz-expert"))
	// ноль очков: только бонус достижения
	assert.Equal(t, rec.Coins+AchievementReward, updated.Coins)
}

// Счётчиковые вехи сравниваются на точное равенство: перескочивший их
// счётчик оставляет достижение закрытым навсегда. Поведение исходной
// версии, сохранено намеренно.
func TestExactCountMilestoneCanBeMissed(t *testing.T) {
	eng := New(fixedClock("2026-03-10"))
	rec := baseRecord()
	rec.TotalQuizzes = 10 // веха уже перескочена, quiz-expert не открыт

	updated, err := eng.CompleteQuiz(rec, 0, 10, models.CategoryBasics)
	require.NoError(t, err)

	assert.Equal(t, 11, updated.TotalQuizzes)
	assert.False(t, updated.HasAchievement("quiz-expert"))
}

// Пороговые вехи используют >= и пропущены быть не могут.
func TestThresholdMilestonesUseAtLeast(t *testing.T) {
	eng := New(fixedClock("2026-03-10"))
	rec := baseRecord()
	rec.Coins = 700 // уже больше 500, rich ещё не открыт

	updated, err := eng.CompleteQuiz(rec, 0, 10, models.CategoryBasics)
	require.NoError(t, err)
	assert.True(t, updated.HasAchievement("rich"))
}

// Условия прохода вычисляются по снимку записи до начисления бонусов:
// +50 за «rich» не должен открывать «millionaire» в том же проходе.
func TestAwardsDoNotCascadeWithinOnePass(t *testing.T) {
	eng := New(fixedClock("2026-03-10"))
	rec := baseRecord()
	rec.Coins = 960

	// 2/10: +20 монет, снимок 980 — rich открыт, millionaire нет
	updated, err := eng.CompleteQuiz(rec, 2, 10, models.CategoryBasics)
	require.NoError(t, err)

	assert.True(t, updated.HasAchievement("rich"))
	assert.False(t, updated.HasAchievement("millionaire"))
	assert.Greater(t, updated.Coins, 1000) // на следующем событии millionaire откроется

	next := eng.CompleteBudgetSimulation(updated)
	assert.True(t, next.HasAchievement("millionaire"))
}

func TestAchievementsAppendOnlyAndUnique(t *testing.T) {
	eng := New(fixedClock("2026-03-10"))
	rec := baseRecord()
	rec.Coins = 600

	updated, err := eng.CompleteQuiz(rec, 5, 10, models.CategoryBasics)
	require.NoError(t, err)
	assert.True(t, updated.HasAchievement("rich"))

	// Повторные события не дублируют достижение и не платят второй раз
	again, err := eng.CompleteQuiz(updated, 5, 10, models.CategoryBasics)
	require.NoError(t, err)

	count := 0
	for _, id := range again.Achievements {
		if id == "rich" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Contains(t, again.Achievements, "first-quiz") // ранее открытые сохраняются
}

func TestLevelMilestones(t *testing.T) {
	eng := New(fixedClock("2026-03-10"))
	rec := baseRecord()
	rec.XP = 480 // уровень 5 после любого прироста XP

	updated := eng.CompleteBudgetSimulation(rec)
	assert.Equal(t, 6, updated.Level)
	assert.True(t, updated.HasAchievement("level-5"))
	assert.False(t, updated.HasAchievement("level-10"))
}

func TestAchievementTableMatchesCatalogOrder(t *testing.T) {
	want := []string{
		"first-quiz", "quiz-expert", "quiz-master",
		"perfectionist", "perfect-10",
		"rich", "millionaire", "mega-rich",
		"level-5", "level-10",
		"streak-7", "streak-30",
	}
	got := make([]string, 0, len(achievementChecks))
	for _, check := range achievementChecks {
		got = append(got, check.ID)
	}
	assert.Equal(t, want, got)
}
