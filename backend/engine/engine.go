package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finansy/backend/models"
)

// Награды за активности.
const (
	StartingCoins = 100

	coinsPerCorrect = 10
	xpPerCorrect    = 5

	perfectBonusCoins = 50
	perfectBonusXP    = 25
	goodBonusCoins    = 20
	goodBonusXP       = 10
	goodThreshold     = 80.0

	streakBonusFrom     = 3
	streakBonusPerDay   = 5
	budgetRewardCoins   = 75
	budgetRewardXP      = 30
	dailyTaskBonusCoins = 25
)

var ErrNameTooShort = errors.New("name must be at least 3 characters")

// Engine применяет правила наград к записи прогресса. Движок не хранит
// состояние; текущее время инжектируется, чтобы тесты могли управлять
// границами суток.
type Engine struct {
	now func() time.Time
}

func New(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

func (e *Engine) today() string {
	return e.now().Format(models.DateLayout)
}

// Initialize создаёт новую запись со стартовыми значениями.
func (e *Engine) Initialize(username string) (models.ProgressRecord, error) {
	username = strings.TrimSpace(username)
	if len([]rune(username)) < 3 {
		return models.ProgressRecord{}, ErrNameTooShort
	}

	rec := models.ProgressRecord{
		Username:            username,
		Avatar:              "👤",
		Coins:               StartingCoins,
		Level:               1,
		CategoryScores:      make(map[models.QuizCategory]models.CategoryStat, 5),
		Achievements:        []string{},
		PurchasedItems:      []string{},
		Theme:               "default",
		DailyStreak:         1,
		BestStreak:          1,
		LastLogin:           e.today(),
		DailyTasksCompleted: []string{},
	}
	rec.EnsureCategoryScores()
	return rec, nil
}

// ReconcileDailyStreak вызывается один раз в начале сессии, до любых
// других мутаций. Сравнение идёт по календарным суткам устройства,
// время дня игнорируется.
func (e *Engine) ReconcileDailyStreak(rec models.ProgressRecord) models.ProgressRecord {
	today := e.today()
	if rec.LastLogin == today {
		return rec
	}

	rec = rec.Clone()
	last, err := time.Parse(models.DateLayout, rec.LastLogin)
	switch {
	case err == nil && last.AddDate(0, 0, 1).Format(models.DateLayout) == today:
		rec.DailyStreak++
	default:
		// Разрыв в 2+ дня, дата в будущем или нечитаемая — серия прервана.
		rec.DailyStreak = 1
	}
	if rec.DailyStreak > rec.BestStreak {
		rec.BestStreak = rec.DailyStreak
	}
	rec.LastLogin = today
	rec.DailyTasksCompleted = []string{}
	e.applyAchievements(&rec)
	return rec
}

// CompleteQuiz начисляет награды за завершённый квиз и обновляет
// статистику категории.
func (e *Engine) CompleteQuiz(rec models.ProgressRecord, score, total int, category models.QuizCategory) (models.ProgressRecord, error) {
	if total <= 0 {
		return rec, fmt.Errorf("invalid quiz result: total must be positive, got %d", total)
	}
	if score < 0 || score > total {
		return rec, fmt.Errorf("invalid quiz result: score %d out of range [0, %d]", score, total)
	}
	if !category.Valid() {
		return rec, fmt.Errorf("unknown quiz category %q", category)
	}

	rec = rec.Clone()
	percentage := float64(score) / float64(total) * 100
	perfect := score == total

	rec.Coins += score * coinsPerCorrect
	rec.XP += score * xpPerCorrect
	switch {
	case perfect:
		rec.Coins += perfectBonusCoins
		rec.XP += perfectBonusXP
	case percentage >= goodThreshold:
		rec.Coins += goodBonusCoins
		rec.XP += goodBonusXP
	}
	if rec.DailyStreak >= streakBonusFrom {
		rec.Coins += rec.DailyStreak * streakBonusPerDay
	}

	rec.TotalQuizzes++
	if perfect {
		rec.PerfectScores++
	}

	rec.EnsureCategoryScores()
	stat := rec.CategoryScores[category]
	stat.AvgScore = (stat.AvgScore*float64(stat.Played) + percentage) / float64(stat.Played+1)
	stat.Played++
	rec.CategoryScores[category] = stat

	rec.Level = levelForXP(rec.XP)

	e.applyAchievements(&rec)
	e.applyDailyTask(&rec, models.TaskQuiz)
	if perfect {
		e.applyDailyTask(&rec, models.TaskPerfect)
	}
	return rec, nil
}

// CompleteBudgetSimulation начисляет фиксированную награду за симулятор.
func (e *Engine) CompleteBudgetSimulation(rec models.ProgressRecord) models.ProgressRecord {
	rec = rec.Clone()
	rec.Coins += budgetRewardCoins
	rec.XP += budgetRewardXP
	rec.Level = levelForXP(rec.XP)
	e.applyDailyTask(&rec, models.TaskBudget)
	e.applyAchievements(&rec)
	return rec
}

// Purchase списывает монеты за предмет. При нехватке монет запись не
// меняется. Повторная покупка того же предмета на уровне движка разрешена.
func (e *Engine) Purchase(rec models.ProgressRecord, itemID string, cost int) (models.ProgressRecord, bool) {
	if rec.Coins < cost {
		return rec, false
	}
	rec = rec.Clone()
	rec.Coins -= cost
	rec.PurchasedItems = append(rec.PurchasedItems, itemID)
	return rec, true
}

func (e *Engine) SetTheme(rec models.ProgressRecord, theme string) models.ProgressRecord {
	rec = rec.Clone()
	rec.Theme = theme
	return rec
}

func (e *Engine) SetAvatar(rec models.ProgressRecord, avatar string) models.ProgressRecord {
	rec = rec.Clone()
	rec.Avatar = avatar
	return rec
}

// applyDailyTask начисляет бонус за задание дня. Идемпотентно в пределах
// суток: повторное выполнение того же задания бонуса не даёт.
func (e *Engine) applyDailyTask(rec *models.ProgressRecord, taskID string) {
	switch taskID {
	case models.TaskQuiz, models.TaskBudget, models.TaskPerfect:
	default:
		return
	}
	if rec.DailyTaskDone(taskID) {
		return
	}
	rec.DailyTasksCompleted = append(rec.DailyTasksCompleted, taskID)
	rec.Coins += dailyTaskBonusCoins
}

func levelForXP(xp int) int {
	return xp/100 + 1
}
