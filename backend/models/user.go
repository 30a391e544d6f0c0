package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizCategory — тематическая группа вопросов квиза.
type QuizCategory string

const (
	CategoryBasics    QuizCategory = "basics"
	CategorySaving    QuizCategory = "saving"
	CategoryBudget    QuizCategory = "budget"
	CategoryInvesting QuizCategory = "investing"
	CategoryMixed     QuizCategory = "mixed"
)

// QuizCategories returns the five supported categories in display order.
func QuizCategories() []QuizCategory {
	return []QuizCategory{CategoryMixed, CategoryBasics, CategorySaving, CategoryBudget, CategoryInvesting}
}

func (c QuizCategory) Valid() bool {
	switch c {
	case CategoryBasics, CategorySaving, CategoryBudget, CategoryInvesting, CategoryMixed:
		return true
	}
	return false
}

// Идентификаторы ежедневных заданий.
const (
	TaskQuiz    = "quiz"
	TaskBudget  = "budget"
	TaskPerfect = "perfect"
)

// DateLayout — календарная дата без времени, локальная для устройства.
const DateLayout = "2006-01-02"

type CategoryStat struct {
	Played   int     `json:"played"`
	AvgScore float64 `json:"avgScore"`
}

// ProgressRecord — единственная запись прогресса пользователя на устройстве.
// Level всегда выводится из XP и пересчитывается при каждой мутации.
type ProgressRecord struct {
	Username            string                        `json:"username"`
	Avatar              string                        `json:"avatar"`
	Coins               int                           `json:"coins"`
	TotalQuizzes        int                           `json:"totalQuizzes"`
	PerfectScores       int                           `json:"perfectScores"`
	BestStreak          int                           `json:"bestStreak"`
	Level               int                           `json:"level"`
	XP                  int                           `json:"xp"`
	CategoryScores      map[QuizCategory]CategoryStat `json:"categoryScores"`
	Achievements        []string                      `json:"achievements"`
	PurchasedItems      []string                      `json:"purchasedItems"`
	Theme               string                        `json:"theme"`
	DailyStreak         int                           `json:"dailyStreak"`
	LastLogin           string                        `json:"lastLogin"`
	DailyTasksCompleted []string                      `json:"dailyTasksCompleted"`
}

// Clone возвращает глубокую копию записи, чтобы движок оставался чистым.
func (r ProgressRecord) Clone() ProgressRecord {
	out := r
	if r.CategoryScores != nil {
		out.CategoryScores = make(map[QuizCategory]CategoryStat, len(r.CategoryScores))
		for k, v := range r.CategoryScores {
			out.CategoryScores[k] = v
		}
	}
	out.Achievements = cloneStrings(r.Achievements)
	out.PurchasedItems = cloneStrings(r.PurchasedItems)
	out.DailyTasksCompleted = cloneStrings(r.DailyTasksCompleted)
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func (r ProgressRecord) HasAchievement(id string) bool {
	for _, a := range r.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

func (r ProgressRecord) DailyTaskDone(id string) bool {
	for _, t := range r.DailyTasksCompleted {
		if t == id {
			return true
		}
	}
	return false
}

// EnsureCategoryScores дозаполняет статистику по категориям нулями —
// записи, сохранённые старыми версиями, загружаются без миграции схемы.
func (r *ProgressRecord) EnsureCategoryScores() {
	if r.CategoryScores == nil {
		r.CategoryScores = make(map[QuizCategory]CategoryStat, 5)
	}
	for _, c := range QuizCategories() {
		if _, ok := r.CategoryScores[c]; !ok {
			r.CategoryScores[c] = CategoryStat{}
		}
	}
}

// ProgressSnapshot — строка хранилища «ключ-значение» с сериализованной записью.
type ProgressSnapshot struct {
	gorm.Model
	Key  string `gorm:"uniqueIndex;not null"`
	Data string `gorm:"not null"`
}

type LoginEvent struct {
	gorm.Model
	Username  string
	LoginTime time.Time
}
