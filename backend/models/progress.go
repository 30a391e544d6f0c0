package models

// ProgressOverview — сводка для экрана статистики.
type ProgressOverview struct {
	TotalQuizzes         int     `json:"totalQuizzes"`
	PerfectScores        int     `json:"perfectScores"`
	Coins                int     `json:"coins"`
	Level                int     `json:"level"`
	XP                   int     `json:"xp"`
	XPToNextLevel        int     `json:"xpToNextLevel"`
	XPProgress           float64 `json:"xpProgress"`
	DailyStreak          int     `json:"dailyStreak"`
	BestStreak           int     `json:"bestStreak"`
	AchievementsUnlocked int     `json:"achievementsUnlocked"`
	AchievementsTotal    int     `json:"achievementsTotal"`
}

// DailyTaskStatus — задание дня с признаком выполнения.
type DailyTaskStatus struct {
	DailyTaskInfo
	Completed bool `json:"completed"`
}
