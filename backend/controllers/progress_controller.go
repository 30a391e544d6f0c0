package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"finansy/backend/catalog"
	"finansy/backend/config"
	"finansy/backend/engine"
	"finansy/backend/models"
	"finansy/backend/storage"
	"finansy/backend/utils"
)

type ProgressController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Store  storage.Store
	Engine *engine.Engine
}

func NewProgressController(db *gorm.DB, cfg *config.Config, store storage.Store, eng *engine.Engine) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg, Store: store, Engine: eng}
}

// GetDailyTasks возвращает задания дня с признаками выполнения и
// состояние ежедневной серии.
func (pc *ProgressController) GetDailyTasks(c *fiber.Ctx) error {
	rec, found, err := pc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress record")
	}
	if !found {
		return utils.NotFound(c, "User not found")
	}

	tasks := make([]models.DailyTaskStatus, 0, 3)
	for _, info := range catalog.DailyTasks() {
		tasks = append(tasks, models.DailyTaskStatus{
			DailyTaskInfo: info,
			Completed:     rec.DailyTaskDone(info.ID),
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"tasks":             tasks,
		"dailyStreak":       rec.DailyStreak,
		"bestStreak":        rec.BestStreak,
		"streakBonusActive": rec.DailyStreak >= 3,
	})
}

// GetStats возвращает сводку, статистику категорий и достижения
// (открытые и закрытые) вместе с советом дня.
func (pc *ProgressController) GetStats(c *fiber.Ctx) error {
	rec, found, err := pc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress record")
	}
	if !found {
		return utils.NotFound(c, "User not found")
	}

	all := catalog.Achievements()
	var achievements []fiber.Map
	for _, info := range all {
		achievements = append(achievements, fiber.Map{
			"id":       info.ID,
			"name":     info.Name,
			"desc":     info.Desc,
			"icon":     info.Icon,
			"unlocked": rec.HasAchievement(info.ID),
		})
	}

	overview := models.ProgressOverview{
		TotalQuizzes:         rec.TotalQuizzes,
		PerfectScores:        rec.PerfectScores,
		Coins:                rec.Coins,
		Level:                rec.Level,
		XP:                   rec.XP,
		XPToNextLevel:        rec.Level*100 - rec.XP,
		XPProgress:           float64(rec.XP%100) / 100 * 100,
		DailyStreak:          rec.DailyStreak,
		BestStreak:           rec.BestStreak,
		AchievementsUnlocked: len(rec.Achievements),
		AchievementsTotal:    len(all),
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"overview":       overview,
		"categoryScores": rec.CategoryScores,
		"achievements":   achievements,
		"tipOfDay":       catalog.TipOfDay(time.Now()),
	})
}

// GetActivity возвращает историю входов за период.
func (pc *ProgressController) GetActivity(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days", "7")) // По умолчанию за последние 7 дней
	if days < 1 {
		days = 7
	}

	var logins []models.LoginEvent
	if err := pc.DB.Where("login_time >= ?", time.Now().AddDate(0, 0, -days)).
		Order("login_time DESC").
		Find(&logins).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch login history")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"logins":      logins,
		"period_days": days,
	})
}
