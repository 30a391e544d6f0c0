package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"finansy/backend/config"
	"finansy/backend/engine"
	"finansy/backend/storage"
	"finansy/backend/utils"
)

type BudgetController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Store  storage.Store
	Engine *engine.Engine
}

func NewBudgetController(db *gorm.DB, cfg *config.Config, store storage.Store, eng *engine.Engine) *BudgetController {
	return &BudgetController{DB: db, Cfg: cfg, Store: store, Engine: eng}
}

// CompleteSimulation начисляет фиксированную награду за прохождение
// бюджетного симулятора. Симулятор присылает только сигнал завершения.
func (bc *BudgetController) CompleteSimulation(c *fiber.Ctx) error {
	rec, found, err := bc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress record")
	}
	if !found {
		return utils.NotFound(c, "User not found")
	}

	updated := bc.Engine.CompleteBudgetSimulation(rec)

	if err := bc.Store.Save(updated); err != nil {
		return utils.InternalServerError(c, "Could not save progress record")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user":            updated,
		"coinsEarned":     updated.Coins - rec.Coins,
		"xpEarned":        updated.XP - rec.XP,
		"newAchievements": newAchievements(rec, updated),
	})
}
