package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"finansy/backend/catalog"
	"finansy/backend/config"
	"finansy/backend/engine"
	"finansy/backend/storage"
	"finansy/backend/utils"
)

type UserController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Store  storage.Store
	Engine *engine.Engine
}

func NewUserController(db *gorm.DB, cfg *config.Config, store storage.Store, eng *engine.Engine) *UserController {
	return &UserController{DB: db, Cfg: cfg, Store: store, Engine: eng}
}

// GetProfile возвращает запись прогресса и рассчитанный прогресс уровня.
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	rec, found, err := uc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress record")
	}
	if !found {
		return utils.NotFound(c, "User not found")
	}

	theme, ok := catalog.ThemeByID(rec.Theme)
	if !ok {
		theme, _ = catalog.ThemeByID("default")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user":          rec,
		"theme":         theme,
		"xpToNextLevel": rec.Level*100 - rec.XP,
		"xpProgress":    float64(rec.XP%100) / 100 * 100,
	})
}
