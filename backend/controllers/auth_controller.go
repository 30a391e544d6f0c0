package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"finansy/backend/config"
	"finansy/backend/engine"
	"finansy/backend/models"
	"finansy/backend/storage"
	"finansy/backend/utils"
)

type AuthController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Store  storage.Store
	Engine *engine.Engine
}

func NewAuthController(db *gorm.DB, cfg *config.Config, store storage.Store, eng *engine.Engine) *AuthController {
	return &AuthController{DB: db, Cfg: cfg, Store: store, Engine: eng}
}

// Login открывает сессию локального пользователя устройства.
// Если записи прогресса нет — создаёт её (имя минимум 3 символа).
// Если запись есть — возвращает её независимо от присланного имени
// (одна запись на устройство) и сверяет ежедневную серию.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	rec, found, err := ac.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress record")
	}

	created := false
	if found {
		rec = ac.Engine.ReconcileDailyStreak(rec)
	} else {
		rec, err = ac.Engine.Initialize(input.Username)
		if err != nil {
			if errors.Is(err, engine.ErrNameTooShort) {
				return utils.ValidationError(c, "Имя должно быть минимум 3 символа")
			}
			return utils.InternalServerError(c, "Could not create progress record")
		}
		created = true
	}

	if err := ac.Store.Save(rec); err != nil {
		return utils.InternalServerError(c, "Could not save progress record")
	}

	// История входов для экрана активности
	ac.DB.Create(&models.LoginEvent{Username: rec.Username, LoginTime: time.Now()})

	token, err := utils.GenerateSessionToken(rec.Username, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"created": created,
		"user":    rec,
	})
}
