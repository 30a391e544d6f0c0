package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"finansy/backend/catalog"
	"finansy/backend/config"
	"finansy/backend/engine"
	"finansy/backend/models"
	"finansy/backend/storage"
	"finansy/backend/utils"
)

type QuizController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Store  storage.Store
	Engine *engine.Engine
}

func NewQuizController(db *gorm.DB, cfg *config.Config, store storage.Store, eng *engine.Engine) *QuizController {
	return &QuizController{DB: db, Cfg: cfg, Store: store, Engine: eng}
}

// GetCategories возвращает каталог категорий со статистикой пользователя.
func (qc *QuizController) GetCategories(c *fiber.Ctx) error {
	rec, found, err := qc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress record")
	}
	if !found {
		return utils.NotFound(c, "User not found")
	}

	var result []fiber.Map
	for _, info := range catalog.Categories() {
		stat := rec.CategoryScores[info.ID]
		result = append(result, fiber.Map{
			"id":       info.ID,
			"name":     info.Name,
			"icon":     info.Icon,
			"desc":     info.Desc,
			"played":   stat.Played,
			"avgScore": stat.AvgScore,
		})
	}
	return c.JSON(result)
}

// GetQuestions возвращает вопросы категории; mixed — случайная выборка.
func (qc *QuizController) GetQuestions(c *fiber.Ctx) error {
	category := models.QuizCategory(c.Query("category", string(models.CategoryMixed)))
	if !category.Valid() {
		return utils.BadRequest(c, "Unknown quiz category")
	}
	return c.JSON(catalog.QuestionsFor(category))
}

// CompleteQuiz принимает итог квиза и начисляет награды через движок.
func (qc *QuizController) CompleteQuiz(c *fiber.Ctx) error {
	var input struct {
		Score    int                 `json:"score"`
		Total    int                 `json:"total"`
		Category models.QuizCategory `json:"category"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	rec, found, err := qc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress record")
	}
	if !found {
		return utils.NotFound(c, "User not found")
	}

	updated, err := qc.Engine.CompleteQuiz(rec, input.Score, input.Total, input.Category)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if err := qc.Store.Save(updated); err != nil {
		return utils.InternalServerError(c, "Could not save progress record")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user":            updated,
		"coinsEarned":     updated.Coins - rec.Coins,
		"xpEarned":        updated.XP - rec.XP,
		"newAchievements": newAchievements(rec, updated),
	})
}

// newAchievements — достижения, открытые этой операцией.
func newAchievements(before, after models.ProgressRecord) []string {
	unlocked := []string{}
	for _, id := range after.Achievements {
		if !before.HasAchievement(id) {
			unlocked = append(unlocked, id)
		}
	}
	return unlocked
}
