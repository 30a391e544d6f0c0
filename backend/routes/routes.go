package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"finansy/backend/config"
	"finansy/backend/controllers"
	"finansy/backend/engine"
	"finansy/backend/middleware"
	"finansy/backend/storage"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	store := storage.NewGormStore(db)
	eng := engine.New(nil)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg, store, eng)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg, store, eng)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)

	// Quiz routes
	quizController := controllers.NewQuizController(db, cfg, store, eng)
	quiz := app.Group("/api/quiz", authMiddleware)
	quiz.Get("/categories", quizController.GetCategories)
	quiz.Get("/questions", quizController.GetQuestions)
	quiz.Post("/complete", quizController.CompleteQuiz)

	// Budget simulator routes
	budgetController := controllers.NewBudgetController(db, cfg, store, eng)
	app.Post("/api/budget/complete", authMiddleware, budgetController.CompleteSimulation)

	// Shop routes
	shopController := controllers.NewShopController(db, cfg, store, eng)
	shop := app.Group("/api/shop", authMiddleware)
	shop.Get("/", shopController.GetCatalog)
	shop.Post("/purchase", shopController.Purchase)
	shop.Put("/theme", shopController.SelectTheme)
	shop.Put("/avatar", shopController.SelectAvatar)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg, store, eng)
	progress := app.Group("/api/progress", authMiddleware)
	progress.Get("/daily", progressController.GetDailyTasks)
	progress.Get("/stats", progressController.GetStats)
	progress.Get("/activity", progressController.GetActivity)
}
