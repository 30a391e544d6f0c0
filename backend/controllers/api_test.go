package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"finansy/backend/config"
	"finansy/backend/models"
	"finansy/backend/routes"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:  "testsecret",
		ServerPort: "8080",
	}

	// именованная in-memory база на тест: пул соединений gorm не должен
	// раздавать соединениям разные пустые базы
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ProgressSnapshot{}, &models.LoginEvent{}))

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &parsed))
	}
	return resp, parsed
}

func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{"username": username})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginCreatesRecord(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{"username": "Алексей"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.NotEmpty(t, body["token"])
	assert.Equal(t, true, body["created"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Алексей", user["username"])
	assert.EqualValues(t, 100, user["coins"])
	assert.EqualValues(t, 1, user["level"])
	assert.EqualValues(t, 1, user["dailyStreak"])
}

func TestLoginShortNameRejected(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{"username": "ab"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Имя должно быть минимум 3 символа", body["message"])

	// запись не создана: повторный корректный вход создаёт новую
	_, body = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{"username": "Алексей"})
	assert.Equal(t, true, body["created"])
}

// Одна запись на устройство: повторный вход возвращает существующего
// пользователя независимо от присланного имени.
func TestLoginResumesExistingRecord(t *testing.T) {
	app := setupApp(t)
	login(t, app, "Алексей")

	resp, body := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{"username": "Кто-то другой"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["created"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Алексей", user["username"])
}

func TestProfileRequiresToken(t *testing.T) {
	app := setupApp(t)
	login(t, app, "Алексей")

	resp, _ := doJSON(t, app, "GET", "/api/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/user/profile", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestQuizCompleteFlow(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "Алексей")

	resp, body := doJSON(t, app, "POST", "/api/quiz/complete", token, fiber.Map{
		"score": 10, "total": 10, "category": "basics",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.EqualValues(t, 350, user["coins"])
	assert.EqualValues(t, 75, user["xp"])
	assert.EqualValues(t, 1, user["totalQuizzes"])
	assert.Contains(t, data["newAchievements"], "first-quiz")

	// некорректный результат отклоняется без изменения записи
	resp, _ = doJSON(t, app, "POST", "/api/quiz/complete", token, fiber.Map{
		"score": 11, "total": 10, "category": "basics",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, app, "GET", "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user = body["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.EqualValues(t, 350, user["coins"])
}

func TestBudgetCompleteFlow(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "Алексей")

	resp, body := doJSON(t, app, "POST", "/api/budget/complete", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	// 75 монет за симулятор + 25 за задание дня
	assert.EqualValues(t, 100, data["coinsEarned"])
	assert.EqualValues(t, 30, data["xpEarned"])

	// повторное прохождение в тот же день — без бонуса задания
	_, body = doJSON(t, app, "POST", "/api/budget/complete", token, nil)
	data = body["data"].(map[string]interface{})
	assert.EqualValues(t, 75, data["coinsEarned"])
}

func TestShopPurchaseFlow(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "Алексей") // 100 монет на старте

	// дорогой предмет: отказ без изменения записи
	resp, body := doJSON(t, app, "POST", "/api/shop/purchase", token, fiber.Map{"item_id": "avatar-crown"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	user := body["user"].(map[string]interface{})
	assert.EqualValues(t, 100, user["coins"])

	// неизвестный предмет
	resp, _ = doJSON(t, app, "POST", "/api/shop/purchase", token, fiber.Map{"item_id": "no-such-item"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// заработаем и купим
	doJSON(t, app, "POST", "/api/budget/complete", token, nil) // +100
	resp, body = doJSON(t, app, "POST", "/api/shop/purchase", token, fiber.Map{"item_id": "avatar-cat"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["receipt"])
	user = body["user"].(map[string]interface{})
	assert.EqualValues(t, 50, user["coins"])
	assert.Contains(t, user["purchasedItems"], "avatar-cat")
}

func TestThemeAndAvatarSelection(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "Алексей")

	resp, body := doJSON(t, app, "PUT", "/api/shop/theme", token, fiber.Map{"theme": "ocean"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "ocean", user["theme"])

	resp, _ = doJSON(t, app, "PUT", "/api/shop/theme", token, fiber.Map{"theme": "vaporwave"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, app, "PUT", "/api/shop/avatar", token, fiber.Map{"avatar": "🦊"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user = body["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "🦊", user["avatar"])
}

func TestDailyTasksEndpoint(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "Алексей")

	_, body := doJSON(t, app, "GET", "/api/progress/daily", token, nil)
	data := body["data"].(map[string]interface{})
	tasks := data["tasks"].([]interface{})
	require.Len(t, tasks, 3)
	for _, raw := range tasks {
		task := raw.(map[string]interface{})
		assert.Equal(t, false, task["completed"])
	}

	doJSON(t, app, "POST", "/api/budget/complete", token, nil)

	_, body = doJSON(t, app, "GET", "/api/progress/daily", token, nil)
	data = body["data"].(map[string]interface{})
	completed := map[string]bool{}
	for _, raw := range data["tasks"].([]interface{}) {
		task := raw.(map[string]interface{})
		completed[task["id"].(string)] = task["completed"].(bool)
	}
	assert.True(t, completed["budget"])
	assert.False(t, completed["quiz"])
}

func TestStatsEndpoint(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "Алексей")
	doJSON(t, app, "POST", "/api/quiz/complete", token, fiber.Map{
		"score": 8, "total": 10, "category": "saving",
	})

	_, body := doJSON(t, app, "GET", "/api/progress/stats", token, nil)
	data := body["data"].(map[string]interface{})

	overview := data["overview"].(map[string]interface{})
	assert.EqualValues(t, 1, overview["totalQuizzes"])
	assert.EqualValues(t, 12, overview["achievementsTotal"])
	assert.NotEmpty(t, data["tipOfDay"])

	achievements := data["achievements"].([]interface{})
	require.Len(t, achievements, 12)
	first := achievements[0].(map[string]interface{})
	assert.Equal(t, "first-quiz", first["id"])
	assert.Equal(t, true, first["unlocked"])
}
