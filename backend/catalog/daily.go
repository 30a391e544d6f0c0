package catalog

import (
	"time"

	"finansy/backend/models"
)

// DailyTasks — три задания дня. Reward дублирует бонус движка только
// для отображения.
func DailyTasks() []models.DailyTaskInfo {
	return []models.DailyTaskInfo{
		{ID: models.TaskQuiz, Name: "Пройди 1 квиз", Icon: "📝", Reward: 25},
		{ID: models.TaskBudget, Name: "Используй симулятор", Icon: "💰", Reward: 25},
		{ID: models.TaskPerfect, Name: "Получи 100%", Icon: "⭐", Reward: 25},
	}
}

var tips = []string{
	"Откладывай 10% с каждого дохода - это привычка богатых людей!",
	"Инвестируй в свое образование - это лучшая инвестиция!",
	"Не храни все деньги в одном месте - диверсифицируй!",
	"Следи за мелкими расходами - они складываются в большие суммы!",
	"Установи финансовые цели на год и следуй им!",
	"Начни инвестировать рано - время твой лучший союзник!",
	"Сравнивай цены перед покупкой - так ты экономишь без усилий!",
}

// TipOfDay возвращает совет дня по дню недели.
func TipOfDay(t time.Time) string {
	return tips[int(t.Weekday())%len(tips)]
}
