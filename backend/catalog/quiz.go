// Package catalog содержит контент приложения: банк вопросов, каталог
// магазина, описания достижений и ежедневных заданий. Движок прогресса
// с этим пакетом не связан и получает только итоги активностей.
package catalog

import (
	"math/rand"

	"finansy/backend/models"
)

const MixedQuizSize = 10

func Categories() []models.CategoryInfo {
	return []models.CategoryInfo{
		{ID: models.CategoryMixed, Name: "Все темы", Icon: "🎲", Desc: "10 случайных вопросов"},
		{ID: models.CategoryBasics, Name: "Основы финансов", Icon: "💰", Desc: "Базовые понятия"},
		{ID: models.CategorySaving, Name: "Сбережения", Icon: "🏦", Desc: "Как копить деньги"},
		{ID: models.CategoryBudget, Name: "Бюджет", Icon: "📊", Desc: "Планирование расходов"},
		{ID: models.CategoryInvesting, Name: "Инвестиции", Icon: "📈", Desc: "Заставь деньги работать"},
	}
}

var questions = []models.QuizQuestion{
	{ID: 1, Category: models.CategoryBasics, Question: "Что такое доход?", Options: []string{"Деньги, которые ты тратишь", "Деньги, которые ты получаешь", "Деньги в копилке", "Долг перед другом"}, CorrectAnswer: 1},
	{ID: 2, Category: models.CategoryBasics, Question: "Что такое расход?", Options: []string{"Деньги, которые ты получаешь", "Подарок на день рождения", "Деньги, которые ты тратишь", "Зарплата родителей"}, CorrectAnswer: 2},
	{ID: 3, Category: models.CategoryBasics, Question: "Зачем нужны деньги?", Options: []string{"Только для игр", "Для обмена на товары и услуги", "Чтобы хвастаться", "Они не нужны"}, CorrectAnswer: 1},
	{ID: 4, Category: models.CategoryBasics, Question: "Что такое банк?", Options: []string{"Магазин игрушек", "Место, где хранят и одалживают деньги", "Копилка дома", "Школа"}, CorrectAnswer: 1},
	{ID: 5, Category: models.CategoryBasics, Question: "Что такое валюта?", Options: []string{"Вид спорта", "Деньги страны", "Настольная игра", "Название магазина"}, CorrectAnswer: 1},

	{ID: 6, Category: models.CategorySaving, Question: "Какую часть дохода советуют откладывать?", Options: []string{"Ничего", "Минимум 10%", "Всё", "Половину долга"}, CorrectAnswer: 1},
	{ID: 7, Category: models.CategorySaving, Question: "Что такое финансовая подушка?", Options: []string{"Подушка с деньгами внутри", "Запас денег на непредвиденный случай", "Кредит в банке", "Подарочная карта"}, CorrectAnswer: 1},
	{ID: 8, Category: models.CategorySaving, Question: "Где безопаснее хранить сбережения?", Options: []string{"Под матрасом", "В банке на вкладе", "В кармане куртки", "У друга"}, CorrectAnswer: 1},
	{ID: 9, Category: models.CategorySaving, Question: "Что помогает накопить на мечту быстрее?", Options: []string{"Спонтанные покупки", "Регулярные отчисления", "Игнорировать цены", "Брать в долг"}, CorrectAnswer: 1},
	{ID: 10, Category: models.CategorySaving, Question: "Что такое процент по вкладу?", Options: []string{"Штраф банка", "Плата банка за хранение твоих денег", "Налог", "Комиссия магазина"}, CorrectAnswer: 1},

	{ID: 11, Category: models.CategoryBudget, Question: "Что такое бюджет?", Options: []string{"План доходов и расходов", "Список желаний", "Вид кредита", "Банковская карта"}, CorrectAnswer: 0},
	{ID: 12, Category: models.CategoryBudget, Question: "С чего начинается планирование бюджета?", Options: []string{"С покупок", "С подсчёта доходов", "С похода в кино", "С кредита"}, CorrectAnswer: 1},
	{ID: 13, Category: models.CategoryBudget, Question: "Какие расходы называют обязательными?", Options: []string{"Игрушки и сладости", "Еда, жильё, транспорт", "Кино и игры", "Подарки друзьям"}, CorrectAnswer: 1},
	{ID: 14, Category: models.CategoryBudget, Question: "Что делать, если расходы больше доходов?", Options: []string{"Ничего", "Сократить необязательные траты", "Тратить ещё больше", "Выбросить бюджет"}, CorrectAnswer: 1},
	{ID: 15, Category: models.CategoryBudget, Question: "Зачем записывать мелкие траты?", Options: []string{"Это бесполезно", "Они складываются в большие суммы", "Чтобы похвастаться", "Так требует банк"}, CorrectAnswer: 1},

	{ID: 16, Category: models.CategoryInvesting, Question: "Что такое инвестиции?", Options: []string{"Трата денег на сладости", "Вложение денег ради дохода в будущем", "Хранение денег дома", "Оплата коммунальных услуг"}, CorrectAnswer: 1},
	{ID: 17, Category: models.CategoryInvesting, Question: "Что такое акция?", Options: []string{"Скидка в магазине", "Доля в компании", "Вид налога", "Банковский вклад"}, CorrectAnswer: 1},
	{ID: 18, Category: models.CategoryInvesting, Question: "Зачем нужна диверсификация?", Options: []string{"Чтобы вложить всё в одно место", "Чтобы снизить риск потерь", "Чтобы платить меньше налогов", "Это модное слово"}, CorrectAnswer: 1},
	{ID: 19, Category: models.CategoryInvesting, Question: "Почему выгодно начинать инвестировать рано?", Options: []string{"Время работает на тебя", "Это не важно", "Молодым дают скидки", "Банки так требуют"}, CorrectAnswer: 0},
	{ID: 20, Category: models.CategoryInvesting, Question: "Высокая доходность обычно означает…", Options: []string{"Отсутствие риска", "Высокий риск", "Гарантию прибыли", "Подарок от брокера"}, CorrectAnswer: 1},
}

// QuestionsFor возвращает вопросы категории. Для mixed — случайная
// выборка из всех категорий.
func QuestionsFor(category models.QuizCategory) []models.QuizQuestion {
	if category == models.CategoryMixed {
		mixed := make([]models.QuizQuestion, len(questions))
		copy(mixed, questions)
		rand.Shuffle(len(mixed), func(i, j int) {
			mixed[i], mixed[j] = mixed[j], mixed[i]
		})
		if len(mixed) > MixedQuizSize {
			mixed = mixed[:MixedQuizSize]
		}
		return mixed
	}

	var out []models.QuizQuestion
	for _, q := range questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}
