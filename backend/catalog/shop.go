package catalog

import "finansy/backend/models"

const (
	ItemKindTheme  = "theme"
	ItemKindAvatar = "avatar"
)

// Themes — каталог оформлений; id должны оставаться стабильными,
// они сохраняются в записи прогресса.
func Themes() []models.Theme {
	return []models.Theme{
		{ID: "default", Name: "Фиолетовый", Gradient: "from-purple-500 to-pink-500"},
		{ID: "ocean", Name: "Океан", Gradient: "from-blue-500 to-cyan-500"},
		{ID: "sunset", Name: "Закат", Gradient: "from-orange-500 to-red-500"},
		{ID: "forest", Name: "Лес", Gradient: "from-green-500 to-emerald-500"},
		{ID: "gold", Name: "Золото", Gradient: "from-yellow-500 to-amber-500"},
		{ID: "night", Name: "Ночь", Gradient: "from-indigo-900 to-purple-900"},
	}
}

func ThemeByID(id string) (models.Theme, bool) {
	for _, t := range Themes() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Theme{}, false
}

var shopItems = []models.ShopItem{
	{ID: "theme-ocean", Name: "Тема «Океан»", Icon: "🌊", Kind: ItemKindTheme, Cost: 200},
	{ID: "theme-sunset", Name: "Тема «Закат»", Icon: "🌅", Kind: ItemKindTheme, Cost: 200},
	{ID: "theme-forest", Name: "Тема «Лес»", Icon: "🌲", Kind: ItemKindTheme, Cost: 200},
	{ID: "theme-gold", Name: "Тема «Золото»", Icon: "🏆", Kind: ItemKindTheme, Cost: 500},
	{ID: "theme-night", Name: "Тема «Ночь»", Icon: "🌙", Kind: ItemKindTheme, Cost: 500},
	{ID: "avatar-cat", Name: "Котик", Icon: "🐱", Kind: ItemKindAvatar, Cost: 150},
	{ID: "avatar-dog", Name: "Пёсик", Icon: "🐶", Kind: ItemKindAvatar, Cost: 150},
	{ID: "avatar-fox", Name: "Лисичка", Icon: "🦊", Kind: ItemKindAvatar, Cost: 250},
	{ID: "avatar-unicorn", Name: "Единорог", Icon: "🦄", Kind: ItemKindAvatar, Cost: 400},
	{ID: "avatar-dragon", Name: "Дракон", Icon: "🐉", Kind: ItemKindAvatar, Cost: 600},
	{ID: "avatar-robot", Name: "Робот", Icon: "🤖", Kind: ItemKindAvatar, Cost: 350},
	{ID: "avatar-crown", Name: "Корона", Icon: "👑", Kind: ItemKindAvatar, Cost: 1000},
}

func ShopItems() []models.ShopItem {
	return shopItems
}

func ItemByID(id string) (models.ShopItem, bool) {
	for _, item := range shopItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.ShopItem{}, false
}
