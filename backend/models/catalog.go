package models

// AchievementInfo — отображаемые данные достижения; условия живут в движке.
type AchievementInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Desc string `json:"desc"`
	Icon string `json:"icon"`
}

type Theme struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Gradient string `json:"gradient"`
}

// ShopItem — позиция каталога магазина. Kind: theme, avatar.
type ShopItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Kind string `json:"kind"`
	Cost int    `json:"cost"`
}

type DailyTaskInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Reward int    `json:"reward"`
}
