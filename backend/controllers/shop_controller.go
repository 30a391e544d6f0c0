package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"finansy/backend/catalog"
	"finansy/backend/config"
	"finansy/backend/engine"
	"finansy/backend/storage"
	"finansy/backend/utils"
)

type ShopController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Store  storage.Store
	Engine *engine.Engine
}

func NewShopController(db *gorm.DB, cfg *config.Config, store storage.Store, eng *engine.Engine) *ShopController {
	return &ShopController{DB: db, Cfg: cfg, Store: store, Engine: eng}
}

// GetCatalog возвращает каталог магазина с признаком владения.
func (sc *ShopController) GetCatalog(c *fiber.Ctx) error {
	rec, found, err := sc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress record")
	}
	if !found {
		return utils.NotFound(c, "User not found")
	}

	var items []fiber.Map
	for _, item := range catalog.ShopItems() {
		owned := false
		for _, id := range rec.PurchasedItems {
			if id == item.ID {
				owned = true
				break
			}
		}
		items = append(items, fiber.Map{
			"id":    item.ID,
			"name":  item.Name,
			"icon":  item.Icon,
			"kind":  item.Kind,
			"cost":  item.Cost,
			"owned": owned,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"items":  items,
		"themes": catalog.Themes(),
		"coins":  rec.Coins,
	})
}

// Purchase списывает монеты за предмет каталога. Нехватка монет — не
// ошибка протокола: success=false, запись не меняется.
func (sc *ShopController) Purchase(c *fiber.Ctx) error {
	var input struct {
		ItemID string `json:"item_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	item, ok := catalog.ItemByID(input.ItemID)
	if !ok {
		return utils.NotFound(c, "Item not found")
	}

	rec, found, err := sc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress record")
	}
	if !found {
		return utils.NotFound(c, "User not found")
	}

	updated, purchased := sc.Engine.Purchase(rec, item.ID, item.Cost)
	if !purchased {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Недостаточно монет",
			"user":    rec,
		})
	}

	if err := sc.Store.Save(updated); err != nil {
		return utils.InternalServerError(c, "Could not save progress record")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"receipt": uuid.NewString(),
		"user":    updated,
	})
}

// SelectTheme меняет оформление.
func (sc *ShopController) SelectTheme(c *fiber.Ctx) error {
	var input struct {
		Theme string `json:"theme"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if _, ok := catalog.ThemeByID(input.Theme); !ok {
		return utils.NotFound(c, "Theme not found")
	}

	rec, found, err := sc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress record")
	}
	if !found {
		return utils.NotFound(c, "User not found")
	}

	updated := sc.Engine.SetTheme(rec, input.Theme)
	if err := sc.Store.Save(updated); err != nil {
		return utils.InternalServerError(c, "Could not save progress record")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"user": updated})
}

// SelectAvatar меняет аватар.
func (sc *ShopController) SelectAvatar(c *fiber.Ctx) error {
	var input struct {
		Avatar string `json:"avatar"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Avatar == "" {
		return utils.BadRequest(c, "Avatar is required")
	}

	rec, found, err := sc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress record")
	}
	if !found {
		return utils.NotFound(c, "User not found")
	}

	updated := sc.Engine.SetAvatar(rec, input.Avatar)
	if err := sc.Store.Save(updated); err != nil {
		return utils.InternalServerError(c, "Could not save progress record")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"user": updated})
}
