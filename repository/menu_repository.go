package repository

import (
	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- categories ----------------

func (r *MenuRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *MenuRepository) UpdateCategory(restaurantID, id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Updates(updates).Error
}

func (r *MenuRepository) DeleteCategory(restaurantID, id uint) error {
	return r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&entity.Category{}).Error
}

func (r *MenuRepository) ListCategories(restaurantID uint) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("sort_order, id").Find(&out).Error
	return out, err
}

// ---------------- menu items ----------------

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateItem(restaurantID, id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Updates(updates).Error
}

func (r *MenuRepository) DeleteItem(restaurantID, id uint) error {
	return r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&entity.MenuItem{}).Error
}

func (r *MenuRepository) ListItems(restaurantID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("category_id, id").Find(&out).Error
	return out, err
}

// GetItemBasics fetches just what pricing needs.
func (r *MenuRepository) GetItemBasics(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, name, price, restaurant_id, is_available").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ---------------- options ----------------

func (r *MenuRepository) CreateOption(o *entity.Option) error {
	return r.DB.Create(o).Error
}

func (r *MenuRepository) UpdateOption(restaurantID, id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Option{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Updates(updates).Error
}

func (r *MenuRepository) DeleteOption(restaurantID, id uint) error {
	return r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&entity.Option{}).Error
}

func (r *MenuRepository) ListOptions(restaurantID uint) ([]entity.Option, error) {
	var out []entity.Option
	err := r.DB.Preload("Values", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order, id")
	}).
		Where("restaurant_id = ?", restaurantID).
		Order("sort_order, id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) CreateOptionValue(v *entity.OptionValue) error {
	return r.DB.Create(v).Error
}

// restaurantOptionIDs scopes value writes to options the tenant owns.
func (r *MenuRepository) restaurantOptionIDs(restaurantID uint) *gorm.DB {
	return r.DB.Model(&entity.Option{}).Select("id").Where("restaurant_id = ?", restaurantID)
}

func (r *MenuRepository) UpdateOptionValue(restaurantID, id uint, updates map[string]any) error {
	return r.DB.Model(&entity.OptionValue{}).
		Where("id = ? AND option_id IN (?)", id, r.restaurantOptionIDs(restaurantID)).
		Updates(updates).Error
}

func (r *MenuRepository) DeleteOptionValue(restaurantID, id uint) error {
	return r.DB.
		Where("id = ? AND option_id IN (?)", id, r.restaurantOptionIDs(restaurantID)).
		Delete(&entity.OptionValue{}).Error
}

func (r *MenuRepository) AttachOption(itemID, optionID uint, sortOrder int) error {
	row := entity.MenuItemOption{MenuItemID: itemID, OptionID: optionID, SortOrder: sortOrder}
	return r.DB.Where("menu_item_id = ? AND option_id = ?", itemID, optionID).
		FirstOrCreate(&row).Error
}

func (r *MenuRepository) DetachOption(itemID, optionID uint) error {
	return r.DB.Where("menu_item_id = ? AND option_id = ?", itemID, optionID).
		Delete(&entity.MenuItemOption{}).Error
}

// OptionsForItem returns the item's options with values, join order respected.
func (r *MenuRepository) OptionsForItem(itemID uint) ([]entity.Option, error) {
	var out []entity.Option
	err := r.DB.Preload("Values", func(db *gorm.DB) *gorm.DB {
		return db.Where("is_available = ?", true).Order("sort_order, id")
	}).
		Joins("JOIN menu_item_options mio ON mio.option_id = options.id").
		Where("mio.menu_item_id = ?", itemID).
		Order("mio.sort_order, options.id").
		Find(&out).Error
	return out, err
}

// CountValuesBelongToItem guards checkout: all selected value IDs must be
// available values of options attached to the item.
func (r *MenuRepository) CountValuesBelongToItem(itemID uint, valueIDs []uint) (int64, error) {
	if len(valueIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&entity.OptionValue{}).
		Joins("JOIN menu_item_options mio ON mio.option_id = option_values.option_id").
		Where("mio.menu_item_id = ? AND option_values.id IN ? AND option_values.is_available = ?",
			itemID, valueIDs, true).
		Count(&count).Error
	return count, err
}

func (r *MenuRepository) GetOptionValues(ids []uint) ([]entity.OptionValue, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entity.OptionValue
	err := r.DB.Preload("Option").Where("id IN ?", ids).Find(&out).Error
	return out, err
}

// ---------------- public menu tree ----------------

type PublicItem struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Detail   string          `json:"detail"`
	Price    int64           `json:"price"`
	PhotoURL string          `json:"photoUrl"`
	Options  []entity.Option `json:"options,omitempty"`
}

type PublicCategory struct {
	ID    uint         `json:"id"`
	Name  string       `json:"name"`
	Items []PublicItem `json:"items"`
}

// MenuTree is what a guest sees after scanning the QR: categories with
// available items and their option groups.
func (r *MenuRepository) MenuTree(restaurantID uint) ([]PublicCategory, error) {
	cats, err := r.ListCategories(restaurantID)
	if err != nil {
		return nil, err
	}

	var items []entity.MenuItem
	err = r.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order, id")
	}).
		Preload("Options.Values", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("sort_order, id")
		}).
		Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("category_id, id").Find(&items).Error
	if err != nil {
		return nil, err
	}

	byCat := make(map[uint][]PublicItem)
	for _, it := range items {
		byCat[it.CategoryID] = append(byCat[it.CategoryID], PublicItem{
			ID: it.ID, Name: it.Name, Detail: it.Detail,
			Price: it.Price, PhotoURL: it.PhotoURL, Options: it.Options,
		})
	}

	out := make([]PublicCategory, 0, len(cats))
	for _, cat := range cats {
		if len(byCat[cat.ID]) == 0 {
			continue
		}
		out = append(out, PublicCategory{ID: cat.ID, Name: cat.Name, Items: byCat[cat.ID]})
	}
	return out, nil
}
