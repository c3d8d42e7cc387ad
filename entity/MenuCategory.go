package entity

// MenuCategory joins menus (composite key) to categories.
type MenuCategory struct {
	MenuName      string `gorm:"column:menu_name;primaryKey" json:"menu_name"`
	RestaurantsID int    `gorm:"column:restaurants_id;primaryKey" json:"restaurants_id"`
	CategoryID    int    `gorm:"column:category_id;primaryKey" json:"category_id"`
}

func (MenuCategory) TableName() string { return "menu_categories" }
