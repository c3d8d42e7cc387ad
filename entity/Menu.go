package entity

// Menu rows are keyed by (name, restaurants_id); the same menu name can
// exist at different restaurants.
type Menu struct {
	Name          string   `gorm:"primaryKey" json:"name"`
	RestaurantsID int      `gorm:"column:restaurants_id;primaryKey" json:"restaurants_id"`
	Description   string   `json:"description"`
	Price         int      `json:"price"`
	Calories      int      `json:"calories"`
	Tags          []string `gorm:"serializer:json" json:"tags"`
}

func (Menu) TableName() string { return "menus" }
