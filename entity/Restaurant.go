package entity

type Restaurant struct {
	RestaurantsID int     `gorm:"column:restaurants_id;primaryKey" json:"restaurants_id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	OpenTime      string  `gorm:"column:open_time" json:"open_time"`
	CloseTime     string  `gorm:"column:close_time" json:"close_time"`
	URL           string  `gorm:"column:url" json:"url"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Rating        float64 `json:"rating"`

	Menus []Menu `gorm:"foreignKey:RestaurantsID;references:RestaurantsID" json:"-"`
}

func (Restaurant) TableName() string { return "restaurants" }
