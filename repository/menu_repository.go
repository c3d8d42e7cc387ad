// repository/menu_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/GDG-MenuMate/MenuMate-BE/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuDetail is the authoritative view used to enrich an AI
// recommendation: menu columns joined with its restaurant's location.
type MenuDetail struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Calories       int     `json:"calories"`
	Price          int     `json:"price"`
	RestaurantName string  `json:"restaurant_name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	RestaurantURL  string  `gorm:"column:restaurant_url" json:"restaurant_url"`
}

func (r *MenuRepository) FindByRestaurantID(restaurantID int) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("restaurants_id = ?", restaurantID).Find(&menus).Error
	return menus, err
}

// FindDetailByNames resolves a (restaurant name, menu name) pair to the
// stored detail row. Returns gorm.ErrRecordNotFound when no row matches.
func (r *MenuRepository) FindDetailByNames(restaurantName, menuName string) (*MenuDetail, error) {
	var detail MenuDetail
	err := r.DB.Table("menus").
		Select("menus.name, menus.description, menus.calories, menus.price, "+
			"restaurants.name AS restaurant_name, restaurants.latitude, restaurants.longitude, "+
			"restaurants.url AS restaurant_url").
		Joins("JOIN restaurants ON restaurants.restaurants_id = menus.restaurants_id").
		Where("restaurants.name = ? AND menus.name = ?", restaurantName, menuName).
		Take(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
