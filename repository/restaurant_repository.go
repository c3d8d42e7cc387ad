// repository/restaurant_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/GDG-MenuMate/MenuMate-BE/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id int) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.First(&rest, "restaurants_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}
