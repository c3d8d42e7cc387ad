// services/restaurant_service.go
package services

import (
	"github.com/GDG-MenuMate/MenuMate-BE/entity"
	"github.com/GDG-MenuMate/MenuMate-BE/repository"
)

type RestaurantService struct {
	Restaurants *repository.RestaurantRepository
	MenuRepo    *repository.MenuRepository
}

func NewRestaurantService(restaurants *repository.RestaurantRepository, menus *repository.MenuRepository) *RestaurantService {
	return &RestaurantService{Restaurants: restaurants, MenuRepo: menus}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Restaurants.FindAll()
}

func (s *RestaurantService) Menus(restaurantID int) ([]entity.Menu, error) {
	return s.MenuRepo.FindByRestaurantID(restaurantID)
}
