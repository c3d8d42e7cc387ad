package configs

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/GDG-MenuMate/MenuMate-BE/entity"
)

// SeedFromCSV reloads the menu data from CSV files in dir
// (restaurants.csv, categories.csv, menus.csv, menu_categories.csv).
// Tables are cleared and refilled in foreign-key order inside a single
// transaction. Seeding is skipped when dir is empty.
func SeedFromCSV(dir string) error {
	if dir == "" {
		log.Println("skip seeding: SEED_DIR not set")
		return nil
	}

	restaurants, err := readRestaurantsCSV(filepath.Join(dir, "restaurants.csv"))
	if err != nil {
		return err
	}
	categories, err := readCategoriesCSV(filepath.Join(dir, "categories.csv"))
	if err != nil {
		return err
	}
	menus, err := readMenusCSV(filepath.Join(dir, "menus.csv"))
	if err != nil {
		return err
	}
	menuCategories, err := readMenuCategoriesCSV(filepath.Join(dir, "menu_categories.csv"))
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// clear in reverse foreign-key order
		for _, table := range []string{"menu_categories", "menus", "categories", "restaurants"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		if len(restaurants) > 0 {
			if err := tx.CreateInBatches(restaurants, 200).Error; err != nil {
				return err
			}
		}
		if len(categories) > 0 {
			if err := tx.CreateInBatches(categories, 200).Error; err != nil {
				return err
			}
		}
		if len(menus) > 0 {
			if err := tx.CreateInBatches(menus, 200).Error; err != nil {
				return err
			}
		}
		if len(menuCategories) > 0 {
			if err := tx.CreateInBatches(menuCategories, 200).Error; err != nil {
				return err
			}
		}
		log.Printf("seeded %d restaurants, %d categories, %d menus", len(restaurants), len(categories), len(menus))
		return nil
	})
}

// readCSV returns the data rows of a headered CSV file.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

func readRestaurantsCSV(path string) ([]entity.Restaurant, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Restaurant, 0, len(rows))
	for _, row := range rows {
		// restaurants_id,name,address,open_time,close_time,url,latitude,longitude,rating
		id, _ := strconv.Atoi(row[0])
		lat, _ := strconv.ParseFloat(row[6], 64)
		lng, _ := strconv.ParseFloat(row[7], 64)
		rating, _ := strconv.ParseFloat(row[8], 64)
		out = append(out, entity.Restaurant{
			RestaurantsID: id,
			Name:          row[1],
			Address:       row[2],
			OpenTime:      row[3],
			CloseTime:     row[4],
			URL:           row[5],
			Latitude:      lat,
			Longitude:     lng,
			Rating:        rating,
		})
	}
	return out, nil
}

func readCategoriesCSV(path string) ([]entity.Category, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		// category_id,name
		id, _ := strconv.Atoi(row[0])
		out = append(out, entity.Category{CategoryID: id, Name: row[1]})
	}
	return out, nil
}

func readMenusCSV(path string) ([]entity.Menu, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Menu, 0, len(rows))
	for _, row := range rows {
		// name,restaurants_id,description,price,calories,tags
		restaurantID, _ := strconv.Atoi(row[1])
		price, _ := strconv.Atoi(row[3])
		calories, _ := strconv.Atoi(row[4])
		out = append(out, entity.Menu{
			Name:          row[0],
			RestaurantsID: restaurantID,
			Description:   row[2],
			Price:         price,
			Calories:      calories,
			Tags:          parseTags(row[5]),
		})
	}
	return out, nil
}

func readMenuCategoriesCSV(path string) ([]entity.MenuCategory, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]entity.MenuCategory, 0, len(rows))
	for _, row := range rows {
		// menu_name,restaurants_id,category_id
		restaurantID, _ := strconv.Atoi(row[1])
		categoryID, _ := strconv.Atoi(row[2])
		out = append(out, entity.MenuCategory{
			MenuName:      row[0],
			RestaurantsID: restaurantID,
			CategoryID:    categoryID,
		})
	}
	return out, nil
}

// parseTags reads the exported array form "{korean,spicy}".
func parseTags(raw string) []string {
	raw = strings.Trim(strings.TrimSpace(raw), "{}")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
