package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GDG-MenuMate/MenuMate-BE/entity"
	"github.com/GDG-MenuMate/MenuMate-BE/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Restaurant{}, &entity.Menu{}, &entity.Category{}, &entity.MenuCategory{},
	))
	return db
}

func seedTestData(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Restaurant{
		RestaurantsID: 1,
		Name:          "샐러디",
		Address:       "서울 성북구 안암로 81",
		OpenTime:      "10:00",
		CloseTime:     "21:00",
		URL:           "https://www.saladyb.co.kr",
		Latitude:      37.5843,
		Longitude:     127.0294,
		Rating:        4.3,
	}).Error)
	require.NoError(t, db.Create(&entity.Menu{
		Name:          "닭가슴살 샐러드",
		RestaurantsID: 1,
		Description:   "닭가슴살과 신선한 채소를 곁들인 샐러드",
		Price:         8500,
		Calories:      350,
		Tags:          []string{"diet", "protein"},
	}).Error)
	require.NoError(t, db.Create(&entity.Menu{
		Name:          "리코타치즈 샐러드",
		RestaurantsID: 1,
		Description:   "리코타치즈와 발사믹 드레싱 샐러드",
		Price:         9000,
		Calories:      420,
	}).Error)
}

func TestMenuRepositoryFindDetailByNames(t *testing.T) {
	db := newTestDB(t)
	seedTestData(t, db)
	repo := repository.NewMenuRepository(db)

	detail, err := repo.FindDetailByNames("샐러디", "닭가슴살 샐러드")
	require.NoError(t, err)
	assert.Equal(t, "닭가슴살 샐러드", detail.Name)
	assert.Equal(t, "샐러디", detail.RestaurantName)
	assert.Equal(t, 8500, detail.Price)
	assert.Equal(t, 350, detail.Calories)
	assert.Equal(t, "https://www.saladyb.co.kr", detail.RestaurantURL)
	assert.InDelta(t, 37.5843, detail.Latitude, 1e-9)
	assert.InDelta(t, 127.0294, detail.Longitude, 1e-9)
}

func TestMenuRepositoryFindDetailByNamesNotFound(t *testing.T) {
	db := newTestDB(t)
	seedTestData(t, db)
	repo := repository.NewMenuRepository(db)

	_, err := repo.FindDetailByNames("샐러디", "없는 메뉴")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindDetailByNames("없는 식당", "닭가슴살 샐러드")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMenuRepositoryFindByRestaurantID(t *testing.T) {
	db := newTestDB(t)
	seedTestData(t, db)
	repo := repository.NewMenuRepository(db)

	menus, err := repo.FindByRestaurantID(1)
	require.NoError(t, err)
	assert.Len(t, menus, 2)

	menus, err = repo.FindByRestaurantID(42)
	require.NoError(t, err)
	assert.Empty(t, menus)
}

func TestRestaurantRepositoryFindAll(t *testing.T) {
	db := newTestDB(t)
	seedTestData(t, db)
	repo := repository.NewRestaurantRepository(db)

	rests, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, rests, 1)
	assert.Equal(t, 1, rests[0].RestaurantsID)
	assert.Equal(t, "샐러디", rests[0].Name)
	assert.Equal(t, 4.3, rests[0].Rating)
}
