package entity

type Category struct {
	CategoryID int    `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name       string `gorm:"uniqueIndex" json:"name"`
}

func (Category) TableName() string { return "categories" }
