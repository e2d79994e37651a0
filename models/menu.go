package models

// MenuItem is a dish shown on the public menu. Category links to
// MenuCategory.Name rather than by id; the admin UI submits the name string.
type MenuItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Featured    bool    `json:"featured" gorm:"default:false"`
}

type MenuCategory struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}
