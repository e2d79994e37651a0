package models

// RestaurantHours is one weekday row. Open/close times are display strings
// ("11:00 AM"), not parsed times; a closed day keeps empty times.
type RestaurantHours struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	DayOfWeek string `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Closed    bool   `json:"closed" gorm:"default:false"`
	SortOrder int    `json:"sortOrder"`
}
