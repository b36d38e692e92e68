package entity

// OrderCounter backs per-restaurant daily order numbers. The row is
// upserted inside the checkout transaction.
type OrderCounter struct {
	ID           uint   `gorm:"primaryKey"`
	RestaurantID uint   `gorm:"uniqueIndex:idx_counter_rest_day"`
	Day          string `gorm:"uniqueIndex:idx_counter_rest_day;size:8"` // YYYYMMDD
	Counter      int64
}
