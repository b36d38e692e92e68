package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// Raw rows scanned for a report window. Aggregation happens in the
// service so the SQL stays dialect-neutral.
type ReportOrderRow struct {
	ID              uint
	Total           int64
	OrderStatusID   uint
	PaymentMethodID *uint
	CreatedAt       time.Time
}

type ReportItemRow struct {
	OrderID uint
	Name    string
	Qty     int
	Total   int64
}

func (r *ReportRepository) OrdersInRange(restaurantID uint, from, to time.Time) ([]ReportOrderRow, error) {
	var out []ReportOrderRow
	err := r.DB.Model(&entity.Order{}).
		Select("id, total, order_status_id, payment_method_id, created_at").
		Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", restaurantID, from, to).
		Order("id").
		Scan(&out).Error
	return out, err
}

func (r *ReportRepository) ItemsForOrders(orderIDs []uint) ([]ReportItemRow, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	var out []ReportItemRow
	err := r.DB.Model(&entity.OrderItem{}).
		Select("order_id, name, qty, total").
		Where("order_id IN ?", orderIDs).
		Scan(&out).Error
	return out, err
}

func (r *ReportRepository) PaymentMethodNames(restaurantID uint) (map[uint]string, error) {
	var rows []entity.PaymentMethod
	err := r.DB.Select("id, name").Where("restaurant_id = ?", restaurantID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(rows))
	for _, pm := range rows {
		names[pm.ID] = pm.Name
	}
	return names, nil
}
