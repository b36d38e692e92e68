package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var s entity.OrderStatus
	if err := r.DB.Where("status_name = ?", name).First(&s).Error; err != nil {
		return 0, err
	}
	return s.ID, nil
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderDetail preloads everything the kitchen card or the customer
// status screen shows.
func (r *OrderRepository) GetOrderDetail(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("OrderStatus").
		Preload("Items").
		Preload("Items.Selections").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /m/:slug/orders needs a guest's own orders for this session.
func (r *OrderRepository) ListForSession(restaurantID uint, sessionID string, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []entity.Order
	err := r.DB.
		Preload("OrderStatus").
		Where("restaurant_id = ? AND session_id = ?", restaurantID, sessionID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// GET /restaurants/:id/orders
type OrderSummary struct {
	ID            uint      `json:"id"`
	Number        string    `json:"number"`
	TableID       *uint     `json:"tableId"`
	Total         int64     `json:"total"`
	OrderStatusID uint      `json:"orderStatusId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListForRestaurant(restaurantID uint, statusID *uint, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restaurantID)
	if statusID != nil {
		q = q.Where("order_status_id = ?", *statusID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := q.Select("id, number, table_id, total, order_status_id, created_at").
		Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Scan(&out).Error
	return out, total, err
}

// Board lists the open orders (not delivered, not cancelled) oldest first.
func (r *OrderRepository) Board(restaurantID uint, closedIDs []uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("OrderStatus").
		Preload("Items").
		Preload("Items.Selections").
		Where("restaurant_id = ? AND order_status_id NOT IN ?", restaurantID, closedIDs).
		Order("id").
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard flips from → to only when the order is still in
// from; 0 affected rows means the transition lost or was illegal.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, from, to uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, from).
		Update("order_status_id", to)
	return res.RowsAffected, res.Error
}

// NextOrderNumber reserves the next per-restaurant daily sequence inside
// the checkout transaction and formats it.
func (r *OrderRepository) NextOrderNumber(tx *gorm.DB, restaurantID uint, now time.Time) (string, error) {
	day := now.Format("20060102")

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "restaurant_id"}, {Name: "day"}},
		DoUpdates: clause.Assignments(map[string]any{"counter": gorm.Expr("order_counters.counter + 1")}),
	}).Create(&entity.OrderCounter{RestaurantID: restaurantID, Day: day, Counter: 1}).Error
	if err != nil {
		return "", err
	}

	var counter entity.OrderCounter
	err = tx.Where("restaurant_id = ? AND day = ?", restaurantID, day).First(&counter).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("R%d-%s-%04d", restaurantID, day, counter.Counter), nil
}
