package repository

import (
	"time"

	"github.com/alvinmajawa241/foodlink/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID           uint               `json:"id"`
	OrderNumber  string             `json:"orderNumber"`
	RestaurantID uint               `json:"restaurantId"`
	Total        int64              `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ListForUser returns the user's orders newest first.
func (r *OrderRepository) ListForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, restaurant_id, total, status, created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListForRestaurant(restID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, restaurant_id, total, status, created_at").
		Where("restaurant_id = ?", restID).
		Order("created_at DESC, id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// AdvanceStatus performs the guarded single-step transition: the row is only
// touched while it still holds the expected current status, so a concurrent
// cancellation (or a vanished order) makes this affect zero rows.
func (r *OrderRepository) AdvanceStatus(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

// CancelGuard moves any non-terminal order to cancelled.
func (r *OrderRepository) CancelGuard(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status NOT IN ?", orderID,
			[]entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled}).
		Updates(map[string]any{"status": entity.StatusCancelled, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) AppendEvent(tx *gorm.DB, ev *entity.OrderEvent) error {
	return tx.Create(ev).Error
}

func (r *OrderRepository) GetEvents(orderID uint) ([]entity.OrderEvent, error) {
	var evs []entity.OrderEvent
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&evs).Error
	return evs, err
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).
		Preload("Selections").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) SetPaymentStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("payment_status", status).Error
}

func (r *OrderRepository) SetCourier(tx *gorm.DB, orderID, courierID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("courier_id", courierID).Error
}

func (r *OrderRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepository) SumRevenue() (int64, error) {
	var total int64
	err := r.DB.Model(&entity.Order{}).
		Where("status = ?", entity.StatusDelivered).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}
