package repository

import (
	"errors"

	"github.com/alvinmajawa241/foodlink/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart, or an empty unsaved cart when
// none exists yet so callers can always render something.
func (r *CartRepository) GetCartWithItems(db *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := db.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Selections").
		Preload("Items.Selections.Group").
		Preload("Items.Selections.Option").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges into an existing line when item, selections fingerprint
// and note all match; otherwise appends a new line.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ? AND selection_hash = ? AND note = ?",
		cartID, row.MenuItemID, row.SelectionHash, row.Note).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		exist.Total = int64(exist.Qty) * exist.UnitPrice
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) GetItemForUser(tx *gorm.DB, userID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := tx.Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, total = unit_price * ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, qty, itemID, userID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	if err := tx.
		Where("cart_item_id = ?", itemID).
		Delete(&entity.CartItemSelection{}).Error; err != nil {
		return err
	}
	if err := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// last line gone -> release the restaurant binding
	return tx.Exec(`
		UPDATE carts SET restaurant_id = 0
		 WHERE user_id = ?
		   AND NOT EXISTS (SELECT 1 FROM cart_items ci WHERE ci.cart_id = carts.id AND ci.deleted_at IS NULL)
	`, userID).Error
}

// ClearItems drops every line of the cart and resets the restaurant binding,
// promo and tip. The cart row itself survives.
func (r *CartRepository) ClearItems(tx *gorm.DB, cart *entity.Cart) error {
	if err := tx.Where("cart_item_id IN (SELECT id FROM cart_items WHERE cart_id = ?)", cart.ID).
		Delete(&entity.CartItemSelection{}).Error; err != nil {
		return err
	}
	if err := tx.Where("cart_id = ?", cart.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", cart.ID).Updates(map[string]any{
		"restaurant_id": 0,
		"promo_code":    "",
		"promotion_id":  nil,
		"tip":           0,
	}).Error
}

func (r *CartRepository) Save(tx *gorm.DB, cart *entity.Cart) error {
	return tx.Save(cart).Error
}
