package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"gorm.io/gorm"
)

// CartService owns the active cart and keeps its derived totals consistent:
// every mutation recomputes and persists the breakdown in the same
// transaction.
type CartService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	RestRepo  *repository.RestaurantRepository
	PromoRepo *repository.PromotionRepository
}

func NewCartService(
	db *gorm.DB,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
	promoRepo *repository.PromotionRepository,
) *CartService {
	return &CartService{DB: db, CartRepo: cartRepo, RestRepo: restRepo, PromoRepo: promoRepo}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty" binding:"min=1"`

	// modifier group id -> selected option ids
	Selections map[uint][]uint `json:"selections"`

	Note string `json:"note"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	return s.CartRepo.GetCartWithItems(s.DB, userID)
}

// Add validates the item's modifier selections, prices the line and appends
// it. A cart holding another restaurant's items is cleared first, then the
// add proceeds with the new restaurant binding.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	item, err := s.RestRepo.GetMenuItem(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !item.IsAvailable {
		return ErrItemUnavailable
	}

	unit, selRows, err := priceSelections(item, in.Selections)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		MenuItemID:    item.ID,
		Qty:           in.Qty,
		UnitPrice:     unit,
		Total:         unit * int64(in.Qty),
		Note:          in.Note,
		SelectionHash: selectionHash(in.Selections),
		Selections:    selRows,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		// switching restaurants empties the cart before the add
		if cart.RestaurantID != 0 && cart.RestaurantID != item.RestaurantID {
			if err := s.CartRepo.ClearItems(tx, cart); err != nil {
				return err
			}
			cart.PromoCode = ""
			cart.PromotionID = nil
			cart.Tip = 0
		}
		if cart.RestaurantID != item.RestaurantID {
			cart.RestaurantID = item.RestaurantID
			if err := s.CartRepo.Save(tx, cart); err != nil {
				return err
			}
		}

		if err := s.CartRepo.UpsertItem(tx, cart.ID, line); err != nil {
			return err
		}
		return s.recompute(tx, userID)
	})
}

// UpdateQty rescales one line to the new quantity. Quantity must stay >= 1;
// removal is a distinct operation.
func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.CartRepo.GetItemForUser(tx, userID, itemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := s.CartRepo.UpdateQty(tx, userID, itemID, qty); err != nil {
			return err
		}
		return s.recompute(tx, userID)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.CartRepo.GetItemForUser(tx, userID, itemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := s.CartRepo.RemoveItem(tx, userID, itemID); err != nil {
			return err
		}
		return s.recompute(tx, userID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		if err := s.CartRepo.ClearItems(tx, cart); err != nil {
			return err
		}
		return s.recompute(tx, userID)
	})
}

// ApplyPromoCode validates the code against the cart's restaurant and
// subtotal inside the same transaction that stores it, so the committed
// discount always matches the cart state it was checked against. A later
// apply simply wins.
func (s *CartService) ApplyPromoCode(userID uint, code string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCartWithItems(tx, userID)
		if err != nil {
			return err
		}
		if cart.ID == 0 || len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		promo, err := s.PromoRepo.FindByCode(tx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidPromo
			}
			return err
		}

		var subtotal int64
		for _, it := range cart.Items {
			subtotal += it.Total
		}
		if err := promoApplies(promo, cart.RestaurantID, subtotal, time.Now()); err != nil {
			return err
		}

		cart.PromoCode = promo.Code
		cart.PromotionID = &promo.ID
		if err := s.CartRepo.Save(tx, cart); err != nil {
			return err
		}
		return s.recompute(tx, userID)
	})
}

func (s *CartService) RemovePromoCode(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		cart.PromoCode = ""
		cart.PromotionID = nil
		if err := s.CartRepo.Save(tx, cart); err != nil {
			return err
		}
		return s.recompute(tx, userID)
	})
}

// UpdateTip sets the tip amount; no upper bound.
func (s *CartService) UpdateTip(userID uint, amount int64) error {
	if amount < 0 {
		return ErrInvalidTip
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		cart.Tip = amount
		if err := s.CartRepo.Save(tx, cart); err != nil {
			return err
		}
		return s.recompute(tx, userID)
	})
}

// recompute rebuilds the stored totals from the current lines, promo, tip
// and restaurant fee. A promotion that no longer applies (window closed,
// minimum order broken by a removal) is dropped here rather than left
// discounting a cart it no longer matches.
func (s *CartService) recompute(tx *gorm.DB, userID uint) error {
	cart, err := s.CartRepo.GetCartWithItems(tx, userID)
	if err != nil {
		return err
	}
	if cart.ID == 0 {
		return nil
	}

	var deliveryFee int64
	if cart.RestaurantID != 0 {
		rest, err := s.RestRepo.Get(cart.RestaurantID)
		if err == nil {
			deliveryFee = rest.DeliveryFee
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	var promo *entity.Promotion
	if cart.PromotionID != nil {
		var subtotal int64
		for _, it := range cart.Items {
			subtotal += it.Total
		}
		p, err := s.PromoRepo.Get(*cart.PromotionID)
		switch {
		case err == nil && promoApplies(p, cart.RestaurantID, subtotal, time.Now()) == nil:
			promo = p
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		default:
			cart.PromoCode = ""
			cart.PromotionID = nil
		}
	}

	t := ComputeTotals(cart.Items, deliveryFee, cart.Tip, promo)
	cart.Subtotal = t.Subtotal
	cart.DeliveryFee = t.DeliveryFee
	cart.ServiceFee = t.ServiceFee
	cart.Tax = t.Tax
	cart.Discount = t.Discount
	cart.Total = t.Total

	return s.CartRepo.Save(tx, cart)
}

// priceSelections checks the selections against the item's modifier groups
// and returns the unit price (base + surcharges) plus the selection rows.
func priceSelections(item *entity.MenuItem, selections map[uint][]uint) (int64, []entity.CartItemSelection, error) {
	unit := item.Price
	rows := make([]entity.CartItemSelection, 0)

	for _, group := range item.Modifiers {
		chosen := selections[group.ID]
		if group.Required && len(chosen) == 0 {
			return 0, nil, fmt.Errorf("%w: %s", ErrMissingRequiredOption, group.Name)
		}
		if group.MaxSelect > 0 && len(chosen) > group.MaxSelect {
			return 0, nil, fmt.Errorf("%w: %s", ErrTooManySelections, group.Name)
		}
		for _, optID := range chosen {
			opt := findOption(group.Options, optID)
			if opt == nil {
				return 0, nil, fmt.Errorf("%w: option %d does not belong to group %s", ErrInvalidSelection, optID, group.Name)
			}
			unit += opt.Price
			rows = append(rows, entity.CartItemSelection{
				GroupID:    group.ID,
				OptionID:   opt.ID,
				PriceDelta: opt.Price,
			})
		}
	}

	// selections for groups the item does not have
	for groupID := range selections {
		if findGroup(item.Modifiers, groupID) == nil {
			return 0, nil, fmt.Errorf("%w: unknown modifier group %d", ErrInvalidSelection, groupID)
		}
	}

	return unit, rows, nil
}

func findGroup(groups []entity.ModifierGroup, id uint) *entity.ModifierGroup {
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i]
		}
	}
	return nil
}

func findOption(opts []entity.ModifierOption, id uint) *entity.ModifierOption {
	for i := range opts {
		if opts[i].ID == id {
			return &opts[i]
		}
	}
	return nil
}

// selectionHash fingerprints a selection set so identical lines merge.
func selectionHash(selections map[uint][]uint) string {
	if len(selections) == 0 {
		return ""
	}
	groups := make([]uint, 0, len(selections))
	for g := range selections {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })

	var b strings.Builder
	for _, g := range groups {
		opts := append([]uint(nil), selections[g]...)
		sort.Slice(opts, func(i, j int) bool { return opts[i] < opts[j] })
		fmt.Fprintf(&b, "%d:", g)
		for _, o := range opts {
			fmt.Fprintf(&b, "%d,", o)
		}
		b.WriteByte(';')
	}
	return b.String()
}
