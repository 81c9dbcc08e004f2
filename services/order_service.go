package services

import (
	"errors"
	"time"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	RestRepo  *repository.RestaurantRepository
	AddrRepo  *repository.AddressRepository
	PayRepo   *repository.PaymentRepository
	Scheduler *LifecycleScheduler
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
	addrRepo *repository.AddressRepository,
	payRepo *repository.PaymentRepository,
	scheduler *LifecycleScheduler,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo,
		AddrRepo: addrRepo, PayRepo: payRepo, Scheduler: scheduler,
	}
}

type CheckoutIn struct {
	AddressID       uint   `json:"addressId" binding:"required"`
	PaymentMethodID *uint  `json:"paymentMethodId"`
	Notes           string `json:"notes"`
}

type CheckoutOut struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"orderNumber"`
	Total       int64  `json:"total"`
}

// Checkout snapshots the cart into an immutable order, clears the cart, and
// schedules the lifecycle progression. The snapshot copies the cart's stored
// breakdown verbatim; totals are never re-derived after this point.
func (s *OrderService) Checkout(userID uint, in *CheckoutIn) (*CheckoutOut, error) {
	addr, err := s.AddrRepo.GetForUser(userID, in.AddressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.PaymentMethodID != nil {
		if _, err := s.PayRepo.GetMethodForUser(userID, *in.PaymentMethodID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	var out CheckoutOut
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCartWithItems(tx, userID)
		if err != nil {
			return err
		}
		if cart.ID == 0 || cart.RestaurantID == 0 || len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		rest, err := s.RestRepo.Get(cart.RestaurantID)
		if err != nil {
			return err
		}
		eta := time.Now().Add(time.Duration(rest.PrepTimeMins+rest.DeliveryTimeMins) * time.Minute)

		order := entity.Order{
			OrderNumber:         uuid.NewString(),
			UserID:              userID,
			RestaurantID:        cart.RestaurantID,
			Status:              entity.StatusPending,
			Subtotal:            cart.Subtotal,
			DeliveryFee:         cart.DeliveryFee,
			ServiceFee:          cart.ServiceFee,
			Tax:                 cart.Tax,
			Tip:                 cart.Tip,
			Discount:            cart.Discount,
			Total:               cart.Total,
			PromoCode:           cart.PromoCode,
			DeliveryAddress:     addr.FullAddress,
			Notes:               in.Notes,
			PaymentMethodID:     in.PaymentMethodID,
			PaymentStatus:       entity.PaymentPending,
			EstimatedDeliveryAt: &eta,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Qty:        it.Qty,
				UnitPrice:  it.UnitPrice,
				Total:      it.Total,
				Note:       it.Note,
			}
			for _, sel := range it.Selections {
				oi.Selections = append(oi.Selections, entity.OrderItemSelection{
					GroupName:  sel.Group.Name,
					OptionName: sel.Option.Name,
					PriceDelta: sel.PriceDelta,
				})
			}
			var m entity.MenuItem
			if err := tx.Select("name").First(&m, it.MenuItemID).Error; err == nil {
				oi.Name = m.Name
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
		}

		if err := s.Repo.AppendEvent(tx, &entity.OrderEvent{
			OrderID: order.ID,
			Status:  entity.StatusPending,
			Message: "Order placed",
		}); err != nil {
			return err
		}

		if err := s.CartRepo.ClearItems(tx, cart); err != nil {
			return err
		}

		out = CheckoutOut{ID: order.ID, OrderNumber: order.OrderNumber, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Scheduler.Schedule(out.ID)
	return &out, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListForUser(userID, limit)
}

type OrderDetail struct {
	Order    *entity.Order       `json:"order"`
	Items    []entity.OrderItem  `json:"items"`
	Timeline []entity.OrderEvent `json:"timeline"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetItems(o.ID)
	if err != nil {
		return nil, err
	}
	events, err := s.Repo.GetEvents(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: o, Items: items, Timeline: events}, nil
}

// Cancel moves a non-terminal order to cancelled and aborts its scheduled
// progression.
func (s *OrderService) Cancel(userID, orderID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.GetForUser(userID, orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		affected, err := s.Repo.CancelGuard(tx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotCancellable
		}
		return s.Repo.AppendEvent(tx, &entity.OrderEvent{
			OrderID: orderID,
			Status:  entity.StatusCancelled,
			Message: "Order cancelled",
		})
	})
	if err != nil {
		return err
	}
	s.Scheduler.Cancel(orderID)
	return nil
}

func (s *OrderService) ListForRestaurant(userID, restID uint, limit int) ([]repository.OrderSummary, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.Repo.ListForRestaurant(restID, limit)
}
