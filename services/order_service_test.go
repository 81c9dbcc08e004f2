package services

import (
	"testing"
	"time"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderEnv struct {
	db      *gorm.DB
	f       *fixture
	cart    *CartService
	orders  *OrderService
	sched   *LifecycleScheduler
	address entity.Address
}

// newOrderEnv wires checkout against an idle scheduler so orders stay pending
// for the duration of a test.
func newOrderEnv(t *testing.T) *orderEnv {
	t.Helper()
	db := newTestDB(t)
	f := newFixture(t, db)

	orderRepo := repository.NewOrderRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	sched := NewLifecycleScheduler(db, orderRepo, time.Hour, fastSteps())

	env := &orderEnv{
		db:    db,
		f:     f,
		cart:  newCartService(db),
		sched: sched,
		orders: NewOrderService(db, orderRepo, repository.NewCartRepository(db),
			repository.NewRestaurantRepository(db), addrRepo,
			repository.NewPaymentRepository(db), sched),
	}

	env.address = entity.Address{
		UserID: f.customer.ID, Label: "Home",
		FullAddress: "12 Riverside Drive, Nairobi", IsDefault: true,
	}
	require.NoError(t, addrRepo.Create(&env.address))
	return env
}

func TestCheckoutSnapshotsCart(t *testing.T) {
	env := newOrderEnv(t)
	uid := env.f.customer.ID

	require.NoError(t, env.cart.Add(uid, &AddToCartIn{
		MenuItemID: env.f.nyama.ID, Qty: 1,
		Selections: map[uint][]uint{env.f.portion.ID: {env.f.portionFull.ID}},
	}))
	require.NoError(t, env.cart.Add(uid, &AddToCartIn{MenuItemID: env.f.soda.ID, Qty: 2}))
	require.NoError(t, env.cart.ApplyPromoCode(uid, "WELCOME20"))
	require.NoError(t, env.cart.UpdateTip(uid, 100))

	before := getCart(t, env.cart, uid)

	out, err := env.orders.Checkout(uid, &CheckoutIn{AddressID: env.address.ID, Notes: "call at the gate"})
	require.NoError(t, err)
	defer env.sched.Cancel(out.ID)

	require.NotEmpty(t, out.OrderNumber)
	require.Equal(t, before.Total, out.Total)

	detail, err := env.orders.DetailForUser(uid, out.ID)
	require.NoError(t, err)

	o := detail.Order
	require.Equal(t, entity.StatusPending, o.Status)
	require.Equal(t, before.Subtotal, o.Subtotal)
	require.Equal(t, before.DeliveryFee, o.DeliveryFee)
	require.Equal(t, before.ServiceFee, o.ServiceFee)
	require.Equal(t, before.Tax, o.Tax)
	require.Equal(t, int64(100), o.Tip)
	require.Equal(t, before.Discount, o.Discount)
	require.Equal(t, "WELCOME20", o.PromoCode)
	require.Equal(t, env.address.FullAddress, o.DeliveryAddress)
	require.Equal(t, "call at the gate", o.Notes)
	require.NotNil(t, o.EstimatedDeliveryAt)

	require.Len(t, detail.Items, 2)
	require.Equal(t, "Nyama Choma", detail.Items[0].Name)
	require.Len(t, detail.Items[0].Selections, 1)
	require.Equal(t, "Portion", detail.Items[0].Selections[0].GroupName)
	require.Equal(t, "Full", detail.Items[0].Selections[0].OptionName)
	require.Equal(t, int64(450), detail.Items[0].Selections[0].PriceDelta)

	require.Len(t, detail.Timeline, 1)
	require.Equal(t, entity.StatusPending, detail.Timeline[0].Status)

	// the cart is spent
	after := getCart(t, env.cart, uid)
	require.Empty(t, after.Items)
	require.Zero(t, after.RestaurantID)
	require.Empty(t, after.PromoCode)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newOrderEnv(t)
	_, err := env.orders.Checkout(env.f.customer.ID, &CheckoutIn{AddressID: env.address.ID})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutUnknownAddress(t *testing.T) {
	env := newOrderEnv(t)
	uid := env.f.customer.ID
	require.NoError(t, env.cart.Add(uid, &AddToCartIn{MenuItemID: env.f.soda.ID, Qty: 1}))

	_, err := env.orders.Checkout(uid, &CheckoutIn{AddressID: 999})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCheckoutRunsLifecycleToDelivered(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)

	orderRepo := repository.NewOrderRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	sched := NewLifecycleScheduler(db, orderRepo, time.Millisecond, fastSteps())
	orders := NewOrderService(db, orderRepo, repository.NewCartRepository(db),
		repository.NewRestaurantRepository(db), addrRepo,
		repository.NewPaymentRepository(db), sched)
	cart := newCartService(db)

	addr := entity.Address{UserID: f.customer.ID, Label: "Home", FullAddress: "12 Riverside Drive, Nairobi"}
	require.NoError(t, addrRepo.Create(&addr))

	require.NoError(t, cart.Add(f.customer.ID, &AddToCartIn{
		MenuItemID: f.nyama.ID, Qty: 1,
		Selections: map[uint][]uint{f.portion.ID: {f.portionFull.ID}},
	}))

	out, err := orders.Checkout(f.customer.ID, &CheckoutIn{AddressID: addr.ID})
	require.NoError(t, err)

	// Schedule is idempotent per order, so this hands back the task
	// checkout already started.
	waitDone(t, sched.Schedule(out.ID))

	got, err := orderRepo.Get(out.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StatusDelivered, got.Status)

	events, err := orderRepo.GetEvents(out.ID)
	require.NoError(t, err)
	require.Len(t, events, 7)
	want := []entity.OrderStatus{
		entity.StatusPending, entity.StatusConfirmed, entity.StatusPreparing,
		entity.StatusReady, entity.StatusAssigned, entity.StatusPickedUp,
		entity.StatusDelivered,
	}
	for i, ev := range events {
		require.Equal(t, want[i], ev.Status)
	}
}

func TestCancelPendingOrder(t *testing.T) {
	env := newOrderEnv(t)
	uid := env.f.customer.ID
	require.NoError(t, env.cart.Add(uid, &AddToCartIn{MenuItemID: env.f.soda.ID, Qty: 3}))

	out, err := env.orders.Checkout(uid, &CheckoutIn{AddressID: env.address.ID})
	require.NoError(t, err)

	require.NoError(t, env.orders.Cancel(uid, out.ID))

	detail, err := env.orders.DetailForUser(uid, out.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StatusCancelled, detail.Order.Status)
	require.Len(t, detail.Timeline, 2)
	require.Equal(t, entity.StatusCancelled, detail.Timeline[1].Status)

	// already terminal
	require.ErrorIs(t, env.orders.Cancel(uid, out.ID), ErrOrderNotCancellable)
}

func TestOrderHiddenFromOtherUsers(t *testing.T) {
	env := newOrderEnv(t)
	uid := env.f.customer.ID
	require.NoError(t, env.cart.Add(uid, &AddToCartIn{MenuItemID: env.f.soda.ID, Qty: 1}))

	out, err := env.orders.Checkout(uid, &CheckoutIn{AddressID: env.address.ID})
	require.NoError(t, err)
	defer env.sched.Cancel(out.ID)

	other := entity.User{Email: "wanjiku@example.com", Name: "Wanjiku", Role: entity.RoleCustomer}
	require.NoError(t, env.db.Create(&other).Error)

	_, err = env.orders.DetailForUser(other.ID, out.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, env.orders.Cancel(other.ID, out.ID), ErrNotFound)
}

func TestListForRestaurantRequiresOwnership(t *testing.T) {
	env := newOrderEnv(t)

	merchant := entity.User{Email: "njeri@example.com", Name: "Njeri", Role: entity.RoleMerchant}
	require.NoError(t, env.db.Create(&merchant).Error)
	require.NoError(t, env.db.Model(&env.f.kitchen).Update("merchant_id", merchant.ID).Error)

	_, err := env.orders.ListForRestaurant(merchant.ID, env.f.kitchen.ID, 10)
	require.NoError(t, err)

	_, err = env.orders.ListForRestaurant(env.f.customer.ID, env.f.kitchen.ID, 10)
	require.ErrorIs(t, err, ErrForbidden)
}
