package services

import (
	"testing"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"github.com/stretchr/testify/require"
)

func newReviewEnv(t *testing.T) (*ReviewService, *fixture) {
	t.Helper()
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewReviewService(db, repository.NewReviewRepository(db), repository.NewOrderRepository(db))
	return svc, f
}

func deliveredOrder(t *testing.T, svc *ReviewService, f *fixture, n string) *entity.Order {
	t.Helper()
	o := &entity.Order{
		OrderNumber: n, UserID: f.customer.ID,
		RestaurantID: f.kitchen.ID, Status: entity.StatusDelivered,
	}
	require.NoError(t, svc.DB.Create(o).Error)
	return o
}

func TestReviewDeliveredOrder(t *testing.T) {
	svc, f := newReviewEnv(t)
	o := deliveredOrder(t, svc, f, "rev-1")

	rev, err := svc.Create(f.customer.ID, &ReviewIn{OrderID: o.ID, Rating: 4, Comment: "great nyama"})
	require.NoError(t, err)
	require.Equal(t, f.kitchen.ID, rev.RestaurantID)

	// the restaurant's denormalized rating follows
	var rest entity.Restaurant
	require.NoError(t, svc.DB.First(&rest, f.kitchen.ID).Error)
	require.Equal(t, 4.0, rest.Rating)
	require.Equal(t, 1, rest.ReviewCount)
}

func TestReviewAveragesAcrossOrders(t *testing.T) {
	svc, f := newReviewEnv(t)
	o1 := deliveredOrder(t, svc, f, "rev-a")
	o2 := deliveredOrder(t, svc, f, "rev-b")

	_, err := svc.Create(f.customer.ID, &ReviewIn{OrderID: o1.ID, Rating: 5})
	require.NoError(t, err)
	_, err = svc.Create(f.customer.ID, &ReviewIn{OrderID: o2.ID, Rating: 2})
	require.NoError(t, err)

	var rest entity.Restaurant
	require.NoError(t, svc.DB.First(&rest, f.kitchen.ID).Error)
	require.InDelta(t, 3.5, rest.Rating, 0.001)
	require.Equal(t, 2, rest.ReviewCount)
}

func TestReviewRequiresDelivery(t *testing.T) {
	svc, f := newReviewEnv(t)
	o := &entity.Order{
		OrderNumber: "rev-pending", UserID: f.customer.ID,
		RestaurantID: f.kitchen.ID, Status: entity.StatusPreparing,
	}
	require.NoError(t, svc.DB.Create(o).Error)

	_, err := svc.Create(f.customer.ID, &ReviewIn{OrderID: o.ID, Rating: 5})
	require.ErrorIs(t, err, ErrOrderNotDelivered)
}

func TestReviewOncePerOrder(t *testing.T) {
	svc, f := newReviewEnv(t)
	o := deliveredOrder(t, svc, f, "rev-once")

	_, err := svc.Create(f.customer.ID, &ReviewIn{OrderID: o.ID, Rating: 5})
	require.NoError(t, err)
	_, err = svc.Create(f.customer.ID, &ReviewIn{OrderID: o.ID, Rating: 1})
	require.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestReviewForeignOrder(t *testing.T) {
	svc, f := newReviewEnv(t)
	o := deliveredOrder(t, svc, f, "rev-foreign")

	other := entity.User{Email: "baraka@example.com", Name: "Baraka", Role: entity.RoleCustomer}
	require.NoError(t, svc.DB.Create(&other).Error)

	_, err := svc.Create(other.ID, &ReviewIn{OrderID: o.ID, Rating: 5})
	require.ErrorIs(t, err, ErrNotFound)
}
