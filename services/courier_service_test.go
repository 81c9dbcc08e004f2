package services

import (
	"testing"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"github.com/stretchr/testify/require"
)

func newCourierEnv(t *testing.T) (*CourierService, *fixture, *entity.Courier) {
	t.Helper()
	db := newTestDB(t)
	f := newFixture(t, db)

	rider := entity.User{Email: "rider@example.com", Name: "Juma", Role: entity.RoleCourier}
	require.NoError(t, db.Create(&rider).Error)
	courier := entity.Courier{UserID: rider.ID, VehicleType: "motorbike", IsOnline: true}
	require.NoError(t, db.Create(&courier).Error)

	svc := NewCourierService(db, repository.NewCourierRepository(db), repository.NewOrderRepository(db))
	return svc, f, &courier
}

func TestOfferJobForOrder(t *testing.T) {
	svc, f, courier := newCourierEnv(t)

	order := entity.Order{
		OrderNumber: "offer-" + t.Name(), UserID: f.customer.ID,
		RestaurantID: f.kitchen.ID, Status: entity.StatusAssigned, DeliveryFee: 100,
	}
	require.NoError(t, svc.DB.Create(&order).Error)

	svc.OfferJobForOrder(order.ID)

	jobs, err := svc.JobsForUser(courier.UserID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.Equal(t, entity.JobOffered, jobs[0].Status)
	require.Equal(t, order.ID, jobs[0].OrderID)
	require.Equal(t, int64(100), jobs[0].Earnings)
	require.NotNil(t, jobs[0].OfferExpiry)

	var got entity.Order
	require.NoError(t, svc.DB.First(&got, order.ID).Error)
	require.NotNil(t, got.CourierID)
	require.Equal(t, courier.ID, *got.CourierID)
}

func TestOfferWithNoCourierOnline(t *testing.T) {
	svc, f, courier := newCourierEnv(t)
	require.NoError(t, svc.DB.Model(courier).Update("is_online", false).Error)

	order := entity.Order{
		OrderNumber: "offer-" + t.Name(), UserID: f.customer.ID,
		RestaurantID: f.kitchen.ID, Status: entity.StatusAssigned,
	}
	require.NoError(t, svc.DB.Create(&order).Error)

	svc.OfferJobForOrder(order.ID)

	jobs, err := svc.JobsForUser(courier.UserID)
	require.NoError(t, err)
	require.Empty(t, jobs)
}

func TestAcceptJob(t *testing.T) {
	svc, f, courier := newCourierEnv(t)

	order := entity.Order{
		OrderNumber: "accept-" + t.Name(), UserID: f.customer.ID,
		RestaurantID: f.kitchen.ID, Status: entity.StatusAssigned, DeliveryFee: 100,
	}
	require.NoError(t, svc.DB.Create(&order).Error)
	svc.OfferJobForOrder(order.ID)

	jobs, err := svc.JobsForUser(courier.UserID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job, err := svc.AcceptJob(courier.UserID, jobs[0].ID)
	require.NoError(t, err)
	require.Equal(t, entity.JobAccepted, job.Status)
	require.NotNil(t, job.AcceptedAt)

	// a second accept hits the guard
	_, err = svc.AcceptJob(courier.UserID, jobs[0].ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptJobWithoutCourierProfile(t *testing.T) {
	svc, f, _ := newCourierEnv(t)
	_, err := svc.AcceptJob(f.customer.ID, 1)
	require.ErrorIs(t, err, ErrNotFound)
}
