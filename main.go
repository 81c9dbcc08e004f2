package main

import (
	"fmt"
	"log"
	"time"

	"github.com/alvinmajawa241/foodlink/configs"
	"github.com/alvinmajawa241/foodlink/controllers"
	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/middlewares"
	"github.com/alvinmajawa241/foodlink/repository"
	"github.com/alvinmajawa241/foodlink/routes"
	"github.com/alvinmajawa241/foodlink/services"
	"github.com/alvinmajawa241/foodlink/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg.DBSource)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedDemo(db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	promoRepo := repository.NewPromotionRepository(db)
	courierRepo := repository.NewCourierRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	payRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Lifecycle scheduler; the time scale compresses the demo delays
	steps := services.DefaultSteps()
	for i := range steps {
		steps[i].Delay = scale(steps[i].Delay, cfg.LifecycleTimeScale)
	}
	scheduler := services.NewLifecycleScheduler(db, orderRepo, scale(services.DefaultKickoff, cfg.LifecycleTimeScale), steps)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	cartSvc := services.NewCartService(db, cartRepo, restRepo, promoRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, addrRepo, payRepo, scheduler)
	promoSvc := services.NewPromotionService(promoRepo)
	courierSvc := services.NewCourierService(db, courierRepo, orderRepo)
	addrSvc := services.NewAddressService(addrRepo)
	paySvc := services.NewPaymentService(db, payRepo, orderRepo, cfg.PaymentFailureRate)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo)

	// Live tracking + courier assignment hang off lifecycle transitions
	hub := ws.NewTrackHub(orderRepo)
	go hub.Run()
	scheduler.OnTransition(hub.Publish)
	scheduler.OnTransition(func(orderID uint, ev entity.OrderEvent) {
		if ev.Status == entity.StatusAssigned {
			courierSvc.OfferJobForOrder(orderID)
		}
	})

	r := gin.Default()
	routes.RegisterRoutes(r, &routes.Deps{
		JWTSecret: cfg.JWTSecret,
		Sim: middlewares.SimConfig{
			MinLatency:  cfg.SimMinLatency,
			MaxLatency:  cfg.SimMaxLatency,
			FailureRate: cfg.SimFailureRate,
		},
		Auth:        controllers.NewAuthController(authSvc),
		Restaurants: controllers.NewRestaurantController(restSvc, reviewSvc),
		Cart:        controllers.NewCartController(cartSvc),
		Orders:      controllers.NewOrderController(orderSvc),
		Payments:    controllers.NewPaymentController(paySvc),
		Addresses:   controllers.NewAddressController(addrSvc),
		Reviews:     controllers.NewReviewController(reviewSvc),
		Promotions:  controllers.NewPromotionController(promoSvc),
		Couriers:    controllers.NewCourierController(courierSvc),
		Admin:       controllers.NewAdminController(userRepo, restRepo, orderRepo),
		TrackHub:    hub,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func scale(d time.Duration, factor float64) time.Duration {
	if factor <= 0 {
		return d
	}
	return time.Duration(float64(d) * factor)
}
