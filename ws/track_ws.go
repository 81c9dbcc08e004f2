package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/pkg/resp"
	"github.com/alvinmajawa241/foodlink/repository"
	"github.com/alvinmajawa241/foodlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// TrackHub streams order-status transitions to subscribed clients. One room
// per order; the lifecycle scheduler publishes into it via Publish.
type TrackHub struct {
	clients    map[uint]map[string]*websocket.Conn // orderID -> clientID -> conn
	broadcast  chan statusUpdate
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	orders     *repository.OrderRepository
}

type subscription struct {
	ClientID string
	Conn     *websocket.Conn
	OrderID  uint
}

type statusUpdate struct {
	OrderID uint
	Event   entity.OrderEvent
}

func NewTrackHub(orders *repository.OrderRepository) *TrackHub {
	return &TrackHub{
		clients:    make(map[uint]map[string]*websocket.Conn),
		broadcast:  make(chan statusUpdate),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orders:     orders,
	}
}

func (h *TrackHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[string]*websocket.Conn)
			}
			h.clients[sub.OrderID][sub.ClientID] = sub.Conn
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if conn, ok := h.clients[sub.OrderID][sub.ClientID]; ok {
				delete(h.clients[sub.OrderID], sub.ClientID)
				conn.Close()
			}
			h.mu.Unlock()

		case upd := <-h.broadcast:
			h.mu.Lock()
			for id, conn := range h.clients[upd.OrderID] {
				if err := conn.WriteJSON(upd.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[upd.OrderID], id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish hands a transition to every subscriber of that order. Wired as a
// scheduler OnTransition hook.
func (h *TrackHub) Publish(orderID uint, ev entity.OrderEvent) {
	h.broadcast <- statusUpdate{OrderID: orderID, Event: ev}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route /ws/orders/:id. The order's owner (or an admin) may subscribe.
func (h *TrackHub) HandleWebSocket(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	orderID := uint(id64)

	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	o, err := h.orders.Get(orderID)
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	if o.UserID != userID && role != entity.RoleAdmin {
		resp.Forbidden(c, "no access")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{ClientID: uuid.NewString(), Conn: conn, OrderID: orderID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps reading (clients send nothing meaningful) so close frames and
// dead connections unregister promptly.
func (h *TrackHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
