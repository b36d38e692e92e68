package ws

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/events"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/pkg/resp"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/services"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

// OrderHub pushes order events to open tabs: the kitchen board subscribes
// per restaurant, a guest subscribes per order. Topics are plain strings
// so one hub serves both.
type OrderHub struct {
	clients    map[string]map[*websocket.Conn]bool // topic -> set of clients
	broadcast  chan topicEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex

	orders *services.OrderService
	access *services.RestaurantService
}

type subscription struct {
	Conn  *websocket.Conn
	Topic string
}

type topicEvent struct {
	Topic string
	Event events.OrderEvent
}

func KitchenTopic(restaurantID uint) string { return fmt.Sprintf("kitchen:%d", restaurantID) }
func OrderTopic(orderID uint) string        { return fmt.Sprintf("order:%d", orderID) }

func NewOrderHub(orders *services.OrderService, access *services.RestaurantService) *OrderHub {
	return &OrderHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan topicEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orders:     orders,
		access:     access,
	}
}

// Run owns the client map; register/unregister/broadcast all flow
// through here.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Topic] == nil {
				h.clients[sub.Topic] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Topic][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Topic][sub.Conn]; ok {
				delete(h.clients[sub.Topic], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case te := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[te.Topic] {
				if err := conn.WriteJSON(te.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[te.Topic], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify publishes one event to both interested topics. Called by the
// order service after a commit; a dropped push is not retried.
func (h *OrderHub) Notify(ev events.OrderEvent) {
	h.broadcast <- topicEvent{Topic: KitchenTopic(ev.RestaurantID), Event: ev}
	h.broadcast <- topicEvent{Topic: OrderTopic(ev.OrderID), Event: ev}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/kitchen/:restaurantId (staff, JWT checked upstream)
func (h *OrderHub) HandleKitchen(c *gin.Context) {
	restIDStr := c.Param("restaurantId")
	var restID uint
	fmt.Sscan(restIDStr, &restID)

	userID := utils.CurrentUserID(c)
	ok, err := h.access.CanWorkKitchen(restID, userID)
	if err != nil || !ok {
		resp.Forbidden(c, "no access")
		return
	}

	h.serve(c, KitchenTopic(restID))
}

// WS route: /ws/orders/:id?session= (guest, session checked against the order)
func (h *OrderHub) HandleOrder(c *gin.Context) {
	idStr := c.Param("id")
	var orderID uint
	fmt.Sscan(idStr, &orderID)

	sessionID := utils.SessionID(c)
	if sessionID == "" {
		resp.Unauthorized(c, "missing session")
		return
	}

	ok, err := h.orders.BelongsToSession(orderID, sessionID)
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	if !ok {
		resp.Forbidden(c, "no access")
		return
	}

	h.serve(c, OrderTopic(orderID))
}

func (h *OrderHub) serve(c *gin.Context, topic string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, Topic: topic}
	h.register <- sub

	go h.drain(sub)
}

// drain reads until the peer goes away. Subscribers never send anything
// meaningful; the read loop only detects the close.
func (h *OrderHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
