package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/cart"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/events"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
)

// Notifier is the realtime side of an order event; the websocket hub
// implements it. Kept as an interface so the hub can depend on this
// package and not the other way round.
type Notifier interface {
	Notify(ev events.OrderEvent)
}

type StatusIDs struct {
	New       uint
	Preparing uint
	Ready     uint
	Delivered uint
	Cancelled uint
}

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	TableRepo *repository.TableRepository
	Rest      *RestaurantService
	Carts     *CartService

	Status StatusIDs

	broker   events.Broker
	notifier Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	rest *RestaurantService,
	carts *CartService,
	broker events.Broker,
) *OrderService {
	s := &OrderService{DB: db, Repo: repo, TableRepo: tableRepo, Rest: rest, Carts: carts, broker: broker}

	if id, err := repo.GetStatusIDByName(entity.StatusNew); err == nil {
		s.Status.New = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusPreparing); err == nil {
		s.Status.Preparing = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusReady); err == nil {
		s.Status.Ready = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusDelivered); err == nil {
		s.Status.Delivered = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusCancelled); err == nil {
		s.Status.Cancelled = id
	}

	return s
}

// SetNotifier wires the websocket hub in after construction; hub and
// service reference each other.
func (s *OrderService) SetNotifier(n Notifier) { s.notifier = n }

// StatusIDFor maps a status name to its lookup-table id, nil for
// unknown names.
func (s *OrderService) StatusIDFor(name string) *uint {
	var id uint
	switch name {
	case entity.StatusNew:
		id = s.Status.New
	case entity.StatusPreparing:
		id = s.Status.Preparing
	case entity.StatusReady:
		id = s.Status.Ready
	case entity.StatusDelivered:
		id = s.Status.Delivered
	case entity.StatusCancelled:
		id = s.Status.Cancelled
	default:
		return nil
	}
	return &id
}

// ----- DTOs from Controller -----

type CheckoutReq struct {
	TableToken      string `json:"tableToken"`
	PaymentMethodID *uint  `json:"paymentMethodId"`
	Note            string `json:"note"`
}

type CheckoutRes struct {
	ID     uint   `json:"id"`
	Number string `json:"number"`
	Total  int64  `json:"total"`
}

// Checkout turns the session cart into an order in one transaction and
// clears the cart only after the commit.
func (s *OrderService) Checkout(sessionID string, restaurantID uint, req *CheckoutReq) (*CheckoutRes, error) {
	view, err := s.Carts.Get(sessionID, restaurantID)
	if err != nil {
		return nil, err
	}
	if len(view.Lines) == 0 {
		return nil, errors.New("cart is empty")
	}

	var tableID *uint
	if req.TableToken != "" {
		t, err := s.TableRepo.FindByToken(req.TableToken)
		if err != nil {
			return nil, errors.New("table not found")
		}
		if t.RestaurantID != restaurantID {
			return nil, errors.New("table not in this restaurant")
		}
		tableID = &t.ID
	}

	if req.PaymentMethodID != nil {
		var count int64
		err := s.DB.Model(&entity.PaymentMethod{}).
			Where("id = ? AND restaurant_id = ? AND is_active = ?", *req.PaymentMethodID, restaurantID, true).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, errors.New("payment method not available")
		}
	}

	// reprice every line from the catalog; the cart was priced at add
	// time and the menu may have changed since
	lines := make([]cart.Line, 0, len(view.Lines))
	var subtotal int64
	for _, l := range view.Lines {
		p, err := s.repriceLine(restaurantID, l)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *p)
		subtotal += p.Total()
	}
	total := subtotal

	var out CheckoutRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		number, err := s.Repo.NextOrderNumber(tx, restaurantID, time.Now())
		if err != nil {
			return err
		}

		order := entity.Order{
			Number:          number,
			Subtotal:        subtotal,
			Total:           total,
			Note:            req.Note,
			SessionID:       sessionID,
			RestaurantID:    restaurantID,
			TableID:         tableID,
			OrderStatusID:   s.Status.New,
			PaymentMethodID: req.PaymentMethodID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for i := range lines {
			l := &lines[i]
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Name:       l.Name,
				Qty:        l.Qty,
				UnitPrice:  l.UnitPrice,
				Total:      l.Total(),
				Note:       l.Note,
			}
			if l.Size != nil {
				oi.Selections = append(oi.Selections, selectionRow(l.Size))
			}
			for i := range l.Extras {
				oi.Selections = append(oi.Selections, selectionRow(&l.Extras[i]))
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = CheckoutRes{ID: order.ID, Number: number, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// order accepted downstream → empty the cart
	if err := s.Carts.Clear(sessionID, restaurantID); err != nil {
		log.Printf("clear cart after checkout: %v", err)
	}

	s.publish(events.OrderEvent{
		Type:         events.EventOrderCreated,
		OrderID:      out.ID,
		Number:       out.Number,
		RestaurantID: restaurantID,
		Status:       entity.StatusNew,
		Total:        out.Total,
		At:           time.Now(),
	})

	return &out, nil
}

// repriceLine re-resolves one cart line against the current catalog:
// the item must still be this restaurant's and available, every selected
// value must still be an available value of an option attached to the
// item, and names, prices and deltas are taken fresh. The cart's
// add-time numbers never reach the order.
func (s *OrderService) repriceLine(restaurantID uint, l *cart.Line) (*cart.Line, error) {
	item, err := s.Carts.MenuRepo.GetItemBasics(l.MenuItemID)
	if err != nil || item.RestaurantID != restaurantID || !item.IsAvailable {
		return nil, errors.New("menu item no longer available")
	}

	out := *l
	out.Name = item.Name
	out.UnitPrice = item.Price
	out.Size = nil
	out.Extras = nil

	valIDs := make([]uint, 0, len(l.Extras)+1)
	if l.Size != nil {
		valIDs = append(valIDs, l.Size.OptionValueID)
	}
	for _, e := range l.Extras {
		valIDs = append(valIDs, e.OptionValueID)
	}
	if len(valIDs) == 0 {
		return &out, nil
	}

	cnt, err := s.Carts.MenuRepo.CountValuesBelongToItem(item.ID, valIDs)
	if err != nil {
		return nil, err
	}
	if cnt != int64(len(valIDs)) {
		return nil, errors.New("selection no longer available")
	}

	vals, err := s.Carts.MenuRepo.GetOptionValues(valIDs)
	if err != nil {
		return nil, err
	}
	for _, v := range vals {
		mod := cart.Modifier{
			OptionID:      v.OptionID,
			OptionValueID: v.ID,
			OptionName:    v.Option.Name,
			Name:          v.Name,
			PriceDelta:    v.PriceDelta,
		}
		if l.Size != nil && v.ID == l.Size.OptionValueID {
			m := mod
			out.Size = &m
			continue
		}
		out.Extras = append(out.Extras, mod)
	}
	return &out, nil
}

func selectionRow(m *cart.Modifier) entity.OrderItemSelection {
	return entity.OrderItemSelection{
		OptionID:      m.OptionID,
		OptionValueID: m.OptionValueID,
		OptionName:    m.OptionName,
		ValueName:     m.Name,
		PriceDelta:    m.PriceDelta,
	}
}

// BelongsToSession guards the guest-facing order endpoints.
func (s *OrderService) BelongsToSession(orderID uint, sessionID string) (bool, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return false, err
	}
	return o.SessionID == sessionID, nil
}

func (s *OrderService) ListForSession(restaurantID uint, sessionID string) ([]entity.Order, error) {
	return s.Repo.ListForSession(restaurantID, sessionID, 20)
}

func (s *OrderService) Detail(orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrderDetail(orderID)
}

// Board lists still-open orders for the kitchen view.
func (s *OrderService) Board(restaurantID uint) ([]entity.Order, error) {
	return s.Repo.Board(restaurantID, []uint{s.Status.Delivered, s.Status.Cancelled})
}

func (s *OrderService) ListForRestaurant(restaurantID uint, statusID *uint, page, limit int) ([]repository.OrderSummary, int64, error) {
	return s.Repo.ListForRestaurant(restaurantID, statusID, page, limit)
}

func (s *OrderService) publish(ev events.OrderEvent) {
	if s.notifier != nil {
		s.notifier.Notify(ev)
	}
	if s.broker != nil {
		if err := s.broker.Publish(context.Background(), events.QueueOrderEvents, ev.Marshal()); err != nil {
			log.Printf("publish order event: %v", err)
		}
	}
}
