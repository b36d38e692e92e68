package services

import (
	"errors"
	"fmt"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/cart"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
)

// CartService fronts the in-memory session carts. Prices and deltas are
// resolved against the catalog here; the cart itself never sees client
// numbers.
type CartService struct {
	Store    *cart.Store
	MenuRepo *repository.MenuRepository
}

func NewCartService(store *cart.Store, menuRepo *repository.MenuRepository) *CartService {
	return &CartService{Store: store, MenuRepo: menuRepo}
}

type AddToCartIn struct {
	MenuItemID    uint   `json:"menuItemId" binding:"required"`
	Qty           int    `json:"qty"`
	Note          string `json:"note"`
	SizeValueID   *uint  `json:"sizeValueId"`
	ExtraValueIDs []uint `json:"extraValueIds"`
}

type CartView struct {
	RestaurantID uint         `json:"restaurantId"`
	Lines        []*cart.Line `json:"lines"`
	ItemCount    int          `json:"itemCount"`
	Total        int64        `json:"total"`
}

func (s *CartService) Get(sessionID string, restaurantID uint) (*CartView, error) {
	var view *CartView
	err := s.Store.With(sessionID, restaurantID, func(c *cart.Cart) error {
		view = snapshot(c)
		return nil
	})
	return view, err
}

// Add validates the item and selections against the restaurant's catalog
// and appends a new line. Identical adds stay distinct lines.
func (s *CartService) Add(sessionID string, restaurantID uint, in *AddToCartIn) (*CartView, error) {
	item, err := s.MenuRepo.GetItemBasics(in.MenuItemID)
	if err != nil {
		return nil, errors.New("menu item not found")
	}
	if item.RestaurantID != restaurantID {
		return nil, errors.New("menu item not in this restaurant")
	}
	if !item.IsAvailable {
		return nil, errors.New("menu item not available")
	}

	valIDs := make([]uint, 0, len(in.ExtraValueIDs)+1)
	if in.SizeValueID != nil {
		valIDs = append(valIDs, *in.SizeValueID)
	}
	valIDs = append(valIDs, in.ExtraValueIDs...)

	if len(valIDs) > 0 {
		cnt, err := s.MenuRepo.CountValuesBelongToItem(item.ID, valIDs)
		if err != nil {
			return nil, err
		}
		if cnt != int64(len(valIDs)) {
			return nil, errors.New("invalid option values")
		}
	}

	vals, err := s.MenuRepo.GetOptionValues(valIDs)
	if err != nil {
		return nil, err
	}

	var size *cart.Modifier
	extras := make([]cart.Modifier, 0, len(vals))
	for _, v := range vals {
		mod := cart.Modifier{
			OptionID:      v.OptionID,
			OptionValueID: v.ID,
			OptionName:    v.Option.Name,
			Name:          v.Name,
			PriceDelta:    v.PriceDelta,
		}
		if in.SizeValueID != nil && v.ID == *in.SizeValueID {
			if v.Option.OptionType != entity.OptionTypeSize {
				return nil, errors.New("sizeValueId is not a size")
			}
			m := mod
			size = &m
			continue
		}
		if v.Option.OptionType != entity.OptionTypeExtra {
			return nil, errors.New("extraValueIds must be extras")
		}
		extras = append(extras, mod)
	}

	if err := s.checkSelectionRules(item.ID, size, extras); err != nil {
		return nil, err
	}

	var view *CartView
	err = s.Store.With(sessionID, restaurantID, func(c *cart.Cart) error {
		c.Add(cart.AddInput{
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Qty:        in.Qty,
			Note:       in.Note,
			Size:       size,
			Extras:     extras,
		})
		view = snapshot(c)
		return nil
	})
	return view, err
}

// checkSelectionRules holds a line to the option groups attached to the
// item: required groups must have a pick, MinSelect/MaxSelect bound the
// count per group when set.
func (s *CartService) checkSelectionRules(itemID uint, size *cart.Modifier, extras []cart.Modifier) error {
	picked := make(map[uint]int)
	if size != nil {
		picked[size.OptionID]++
	}
	for _, e := range extras {
		picked[e.OptionID]++
	}

	opts, err := s.MenuRepo.OptionsForItem(itemID)
	if err != nil {
		return err
	}
	for _, o := range opts {
		n := picked[o.ID]
		need := o.MinSelect
		if o.IsRequired && need < 1 {
			need = 1
		}
		if n < need {
			return fmt.Errorf("option %q requires a selection", o.Name)
		}
		if o.MaxSelect > 0 && n > o.MaxSelect {
			return fmt.Errorf("option %q allows at most %d selections", o.Name, o.MaxSelect)
		}
	}
	return nil
}

// SetQty updates a line in place; qty ≤ 0 removes it.
func (s *CartService) SetQty(sessionID string, restaurantID uint, lineID string, qty int) (*CartView, error) {
	var view *CartView
	err := s.Store.With(sessionID, restaurantID, func(c *cart.Cart) error {
		c.SetQty(lineID, qty)
		view = snapshot(c)
		return nil
	})
	return view, err
}

// Remove is a no-op for unknown line IDs.
func (s *CartService) Remove(sessionID string, restaurantID uint, lineID string) (*CartView, error) {
	var view *CartView
	err := s.Store.With(sessionID, restaurantID, func(c *cart.Cart) error {
		c.Remove(lineID)
		view = snapshot(c)
		return nil
	})
	return view, err
}

// Clear empties the session cart; called after checkout succeeds.
func (s *CartService) Clear(sessionID string, restaurantID uint) error {
	return s.Store.With(sessionID, restaurantID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

func snapshot(c *cart.Cart) *CartView {
	return &CartView{
		RestaurantID: c.RestaurantID,
		Lines:        c.Lines(),
		ItemCount:    c.ItemCount(),
		Total:        c.Total(),
	}
}
