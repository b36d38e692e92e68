package cart

import (
	"github.com/google/uuid"
)

// Modifier is one selected option value (a size or an extra) carried on a
// cart line. IDs are kept so checkout can revalidate against the catalog.
type Modifier struct {
	OptionID      uint   `json:"optionId"`
	OptionValueID uint   `json:"optionValueId"`
	OptionName    string `json:"optionName"`
	Name          string `json:"name"`
	PriceDelta    int64  `json:"priceDelta"`
}

// Line is one entry in a cart. Two adds of the same item never share a
// line; each Add gets a fresh identity.
type Line struct {
	ID         string     `json:"id"`
	MenuItemID uint       `json:"menuItemId"`
	Name       string     `json:"name"`
	UnitPrice  int64      `json:"unitPrice"`
	Qty        int        `json:"qty"`
	Note       string     `json:"note"`
	Size       *Modifier  `json:"size,omitempty"`
	Extras     []Modifier `json:"extras,omitempty"`
}

// Total = (unit price + size delta + sum of extra deltas) × qty.
func (l *Line) Total() int64 {
	unit := l.UnitPrice
	if l.Size != nil {
		unit += l.Size.PriceDelta
	}
	for _, e := range l.Extras {
		unit += e.PriceDelta
	}
	return unit * int64(l.Qty)
}

// clone detaches a line from the cart, modifiers included.
func (l *Line) clone() *Line {
	cp := *l
	if l.Size != nil {
		s := *l.Size
		cp.Size = &s
	}
	if len(l.Extras) > 0 {
		cp.Extras = append([]Modifier(nil), l.Extras...)
	}
	return &cp
}

// AddInput carries an already-validated menu item into Add. Prices and
// deltas come from the catalog, never from the client.
type AddInput struct {
	MenuItemID uint
	Name       string
	UnitPrice  int64
	Qty        int
	Note       string
	Size       *Modifier
	Extras     []Modifier
}

// Cart is an ordered collection of lines for one restaurant within one
// browsing session. It lives in memory only; it is gone after the
// session expires.
type Cart struct {
	RestaurantID uint
	lines        []*Line
}

func New(restaurantID uint) *Cart {
	return &Cart{RestaurantID: restaurantID}
}

// Add appends a new line and returns it. Qty defaults to 1.
func (c *Cart) Add(in AddInput) *Line {
	if in.Qty <= 0 {
		in.Qty = 1
	}
	l := &Line{
		ID:         uuid.NewString(),
		MenuItemID: in.MenuItemID,
		Name:       in.Name,
		UnitPrice:  in.UnitPrice,
		Qty:        in.Qty,
		Note:       in.Note,
		Size:       in.Size,
		Extras:     in.Extras,
	}
	c.lines = append(c.lines, l)
	return l
}

// Remove deletes the line if present; unknown IDs are a no-op.
func (c *Cart) Remove(lineID string) {
	for i, l := range c.lines {
		if l.ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQty replaces a line's quantity; qty ≤ 0 removes the line.
func (c *Cart) SetQty(lineID string, qty int) {
	if qty <= 0 {
		c.Remove(lineID)
		return
	}
	for _, l := range c.lines {
		if l.ID == lineID {
			l.Qty = qty
			return
		}
	}
}

// Lines returns copies of the lines in insertion order. Callers hold the
// result outside the store's lock, so it must not alias live lines.
func (c *Cart) Lines() []*Line {
	out := make([]*Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.clone()
	}
	return out
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

// Total is the sum of all line totals.
func (c *Cart) Total() int64 {
	var t int64
	for _, l := range c.lines {
		t += l.Total()
	}
	return t
}

// Clear empties the cart; called after an order is accepted.
func (c *Cart) Clear() {
	c.lines = nil
}

// Len is the number of lines (not the item count).
func (c *Cart) Len() int { return len(c.lines) }
