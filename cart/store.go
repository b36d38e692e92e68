package cart

import (
	"errors"
	"sync"
	"time"
)

var ErrOtherRestaurant = errors.New("cart belongs to another restaurant")

type session struct {
	cart     *Cart
	lastSeen time.Time
}

// Store holds the live session carts. Carts are never persisted; an
// abandoned session is swept after ttl.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*session
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Store{ttl: ttl, sessions: make(map[string]*session)}
}

// With runs fn against the session's cart under the store lock, creating
// an empty cart on first use. A session stays locked to the restaurant it
// started with.
func (s *Store) With(sessionID string, restaurantID uint, fn func(*Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{cart: New(restaurantID)}
		s.sessions[sessionID] = sess
	}
	if sess.cart.RestaurantID != restaurantID {
		// a cleared cart may be re-homed, a non-empty one may not
		if sess.cart.Len() > 0 {
			return ErrOtherRestaurant
		}
		sess.cart.RestaurantID = restaurantID
	}
	sess.lastSeen = time.Now()
	return fn(sess.cart)
}

// Drop removes a session outright.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Sweep removes sessions idle past the ttl and reports how many went.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.ttl)
	n := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// StartSweeper sweeps on the given interval until stop is closed.
func (s *Store) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
