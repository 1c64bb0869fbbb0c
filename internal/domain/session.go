package domain

// Session is the per-browser state: the bound user, if any, and the cart.
// Cart keeps insertion order and may hold the same product more than once.
type Session struct {
	ID   string      `json:"id"`
	User string      `json:"user,omitempty"`
	Cart []ProductID `json:"cart"`
}

func NewSession(id string) Session {
	return Session{ID: id, Cart: []ProductID{}}
}

func (s *Session) Authenticated() bool {
	return s.User != ""
}

// Login binds the user and drops whatever was in the cart.
func (s *Session) Login(username string) {
	s.User = username
	s.Cart = []ProductID{}
}

func (s *Session) Logout() {
	s.User = ""
	s.Cart = []ProductID{}
}

func (s *Session) AddToCart(id ProductID) {
	s.Cart = append(s.Cart, id)
}

// RemoveFromCart removes the first occurrence of id and reports whether it was present.
func (s *Session) RemoveFromCart(id ProductID) bool {
	for i, cid := range s.Cart {
		if cid == id {
			s.Cart = append(s.Cart[:i:i], s.Cart[i+1:]...)
			return true
		}
	}

	return false
}

func (s *Session) ClearCart() {
	s.Cart = []ProductID{}
}

// CartIDs returns a copy of the cart.
func (s *Session) CartIDs() []ProductID {
	ids := make([]ProductID, len(s.Cart))
	copy(ids, s.Cart)

	return ids
}
