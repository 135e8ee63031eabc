package catalog

import "errors"

const (
	MaxNameLen     = 30
	MaxMemberIDLen = 8
)

var (
	ErrDuplicate = errors.New("duplicate id")
	ErrInvalid   = errors.New("invalid record")
)

type Item struct {
	ID   int
	Name string
	Cost int
	Sold int
}

// Revenue is the unit cost times the quantity sold so far.
func (it *Item) Revenue() int { return it.Cost * it.Sold }

type Sale struct {
	Item     *Item
	Quantity int
}

type Member struct {
	ID   string
	Name string

	sales []*Sale
}

// Sales returns the member's sale records in the order they were first made.
func (m *Member) Sales() []*Sale {
	out := make([]*Sale, len(m.sales))
	copy(out, m.sales)
	return out
}

// Record accumulates qty into the member's sale record for it, creating the
// record on first sale of that item.
func (m *Member) Record(it *Item, qty int) *Sale {
	for _, s := range m.sales {
		if s.Item == it {
			s.Quantity += qty
			return s
		}
	}
	s := &Sale{Item: it, Quantity: qty}
	m.sales = append(m.sales, s)
	return s
}

// Revenue is the member's takings over all items sold.
func (m *Member) Revenue() int {
	var n int
	for _, s := range m.sales {
		n += s.Quantity * s.Item.Cost
	}
	return n
}

// SaleOf returns the member's record for it, if any.
func (m *Member) SaleOf(it *Item) (*Sale, bool) {
	for _, s := range m.sales {
		if s.Item == it {
			return s, true
		}
	}
	return nil, false
}

type Store interface {
	AddItem(it *Item) error
	AddMember(m *Member) error

	Item(id int) (*Item, bool)
	Member(id string) (*Member, bool)

	// Items and Members return the entries in the store's current order.
	Items() []*Item
	Members() []*Member

	SortItems(o ItemOrder)
	SortMembers(o MemberOrder)
}
