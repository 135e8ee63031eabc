// Package ledger records sales against the catalog and derives the per-member
// aggregates the reports are built from.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"Fundraiser/internal/catalog"
)

var (
	ErrUnknownMember = errors.New("unknown member")
	ErrUnknownItem   = errors.New("unknown item")
	ErrBadQuantity   = errors.New("bad quantity")
	ErrOverflow      = errors.New("total overflow")
)

type Ledger struct {
	store catalog.Store
}

func New(store catalog.Store) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) Store() catalog.Store { return l.store }

// Sell records qty units of item itemID sold by memberID. The member's sale
// record for the item and the item's running total both grow by qty.
func (l *Ledger) Sell(memberID string, itemID, qty int) (*catalog.Sale, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadQuantity, qty)
	}

	m, ok := l.store.Member(memberID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMember, memberID)
	}
	it, ok := l.store.Item(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownItem, itemID)
	}

	if err := l.checkSale(it, qty); err != nil {
		return nil, err
	}

	it.Sold += qty
	return m.Record(it, qty), nil
}

// checkSale rejects a sale after which the catalog-wide units sold or revenue
// would no longer fit in an int. Every item, member and report total is a
// sum of non-negative parts of those two, so they all stay in range too.
func (l *Ledger) checkSale(it *catalog.Item, qty int) error {
	overflow := fmt.Errorf("%w: item %d", ErrOverflow, it.ID)

	revenue, ok := mul(it.Cost, qty)
	if !ok {
		return overflow
	}

	var sold, total int
	for _, x := range l.store.Items() {
		r, ok := mul(x.Cost, x.Sold)
		if !ok {
			return overflow
		}
		if sold, ok = add(sold, x.Sold); !ok {
			return overflow
		}
		if total, ok = add(total, r); !ok {
			return overflow
		}
	}

	if _, ok := add(sold, qty); !ok {
		return overflow
	}
	if _, ok := add(total, revenue); !ok {
		return overflow
	}
	return nil
}

func add(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

func mul(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

type Standing struct {
	Member  *catalog.Member
	Sold    int
	Revenue int
}

func StandingOf(m *catalog.Member) Standing {
	st := Standing{Member: m}
	for _, s := range m.Sales() {
		st.Sold += s.Quantity
		st.Revenue += s.Quantity * s.Item.Cost
	}
	return st
}

// Standings returns one standing per member in the store's current order.
func (l *Ledger) Standings() []Standing {
	members := l.store.Members()
	out := make([]Standing, 0, len(members))
	for _, m := range members {
		out = append(out, StandingOf(m))
	}
	return out
}

// TopSellers ranks members by descending revenue. Members with equal revenue
// stay in id order. The store is left in ranking order.
func (l *Ledger) TopSellers() []Standing {
	l.store.SortMembers(catalog.MembersByID)
	l.store.SortMembers(catalog.MembersByRevenue)
	return l.Standings()
}

type Line struct {
	Item     *catalog.Item
	Quantity int
	Revenue  int
}

// MemberLines returns one line per distinct item the member sold, ordered by
// item id.
func (l *Ledger) MemberLines(memberID string) ([]Line, error) {
	m, ok := l.store.Member(memberID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMember, memberID)
	}

	byItem := make(map[*catalog.Item]int)
	out := make([]Line, 0, len(m.Sales()))
	for _, s := range m.Sales() {
		if i, seen := byItem[s.Item]; seen {
			out[i].Quantity += s.Quantity
			out[i].Revenue = out[i].Quantity * s.Item.Cost
			continue
		}
		byItem[s.Item] = len(out)
		out = append(out, Line{Item: s.Item, Quantity: s.Quantity, Revenue: s.Quantity * s.Item.Cost})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out, nil
}
