package catalog

import "strings"

type ItemOrder int

const (
	ItemsByID ItemOrder = iota
	ItemsByName
)

func (o ItemOrder) String() string {
	switch o {
	case ItemsByID:
		return "id"
	case ItemsByName:
		return "name"
	default:
		return "unknown"
	}
}

// less returns the comparator for o. Every order falls back to the item id,
// so sorting never depends on the previous arrangement.
func (o ItemOrder) less() func(a, b *Item) bool {
	switch o {
	case ItemsByName:
		return func(a, b *Item) bool {
			if c := strings.Compare(a.Name, b.Name); c != 0 {
				return c < 0
			}
			return a.ID < b.ID
		}
	default:
		return func(a, b *Item) bool { return a.ID < b.ID }
	}
}

type MemberOrder int

const (
	MembersByID MemberOrder = iota
	MembersByName
	// MembersByRevenue puts the highest revenue first. It does not break
	// ties, so sorting by it keeps the previous order among equals.
	MembersByRevenue
)

func (o MemberOrder) String() string {
	switch o {
	case MembersByID:
		return "id"
	case MembersByName:
		return "name"
	case MembersByRevenue:
		return "revenue"
	default:
		return "unknown"
	}
}

func (o MemberOrder) less() func(a, b *Member) bool {
	switch o {
	case MembersByRevenue:
		return func(a, b *Member) bool { return a.Revenue() > b.Revenue() }
	case MembersByName:
		return func(a, b *Member) bool {
			if c := strings.Compare(a.Name, b.Name); c != 0 {
				return c < 0
			}
			return a.ID < b.ID
		}
	default:
		return func(a, b *Member) bool { return a.ID < b.ID }
	}
}
