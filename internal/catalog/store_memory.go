package catalog

import (
	"fmt"
	"sort"
)

const initialCap = 5

type MemStore struct {
	items   []*Item
	members []*Member

	itemByID   map[int]*Item
	memberByID map[string]*Member
}

func NewMemStore() *MemStore {
	return &MemStore{
		items:      make([]*Item, 0, initialCap),
		members:    make([]*Member, 0, initialCap),
		itemByID:   make(map[int]*Item, initialCap),
		memberByID: make(map[string]*Member, initialCap),
	}
}

func (s *MemStore) AddItem(it *Item) error {
	if it == nil || it.ID <= 0 || it.Cost <= 0 {
		return ErrInvalid
	}
	if _, dup := s.itemByID[it.ID]; dup {
		return fmt.Errorf("%w: item %d", ErrDuplicate, it.ID)
	}
	s.itemByID[it.ID] = it
	s.items = append(s.items, it)
	return nil
}

func (s *MemStore) AddMember(m *Member) error {
	if m == nil || m.ID == "" {
		return ErrInvalid
	}
	if _, dup := s.memberByID[m.ID]; dup {
		return fmt.Errorf("%w: member %q", ErrDuplicate, m.ID)
	}
	s.memberByID[m.ID] = m
	s.members = append(s.members, m)
	return nil
}

func (s *MemStore) Item(id int) (*Item, bool) {
	it, ok := s.itemByID[id]
	return it, ok
}

func (s *MemStore) Member(id string) (*Member, bool) {
	m, ok := s.memberByID[id]
	return m, ok
}

func (s *MemStore) Items() []*Item {
	out := make([]*Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MemStore) Members() []*Member {
	out := make([]*Member, len(s.members))
	copy(out, s.members)
	return out
}

func (s *MemStore) SortItems(o ItemOrder) {
	less := o.less()
	sort.SliceStable(s.items, func(i, j int) bool { return less(s.items[i], s.items[j]) })
}

func (s *MemStore) SortMembers(o MemberOrder) {
	less := o.less()
	sort.SliceStable(s.members, func(i, j int) bool { return less(s.members[i], s.members[j]) })
}
