package console

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"Fundraiser/internal/catalog"
	"Fundraiser/internal/ledger"
	"Fundraiser/internal/report"
)

var (
	errArgs      = errors.New("wrong arguments")
	errNoMember  = errors.New("member id required")
	errNotNumber = errors.New("not a number")
)

func trimLine(s string) string { return strings.TrimSpace(s) }

func (s *session) quit(string) error { return errQuit }

// sale expects "<memberId> <itemId> <quantity>".
func (s *session) sale(arg string) error {
	f := strings.Fields(arg)
	if len(f) != 3 {
		return invalid(errArgs)
	}

	itemID, err := strconv.Atoi(f[1])
	if err != nil {
		return invalid(errNotNumber)
	}
	qty, err := strconv.Atoi(f[2])
	if err != nil {
		return invalid(errNotNumber)
	}

	sale, err := s.ledger.Sell(f[0], itemID, qty)
	if err != nil {
		return invalid(err)
	}
	s.metrics.Sold(qty)
	s.log.Debug("sale recorded",
		zap.String("member", f[0]),
		zap.Int("item", itemID),
		zap.Int("qty", qty),
		zap.Int("member_qty", sale.Quantity),
		zap.Int("item_sold", sale.Item.Sold),
	)

	s.print("\n")
	return nil
}

func (s *session) listItemsByID(string) error   { return s.listItems(catalog.ItemsByID) }
func (s *session) listItemsByName(string) error { return s.listItems(catalog.ItemsByName) }

func (s *session) listItems(o catalog.ItemOrder) error {
	s.ledger.Store().SortItems(o)
	return s.writeItems("")
}

func (s *session) listMembersByID(string) error   { return s.listMembers(catalog.MembersByID) }
func (s *session) listMembersByName(string) error { return s.listMembers(catalog.MembersByName) }

func (s *session) listMembers(o catalog.MemberOrder) error {
	s.ledger.Store().SortMembers(o)
	return s.writeMembers(s.ledger.Standings(), "")
}

func (s *session) listTopSellers(string) error {
	return s.writeMembers(s.ledger.TopSellers(), "")
}

func (s *session) listMember(id string) error {
	if id == "" {
		return invalid(errNoMember)
	}

	lines, err := s.ledger.MemberLines(id)
	if err != nil {
		return invalid(err)
	}

	rows := make([]report.ItemRow, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, report.LineRowOf(l))
	}
	return s.report(func() error { return report.ItemDetail(s.w, rows) })
}

func (s *session) searchItems(substr string) error { return s.writeItems(substr) }

func (s *session) searchMembers(substr string) error {
	return s.writeMembers(s.ledger.Standings(), substr)
}

// writeItems lists items in the store's current order whose name contains
// substr.
func (s *session) writeItems(substr string) error {
	items := s.ledger.Store().Items()
	rows := make([]report.ItemRow, 0, len(items))
	for _, it := range items {
		if strings.Contains(it.Name, substr) {
			rows = append(rows, report.ItemRowOf(it))
		}
	}
	return s.report(func() error { return report.Items(s.w, rows) })
}

func (s *session) writeMembers(standings []ledger.Standing, substr string) error {
	rows := make([]report.MemberRow, 0, len(standings))
	for _, st := range standings {
		if strings.Contains(st.Member.Name, substr) {
			rows = append(rows, report.MemberRowOf(st))
		}
	}
	return s.report(func() error { return report.Members(s.w, rows) })
}

// report runs fn unless an earlier write already failed.
func (s *session) report(fn func() error) error {
	if s.err != nil {
		return nil
	}
	return fn()
}
