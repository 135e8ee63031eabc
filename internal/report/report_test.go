package report

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems(t *testing.T) {
	var b strings.Builder
	err := Items(&b, []ItemRow{
		{ID: 1, Name: "Pen", Cost: 100, Sold: 3, Total: 300},
		{ID: 2, Name: "Mug", Cost: 200, Sold: 0, Total: 0},
	})
	require.NoError(t, err)

	want := fmt.Sprintf("%-3s %-30s %6s %6s %6s\n", "ID", "Name", "Cost", "Sold", "Total") +
		fmt.Sprintf("%3d %-30s %6d %6d %6d\n", 1, "Pen", 100, 3, 300) +
		fmt.Sprintf("%3d %-30s %6d %6d %6d\n", 2, "Mug", 200, 0, 0) +
		fmt.Sprintf("%3s %-30s %6s %4d %6d\n\n", "TOTAL", "", "", 3, 300)
	assert.Equal(t, want, b.String())
}

func TestItems_TotalColumnsLineUp(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Items(&b, []ItemRow{{ID: 12, Name: "Pen", Cost: 5, Sold: 40, Total: 200}}))

	lines := strings.Split(b.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	row, total := lines[1], lines[2]
	assert.Equal(t, len(row), len(total))
	assert.True(t, strings.HasSuffix(row, "    40    200"), row)
	assert.True(t, strings.HasSuffix(total, "    40    200"), total)
}

func TestItemDetail_LeftAlignsID(t *testing.T) {
	var b strings.Builder
	require.NoError(t, ItemDetail(&b, []ItemRow{{ID: 7, Name: "Cap", Cost: 10, Sold: 5, Total: 50}}))

	lines := strings.Split(b.String(), "\n")
	assert.Equal(t, fmt.Sprintf("%-3d %-30s %6d %6d %6d", 7, "Cap", 10, 5, 50), lines[1])
}

func TestMembers(t *testing.T) {
	var b strings.Builder
	err := Members(&b, []MemberRow{
		{ID: "m1", Name: "Alice", Sold: 3, Total: 300},
		{ID: "m2", Name: "Bob"},
	})
	require.NoError(t, err)

	want := fmt.Sprintf("%-8s %-30s %6s %6s\n", "ID", "Name", "Sold", "Total") +
		fmt.Sprintf("%-8s %-30s %6d %6d\n", "m1", "Alice", 3, 300) +
		fmt.Sprintf("%-8s %-30s %6d %6d\n", "m2", "Bob", 0, 0) +
		fmt.Sprintf("%-8s %-30s %6d %6d\n\n", "TOTAL", "", 3, 300)
	assert.Equal(t, want, b.String())
}

func TestMembers_Empty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Members(&b, nil))

	assert.Equal(t, 3, strings.Count(b.String(), "\n"))
	assert.Contains(t, b.String(), "TOTAL")
}

func TestWideNamesKeepColumns(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Members(&b, []MemberRow{
		{ID: "m1", Name: "茶碗", Sold: 1, Total: 9},
		{ID: "m2", Name: "Tea", Sold: 1, Total: 9},
	}))

	lines := strings.Split(b.String(), "\n")
	assert.Equal(t, runewidth.StringWidth(lines[2]), runewidth.StringWidth(lines[1]))
}

func TestAmbiguousWidthIgnoresLocale(t *testing.T) {
	prev := runewidth.DefaultCondition.EastAsianWidth
	runewidth.DefaultCondition.EastAsianWidth = true
	t.Cleanup(func() { runewidth.DefaultCondition.EastAsianWidth = prev })

	var b strings.Builder
	require.NoError(t, Members(&b, []MemberRow{{ID: "m1", Name: "±5 pack", Sold: 1, Total: 9}}))

	lines := strings.Split(b.String(), "\n")
	assert.Equal(t, fmt.Sprintf("%-8s %-30s %6d %6d", "m1", "±5 pack", 1, 9), lines[1])
}

type failWriter struct{ n int }

var errBoom = errors.New("boom")

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errBoom
	}
	f.n--
	return len(p), nil
}

func TestItems_ReturnsWriteError(t *testing.T) {
	err := Items(&failWriter{n: 1}, []ItemRow{{ID: 1, Name: "Pen", Cost: 1}})
	assert.ErrorIs(t, err, errBoom)
}
