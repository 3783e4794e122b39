package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSheet() *Sheet {
	return NewSheet("ورقة1", [][]interface{}{
		{"العنوان", nil},
		{"الاسم الكامل", "الراتب الأساسي", "البدلات"},
		{"أحمد", float64(1000)},
	})
}

func TestSheetDimensions(t *testing.T) {
	s := testSheet()

	assert.Equal(t, 3, s.Rows())
	assert.Equal(t, 3, s.Cols())
}

func TestSheetRowPadsToWidth(t *testing.T) {
	s := testSheet()

	row := s.Row(2)
	require.Len(t, row, 3)
	assert.Equal(t, "أحمد", row[0])
	assert.Equal(t, float64(1000), row[1])
	assert.Nil(t, row[2])
}

func TestSheetValueOutOfRange(t *testing.T) {
	s := testSheet()

	assert.Nil(t, s.Value(-1, 0))
	assert.Nil(t, s.Value(0, 5))
	assert.Nil(t, s.Value(10, 0))
}

func TestFindCell(t *testing.T) {
	s := testSheet()

	row, col, found := s.FindCell("الاسم الكامل")
	require.True(t, found)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)
}

func TestFindCellNormalizedMatch(t *testing.T) {
	s := NewSheet("s", [][]interface{}{
		{"  الاسـم الكامل "},
	})

	_, _, found := s.FindCell("الاسم الكامل")
	assert.True(t, found)
}

func TestFindCellMissing(t *testing.T) {
	s := testSheet()

	_, _, found := s.FindCell("غير موجود")
	assert.False(t, found)
}

func TestEmptySheet(t *testing.T) {
	s := NewSheet("empty", nil)

	assert.Equal(t, 0, s.Rows())
	assert.Empty(t, s.Row(0))

	_, _, found := s.FindCell("الاسم الكامل")
	assert.False(t, found)
}
