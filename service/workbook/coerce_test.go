package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
	}{
		{name: "already numeric", value: 1250.5, want: 1250.5},
		{name: "arabic-indic digits", value: "١٢٣", want: 123},
		{name: "thousand separators", value: "1,234.5", want: 1234.5},
		{name: "arabic comma separator", value: "١٬٢٣٤", want: 1234},
		{name: "arabic decimal separator", value: "١٢٫٥", want: 12.5},
		{name: "currency suffix", value: "1500 ل.س", want: 1500},
		{name: "negative", value: "-75", want: -75},
		{name: "garbage", value: "abc", want: 0},
		{name: "nil", value: nil, want: 0},
		{name: "empty string", value: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceNumber(tt.value))
		})
	}
}

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "iso passthrough", value: "2024-03-05", want: "2024-03-05"},
		{name: "slash is day first", value: "05/03/2024", want: "2024-03-05"},
		{name: "dash is day first", value: "05-03-2024", want: "2024-03-05"},
		{name: "unpadded day first", value: "5/3/2024", want: "2024-03-05"},
		{name: "unpadded dash day first", value: "5-3-2024", want: "2024-03-05"},
		{name: "unpadded iso", value: "2024-3-5", want: "2024-03-05"},
		{name: "arabic digits", value: "٠٥/٠٣/٢٠٢٤", want: "2024-03-05"},
		{name: "date serial", value: float64(45356), want: "2024-03-05"},
		{name: "fallback layout", value: "2024/03/05", want: "2024-03-05"},
		{name: "unparseable", value: "غير معروف", want: ""},
		{name: "nil", value: nil, want: ""},
		{name: "zero serial", value: float64(0), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceDate(tt.value))
		})
	}
}

func TestPreserveIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "pads single digit", value: "7", want: "07"},
		{name: "numeric cell", value: float64(7), want: "07"},
		{name: "keeps wider numbers", value: "123", want: "123"},
		{name: "mixed passthrough", value: "A7", want: "A7"},
		{name: "arabic digits", value: "٧", want: "07"},
		{name: "trims", value: " 42 ", want: "42"},
		{name: "nil", value: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PreserveIdentifier(tt.value))
		})
	}
}
