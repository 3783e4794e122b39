package arabic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trims surrounding whitespace",
			input: "  الاسم الكامل  ",
			want:  "الاسم الكامل",
		},
		{
			name:  "collapses whitespace runs",
			input: "الاسم \t الكامل",
			want:  "الاسم الكامل",
		},
		{
			name:  "strips kashida inside a word",
			input: "محمـــد",
			want:  "محمد",
		},
		{
			name:  "strips diacritics",
			input: "الرَّاتِبُ الأَسَاسِي",
			want:  "الراتب الأساسي",
		},
		{
			name:  "maps arabic-indic digits",
			input: "١٢٣",
			want:  "123",
		},
		{
			name:  "maps extended arabic-indic digits",
			input: "۴۵",
			want:  "45",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \t ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  الاسم الكامل  ",
		"بـــدل سكـــن",
		"رقم الموظف ٠٧",
		"plain ascii",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}
