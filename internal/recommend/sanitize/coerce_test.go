package sanitize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "Dune", "Dune"},
		{"integer float", float64(2020), "2020"},
		{"fraction", 4.5, "4.5"},
		{"bool", true, "true"},
		{"null", nil, "null"},
		{"array", []any{"a", float64(1)}, `["a",1]`},
		{"object", map[string]any{"k": "v"}, `{"k":"v"}`},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"large", 1e21, "1e+21"},
		{"below large", 1e20, "100000000000000000000"},
		{"tiny", 1e-7, "1e-7"},
		{"tiny fraction", 1.5e-7, "1.5e-7"},
		{"small", 0.000001, "0.000001"},
		{"negative large", -2.5e300, "-2.5e+300"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.in))
		})
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(float64(0)))
	assert.False(t, Truthy(false))
	assert.False(t, Truthy(math.NaN()))

	assert.True(t, Truthy("0"))
	assert.True(t, Truthy(" "))
	assert.True(t, Truthy(float64(-1)))
	assert.True(t, Truthy(true))
	assert.True(t, Truthy([]any{}))
	assert.True(t, Truthy(map[string]any{}))
}

func TestNumber(t *testing.T) {
	n, ok := Number("4.5")
	assert.True(t, ok)
	assert.Equal(t, 4.5, n)

	n, ok = Number(" 320 ")
	assert.True(t, ok)
	assert.Equal(t, float64(320), n)

	n, ok = Number(true)
	assert.True(t, ok)
	assert.Equal(t, float64(1), n)

	n, ok = Number("\uFEFF7\u00a0")
	assert.True(t, ok)
	assert.Equal(t, float64(7), n)

	_, ok = Number("unknown")
	assert.False(t, ok)

	_, ok = Number("NaN")
	assert.False(t, ok)

	_, ok = Number([]any{float64(1)})
	assert.False(t, ok)
}

func TestText(t *testing.T) {
	assert.Equal(t, "dune", Text("  dune \n"))
	assert.Equal(t, "", Text(" \t "))
	assert.Equal(t, "", Text("\uFEFF \u00a0\u2028\u3000"))
	assert.Equal(t, "\u0085x\u0085", Text(" \u0085x\u0085 "))

	// decomposed input is passed through as written
	assert.Equal(t, "cafe\u0301", Text(" cafe\u0301 "))
}

func TestField(t *testing.T) {
	assert.Equal(t, "", Field(nil))
	assert.Equal(t, "42", Field(float64(42)))
	assert.Equal(t, "sci-fi", Field("  sci-fi  "))
}
