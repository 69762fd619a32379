package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name string
		val  any
		def  int
		want int
	}{
		{name: "nil uses default", val: nil, def: 4000, want: 4000},
		{name: "int passes through", val: 300, def: 0, want: 300},
		{name: "float truncates", val: 120.9, def: 0, want: 120},
		{name: "numeric string", val: "250", def: 0, want: 250},
		{name: "float string truncates", val: "99.9", def: 0, want: 99},
		{name: "blank string uses default", val: "   ", def: 7, want: 7},
		{name: "garbage string uses default", val: "many", def: 7, want: 7},
		{name: "bool true is one", val: true, def: 0, want: 1},
		{name: "bool false is zero", val: false, def: 9, want: 0},
		{name: "unsupported type uses default", val: []int{1}, def: 5, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceInt(tt.val, tt.def))
		})
	}
}

func TestCoercePositive(t *testing.T) {
	assert.Equal(t, 4000, CoercePositive(-5, 4000))
	assert.Equal(t, 4000, CoercePositive("0", 4000))
	assert.Equal(t, 120, CoercePositive(120, 4000))
	assert.Equal(t, 4000, CoercePositive(nil, 4000))
}
