package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"event", "event"},
		{"enumevent-generator/event", "event"},
		{"example.com/app/event/v2", "event"},
		{"example.com/app/v2x", "v2x"},
		{"v3", "v3"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PkgAlias(tt.in))
		})
	}
}

func TestSlices(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))
	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsSingle([]string{"a", "b"}))
}
