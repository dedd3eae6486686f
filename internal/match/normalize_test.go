package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"auto_propagate", "autopropagate"},
		{"autoPropagate", "autopropagate"},
		{"AutoPropagate", "autopropagate"},
		{"auto-propagate", "autopropagate"},
		{"AUTO_PROPAGATE", "autopropagate"},
		{"unwrap", "unwrap"},
		{"HTTPServer", "httpserver"},
		{"getHTTPResponse", "gethttpresponse"},
		{"event.ChildOf", "eventchildof"},
		{"__x__", "x"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fold(tt.input))
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"PlayerScored", []string{"Player", "Scored"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"auto_propagate", []string{"auto", "propagate"}},
		{"ABC", []string{"ABC"}},
		{"a", []string{"a"}},
		{"", nil},
		{"__", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, words(tt.input))
		})
	}
}
