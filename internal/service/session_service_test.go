package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "short verbatim", message: "bonjour", want: "bonjour"},
		{name: "forty chars verbatim", message: strings.Repeat("x", 40), want: strings.Repeat("x", 40)},
		{name: "truncated with ellipsis", message: strings.Repeat("x", 50), want: strings.Repeat("x", 40) + "..."},
		{name: "multibyte counted as runes", message: strings.Repeat("é", 41), want: strings.Repeat("é", 40) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.message))
		})
	}
}

func TestPasswordAcceptable(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "valid", password: "Abcdefg1", want: true},
		{name: "too short", password: "Abc1", want: false},
		{name: "no uppercase", password: "abcdefg1", want: false},
		{name: "no lowercase", password: "ABCDEFG1", want: false},
		{name: "no digit", password: "Abcdefgh", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, passwordAcceptable(tt.password))
		})
	}
}
