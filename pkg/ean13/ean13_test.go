package ean13

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{
			name: "valid barcode",
			code: "4820000195447",
			want: true,
		},
		{
			name: "wrong check digit",
			code: "4820000195440",
			want: false,
		},
		{
			name: "too short",
			code: "123",
			want: false,
		},
		{
			name: "too long",
			code: "48200001954470",
			want: false,
		},
		{
			name: "non numeric character",
			code: "48200001954a7",
			want: false,
		},
		{
			name: "empty string",
			code: "",
			want: false,
		},
		{
			name: "all zeros",
			code: "0000000000000",
			want: true,
		},
		{
			name: "valid well-known code",
			code: "5901234123457",
			want: true,
		},
		{
			name: "unicode digits rejected",
			code: "４820000195447",
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.code))
		})
	}
}

func TestCheckDigit(t *testing.T) {
	assert.Equal(t, 7, checkDigit("4820000195447"))
	assert.Equal(t, 7, checkDigit("5901234123457"))
}
