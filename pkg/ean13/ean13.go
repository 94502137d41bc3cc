// Package ean13 validates EAN-13 barcodes.
package ean13

// Length is the number of digits in an EAN-13 barcode.
const Length = 13

// IsValid reports whether code is a well-formed EAN-13 barcode: exactly 13
// ASCII digits whose last digit equals the checksum of the first twelve.
func IsValid(code string) bool {
	if len(code) != Length {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return checkDigit(code) == int(code[Length-1]-'0')
}

// checkDigit computes the EAN-13 check digit for the first 12 digits of code.
// Digits at even indexes weigh 1, odd indexes weigh 3.
func checkDigit(code string) int {
	total := 0
	for i := 0; i < Length-1; i++ {
		d := int(code[i] - '0')
		if i%2 == 0 {
			total += d
		} else {
			total += d * 3
		}
	}
	return (10 - total%10) % 10
}
