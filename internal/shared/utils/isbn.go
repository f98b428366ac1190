package utils

// ISBN-10 and ISBN-13 checksum validation.
//
// ISBN-10: nine digits plus a check character (digit or 'X' worth 10);
// the weighted sum (i+1)*digit over all ten characters must be 0 mod 11.
//
// ISBN-13: thirteen digits; digits at even indexes weigh 1, odd indexes
// weigh 3, and the total must be 0 mod 10.

// IsValidISBN10 reports whether s is a checksum-valid ISBN-10.
// Malformed input (wrong length, stray characters) is simply invalid.
func IsValidISBN10(s string) bool {
	if len(s) != 10 {
		return false
	}

	total := 0
	for i, ch := range s {
		var value int
		switch {
		case ch >= '0' && ch <= '9':
			value = int(ch - '0')
		case ch == 'X' && i == 9:
			value = 10
		default:
			return false
		}
		total += (i + 1) * value
	}

	return total%11 == 0
}

// IsValidISBN13 reports whether s is a checksum-valid ISBN-13.
func IsValidISBN13(s string) bool {
	if len(s) != 13 {
		return false
	}

	total := 0
	for i, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
		digit := int(ch - '0')
		if i%2 == 0 {
			total += digit
		} else {
			total += 3 * digit
		}
	}

	return total%10 == 0
}

// IsValidISBN reports whether either argument validates as its respective
// ISBN form. Used where the two are accepted interchangeably.
func IsValidISBN(isbn10, isbn13 string) bool {
	return IsValidISBN10(isbn10) || IsValidISBN13(isbn13)
}
