package models

// ValidISBN accepts exactly 13 numeric digits.
func ValidISBN(isbn string) bool {
	if len(isbn) != 13 {
		return false
	}
	for _, r := range isbn {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
