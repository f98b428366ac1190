package shelf

// Shelf is one of the three reading states a user files a book under.
type Shelf string

const (
	WantToRead       Shelf = "want-to-read"
	CurrentlyReading Shelf = "currently-reading"
	Read             Shelf = "read"
)

// ParseShelf maps a raw shelf name to its Shelf value.
func ParseShelf(s string) (Shelf, bool) {
	switch Shelf(s) {
	case WantToRead, CurrentlyReading, Read:
		return Shelf(s), true
	}
	return "", false
}

// StoredBook is the subset of book metadata kept locally so shelf listings
// do not round-trip to the upstream API.
type StoredBook struct {
	ISBN13  string   `json:"isbn13"`
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Image   string   `json:"image"`
	Shelf   Shelf    `json:"shelf"`
}
