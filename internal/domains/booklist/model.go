package booklist

import "fmt"

// CuratedList is a named, curator-managed collection of picks. Names are
// unique across lists.
type CuratedList struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CuratedPick places a single book on a curated list. Position is the
// 1-based rank within the list; (ListID, Position) is unique.
type CuratedPick struct {
	ID       int    `json:"id"`
	ListID   int    `json:"list_id"`
	ISBN13   string `json:"isbn13,omitempty"`
	ISBN10   string `json:"isbn10,omitempty"`
	Position int    `json:"position"`
}

// String renders the pick in the representation used by conflict messages.
// Absent ISBN fields print as "None".
func (p CuratedPick) String() string {
	return fmt.Sprintf("CuratedPick(list_id=%d, isbn13=%s, isbn10=%s, position=%d)",
		p.ListID, orNone(p.ISBN13), orNone(p.ISBN10), p.Position)
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
