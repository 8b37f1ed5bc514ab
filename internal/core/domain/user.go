package domain

import "time"

// SavedBook is a value object embedded in a User's saved list. Entries are
// never mutated in place; the only update path is remove-then-save.
type SavedBook struct {
	BookID      string   `json:"book_id" bson:"book_id"`
	Title       string   `json:"title" bson:"title"`
	Authors     []string `json:"authors" bson:"authors"`
	Description string   `json:"description" bson:"description"`
	Image       string   `json:"image,omitempty" bson:"image,omitempty"`
	Link        string   `json:"link,omitempty" bson:"link,omitempty"`
}

// User is the identity aggregate. Username and email are globally unique, and
// SavedBooks never holds two entries with the same BookID.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	SavedBooks   []SavedBook `json:"saved_books"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// BookCount returns the number of saved books.
func (u *User) BookCount() int {
	return len(u.SavedBooks)
}

// HasBook reports whether the user's list contains an entry with the given id.
func (u *User) HasBook(bookID string) bool {
	for _, b := range u.SavedBooks {
		if b.BookID == bookID {
			return true
		}
	}
	return false
}
