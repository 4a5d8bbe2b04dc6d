package principles

import "time"

// CategoryEconomic is the category whose principles are numbered 1.N;
// every other category numbers 2.N.
const CategoryEconomic = "Economic"

// Principle is one entry in the investment-principles notebook. The
// JSON field names are the persisted wire format.
type Principle struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Number    string    `json:"number"`
	Timestamp time.Time `json:"timestamp"`
}

// CreatePrincipleRequest carries a new principle's user-entered fields.
type CreatePrincipleRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category"`
}

// Common errors
var (
	ErrNotFound  = NewError("principle not found")
	ErrEmptyText = NewError("principle text is required")
)

// Error type
type Error struct {
	message string
}

func NewError(message string) *Error {
	return &Error{message: message}
}

func (e *Error) Error() string {
	return e.message
}
