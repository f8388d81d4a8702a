package models

// User is a registered reporter.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Feedback is a free-form message left by a visitor.
type Feedback struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
	Date    string `json:"date,omitempty"`
}
