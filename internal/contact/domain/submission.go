package domain

// Submission is a visitor's contact form entry.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
