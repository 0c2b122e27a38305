package entity

// EmailConfig describes a single invoice email dispatch
type EmailConfig struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

// EmailTemplate is a named subject/body pair fetched from the backend and
// interpolated with {{key}} placeholders before sending
type EmailTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
