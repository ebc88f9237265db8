package domain

type WelcomeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

type EmailReceipt struct {
	ID string `json:"id"`
}
