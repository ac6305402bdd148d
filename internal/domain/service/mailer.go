package service

import "context"

// Email is a single outgoing message.
type Email struct {
	ToAddress string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, email *Email) error
}

// WhatsAppNotifier sends a text message to a phone number.
type WhatsAppNotifier interface {
	SendMessage(ctx context.Context, phone, message string) error
}
