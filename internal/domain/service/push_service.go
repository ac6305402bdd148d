package service

import "context"

// PushMessage is one notification fanned out to a set of devices.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string // Read by the staff app to open the order.
	// Urgent asks the platforms to deliver immediately even to dozing phones; used for assignments.
	Urgent bool
}

// PushResult tallies one fan-out.
type PushResult struct {
	Sent   int
	Failed int
	// InvalidTokens will never succeed again; their devices should be deactivated.
	InvalidTokens []string
}

// PushNotificationService delivers pushes to staff phones. Implementations handle provider
// batch limits themselves.
type PushNotificationService interface {
	Send(ctx context.Context, tokens []string, msg *PushMessage) (*PushResult, error)
}
