package service

import "github.com/google/uuid"

// RealtimeMessage is a JSON frame pushed to connected clients.
type RealtimeMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// RealtimeBroadcaster pushes messages to connected WebSocket clients.
type RealtimeBroadcaster interface {
	// Broadcast sends msg to every connection on channel.
	Broadcast(channel string, msg *RealtimeMessage)
	// SendToUser sends msg to the connections userID holds on channel.
	SendToUser(channel string, userID uuid.UUID, msg *RealtimeMessage)
}
