// Package constants holds string constants shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// WebSocket channels.
const (
	ChannelDelivery = "delivery"
	ChannelAdmin    = "admin"
)
