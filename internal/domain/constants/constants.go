// Package constants holds values shared across layers that have no better home.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env name used for deployed environments.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal pushes events over HTTP to a locally running notifier.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// PinFeedLimit caps the number of pins returned by the public feed.
	PinFeedLimit = 100
)
