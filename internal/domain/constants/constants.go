// Package constants holds string identifiers shared by config, infra and delivery.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Object storage providers.
const (
	StorageProviderCloudinary = "cloudinary"
	StorageProviderBlob       = "blob"
)

// Domain event types.
const (
	EventServiceCreated   = "service.created"
	EventServiceModerated = "service.moderated"
	EventRatingAppended   = "rating.appended"
	EventRentCreated      = "rent.created"
)

// Claim values carried by session tokens.
const (
	ClaimRoleAdmin = "admin"
)
