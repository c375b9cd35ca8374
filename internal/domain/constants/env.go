package constants

// Deployment environments, see env.env in the configuration
const (
	EnvLocal      = "local"
	EnvProduction = "production"
)
