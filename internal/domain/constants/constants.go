// Package constants holds configuration values shared across layers.
package constants

const (
	// EnvDevelop is the env.env value for local development.
	EnvDevelop = "develop"
)

// Change-feed publisher providers
const (
	PubSubProviderLocal     = "local"
	PubSubProviderGoogle    = "google"
	PubSubProviderInProcess = "inprocess"
)

// Rewarded ad providers
const (
	AdsProviderSimulated = "simulated"
	AdsProviderClient    = "client"
)

// Ad error policies
const (
	AdErrorPolicyRetry  = "retry"
	AdErrorPolicyBypass = "bypass"
)

// Media runtimes
const (
	MediaRuntimeNative  = "native"
	MediaRuntimeBrowser = "browser"
)
