package config

// A single point of constants definition
const (
	// CoreVersion is the semantic version of the base58 library and tool.
	CoreVersion = "0.1.0"
)
