package version

const (
	AppName        = "EchoMind"
	AppDescription = "A cognitive companion that remembers, dreams, and explores on its own."
	AppVersion     = "0.1.0"
)
