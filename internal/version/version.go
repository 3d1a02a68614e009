package version

// Set via -ldflags at build time.
var (
	AppName        = "slash-parser"
	AppDescription = "Discord bot showcasing multi-converter slash argument parsing"
	Version        = "dev"
	BuildDate      = ""
)
