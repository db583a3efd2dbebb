package version

// Version is the CLI version, overridden at build time via
// -ldflags "-X github.com/loomcms/cli/internal/version.Version=...".
var Version = "dev"
