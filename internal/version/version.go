// internal/version/version.go
package version

// Version is the tool version reported by --version. Overridable at link
// time via -ldflags "-X sixframe/internal/version.Version=...".
var Version = "0.2.0"
