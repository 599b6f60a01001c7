package version

// Version is the release tag; overridable at build time with
// -ldflags "-X opfind/internal/version.Version=...".
var Version = "0.1.0"
