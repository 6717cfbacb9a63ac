package version

// Version is the site release, overridable at build time with ldflags.
var Version = "1.0"

// Info returns the fields served by the /api/version endpoint and printed
// in the page footer.
func Info() map[string]string {
	return map[string]string{
		"version": Version,
	}
}
