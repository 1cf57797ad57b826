// buildinfo.go captures build metadata for the --version output.
package buildinfo

// Version is injected at build time via -ldflags and defaults to dev.
var Version = "dev"

// Commit is the short git hash the binary was built from, when injected.
var Commit = ""

// String formats the version with the commit suffix when present.
func String() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
