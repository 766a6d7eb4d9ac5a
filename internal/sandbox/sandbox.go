package sandbox

import (
	"strings"
)

const (
	markerEnv    = "FLATPAK_ID="
	shellEnv     = "PS1="
	portalFailed = "Portal call failed: org.freedesktop.DBus.Error.ServiceUnknown"

	// PortalMessage explains how to let a sandboxed mpv spawn host processes.
	PortalMessage = "Error: mpv is in a flatpak. Enable talk-name for org.freedesktop.Flatpak (Note: This negates the flatpak sandbox)"
)

// Check reports whether environ describes a Flatpak sandbox. An interactive
// shell marker anywhere in the list means we were started from a terminal
// inside the sandbox and host spawning is not wanted.
func Check(environ []string) bool {
	found := false
	for _, entry := range environ {
		if strings.Contains(entry, shellEnv) {
			return false
		}
		if strings.Contains(entry, markerEnv) {
			found = true
		}
	}
	return found
}

// Wrap prefixes argv with flatpak-spawn so the command runs on the host.
func Wrap(argv []string, sandboxed bool) []string {
	if !sandboxed {
		return append([]string(nil), argv...)
	}
	out := make([]string, 0, len(argv)+2)
	out = append(out, "flatpak-spawn", "--host")
	return append(out, argv...)
}

// PortalFailure recognises the stderr flatpak-spawn prints when the
// org.freedesktop.Flatpak talk-name is missing.
func PortalFailure(stderr string) bool {
	cleaned := strings.NewReplacer("\r\n", "", "\r", "", "\n", "").Replace(stderr)
	return cleaned == portalFailed
}
