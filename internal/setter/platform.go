package setter

import "strings"

// Platform identifies which desktop setter contract applies.
type Platform int

const (
	// X11 sets the background with feh.
	X11 Platform = iota
	// Wayland sets the background with swww.
	Wayland
)

// SessionEnv is the environment variable consulted by Detect.
const SessionEnv = "XDG_SESSION_TYPE"

const transitionStep = "10"

func (p Platform) String() string {
	switch p {
	case Wayland:
		return "wayland"
	default:
		return "x11"
	}
}

// Binary returns the setter executable for p.
func (p Platform) Binary() string {
	switch p {
	case Wayland:
		return "swww"
	default:
		return "feh"
	}
}

// Parse maps a session type to a Platform. Anything other than "wayland"
// resolves to X11.
func Parse(value string) Platform {
	if strings.EqualFold(strings.TrimSpace(value), "wayland") {
		return Wayland
	}
	return X11
}

// Detect resolves the Platform from the session environment.
func Detect(getenv func(string) string) Platform {
	if getenv == nil {
		return X11
	}
	return Parse(getenv(SessionEnv))
}

// Command returns the executable and arguments that apply path on p.
func Command(p Platform, path string) (string, []string) {
	switch p {
	case Wayland:
		return p.Binary(), []string{"img", path, "--transition-step", transitionStep}
	default:
		return p.Binary(), []string{"--bg-scale", path}
	}
}

// ProbeCommand returns a harmless invocation used to check that the setter
// binary is installed.
func ProbeCommand(p Platform) (string, []string) {
	return p.Binary(), []string{"--version"}
}
