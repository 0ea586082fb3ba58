package setter

import (
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Launcher starts an external process without waiting for it.
type Launcher interface {
	Launch(name string, args ...string) error
}

// ExecLauncher launches processes with os/exec. Output is discarded so the
// child cannot draw over the terminal UI.
type ExecLauncher struct {
	Log logrus.FieldLogger
}

var _ Launcher = ExecLauncher{}

// Launch starts name with args. Only a failure to start is reported; the exit
// status is collected in the background and never inspected.
func (l ExecLauncher) Launch(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	if l.Log != nil {
		l.Log.WithFields(logrus.Fields{"binary": name, "pid": cmd.Process.Pid}).Debug("setter started")
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
