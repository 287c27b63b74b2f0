package platform

import "os/exec"

func newWakeLock(_, _ string) WakeLock {
	path, err := exec.LookPath("caffeinate")
	if err != nil {
		return &processWakeLock{}
	}
	return &processWakeLock{command: []string{path, "-d", "-i"}}
}
