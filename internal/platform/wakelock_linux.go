package platform

import (
	"fmt"
	"os/exec"
)

func newWakeLock(appName, reason string) WakeLock {
	path, err := exec.LookPath("systemd-inhibit")
	if err != nil {
		return &processWakeLock{}
	}
	return &processWakeLock{command: []string{
		path,
		"--what=idle",
		fmt.Sprintf("--who=%s", appName),
		fmt.Sprintf("--why=%s", reason),
		"--mode=block",
		"sleep", "infinity",
	}}
}
