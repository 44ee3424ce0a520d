//go:build !unix

package generator

import (
	"os/exec"
	"time"
)

const waitDelay = 2 * time.Second

// killProcessGroupOnCancel keeps exec's default cancel, which kills the direct child only.
func killProcessGroupOnCancel(cmd *exec.Cmd) {}
