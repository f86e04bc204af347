package cmd

import (
	"fmt"
	"runtime"

	"github.com/mkarhu/metaprobe/utils"
)

// workerCount applies the worker policy shared by the bulk commands: an
// explicit request wins, otherwise one worker per CPU, clamped to a
// single worker when any input lives on a network mount.
func workerCount(requested int, files []string) int {
	if requested > 0 {
		return requested
	}

	for _, file := range files {
		if utils.IsNetworkDrive(file) {
			fmt.Printf("⚠️  Network drive detected, using 1 worker for optimal performance\n")
			return 1
		}
	}
	return runtime.NumCPU()
}
