package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case chainMode:
		chainMain(cli.Chain)
	case probeMode:
		probeMain(cli.Probe)
	case versionMode:
		fmt.Println("compvid", version())
	default:
		runMain(cli.Run)
	}
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
