package main

import (
	"context"
	"os"

	"sysreport/internal/logger"
	"sysreport/internal/sysinfo"
)

func main() {
	logger.InitLogger()
	logger.Main.Debug().Msg("Starting system report")

	os.Exit(execute(context.Background(), newRootCmd(sysinfo.NewCollector()), os.Stderr))
}
