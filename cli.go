//go:build cli
// +build cli

package main

import (
	_ "stockfilter.GO/cron/jobs"
	_ "stockfilter.GO/custom"

	"stockfilter.GO/cmd"
	"stockfilter.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
