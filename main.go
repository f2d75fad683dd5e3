package main

import (
	"fmt"
	"os"

	"github.com/amaurel/robo-rollout/commands"
)

// main entry point to the rollout and dataset tools
func main() {
	// rootCommand defines a command line argument parser (some arguments and a subcommand to run)
	rootCommand := commands.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
