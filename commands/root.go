package commands

import "github.com/spf13/cobra"

var hubAddr string

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use: "robo-rollout",
	}
	rootCommand.PersistentFlags().StringVar(&hubAddr, "hub", "127.0.0.1:6379", "Address of the dataset hub store")
	// adding the subcommands here
	rootCommand.AddCommand(UploadCommand())
	rootCommand.AddCommand(RolloutCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}
