package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/amaurel/robo-rollout/hub"
)

// ServeCommand runs an HTTP front over the dataset hub
func ServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use: "serve",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli := hub.NewClient(hubAddr)
			defer cli.Close()

			server := hub.NewServer(addr, cli)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			fmt.Printf("Serving datasets on %s\n", addr)
			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8090", "Listen address for the hub front")
	return cmd
}
