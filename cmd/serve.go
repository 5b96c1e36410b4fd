package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sysprobe/cpusnap/api"
	config "github.com/sysprobe/cpusnap/configuration"
	"github.com/sysprobe/cpusnap/internal/platform"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose CPU snapshots over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger()
		defer logger.Sync()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		if err := platform.ValidateSupport(); err != nil {
			zap.S().Warn(err.Error())
		}

		server := api.NewServer()

		// Handle graceful shutdown
		go func() {
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			<-sigChan

			if err := server.Shutdown(); err != nil {
				zap.S().Errorw("error during shutdown", "error", err)
			}
		}()

		address := config.GetListenAddress()
		zap.S().Infow("starting cpusnap server", "address", address)

		return server.Start(address)
	},
}

func init() {
	serveCmd.Flags().String("listen-address", "0.0.0.0:8080", "address to serve the API on")
	rootCmd.AddCommand(serveCmd)
}
