package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LLEndaya/LeaseUp/internal/config"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

func main() {
	config.LoadDotEnv()
	utils.InitLogger(utils.AppName, config.LogLevel(os.Getenv))

	rootCmd := &cobra.Command{
		Use:   "leaseup",
		Short: "LeaseUp property management server",
	}
	rootCmd.AddCommand(
		serveCmd(),
		initDBCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
