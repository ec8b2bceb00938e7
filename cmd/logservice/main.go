package main

import (
	"fmt"
	"os"

	"github.com/corevecdb/corevec/internal/utils"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

var rootCmd = &cobra.Command{
	Use:   "corevec",
	Short: "corevec root command",
	Long:  `corevec root command`,
}

func init() {
	rootCmd.AddCommand(Cmd)
}

func main() {
	utils.LogLevel = zerolog.InfoLevel
	utils.ConfigureLogger()
	if _, err := maxprocs.Set(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
