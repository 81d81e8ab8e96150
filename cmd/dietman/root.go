package dietman

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saadjs/dietman/internal/config"
	"github.com/saadjs/dietman/internal/session"
	"github.com/saadjs/dietman/internal/storage"
	"github.com/saadjs/dietman/pkg/logger"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "dietman",
	Short: "dietman tracks your diet and weight from your terminal",
	Long: "dietman is an interactive diet and weight-tracking assistant: keep a profile, " +
		"log meals against weekdays, and check BMI, BMR and calorie targets. " +
		"State is stored as plain text files in the data directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		dir := dataDir
		if dir == "" {
			dir = cfg.DataDir
		}
		log := logger.New("dietman", cfg.LogDir)
		defer log.Sync()

		s := session.New(cmd.InOrStdin(), cmd.OutOrStdout(), storage.New(dir), log)
		return s.Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Path to the data directory")
}
