package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mini-vite/create/internal/logger"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the last scaffold log",
	Long: `Show the most recent scaffold log.
Use --path to print only its location.`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var flagLogsPath bool

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().BoolVar(&flagLogsPath, "path", false, "print the log file path instead of its content")
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := logDir(cfg)

	logPath := logger.LatestLogPath(dir)
	if logPath == "" {
		return fmt.Errorf("no scaffold logs found in %s", dir)
	}
	if flagLogsPath {
		fmt.Println(logPath)
		return nil
	}

	f, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(os.Stdout, f); err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	return nil
}
