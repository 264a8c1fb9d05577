package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/emicon/internal/logging"
)

const defaultLogsLines = 50

var logsLines int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the end of the interactive session log",
	Long: `Show the end of the log file written by the interactive picker.

CLI subcommands log to stderr; the picker writes JSON lines to
$XDG_STATE_HOME/emicon/logs instead.

Examples:
  emicon logs           # Last 50 lines
  emicon logs -n 200    # Last 200 lines`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := logging.LogFilePath(app.Config.Logging.LogDir)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println(app.Theme.Subtle.Render("no log file at " + path))
			return nil
		}
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	lines, err := tailLines(f, logsLines)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// tailLines returns the last n lines of r, all of them when n <= 0.
func tailLines(r io.Reader, n int) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	return lines, scanner.Err()
}
