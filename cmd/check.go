package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhubert/anonchat/internal/api"
	"github.com/zhubert/anonchat/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check backend connectivity and exit",
	Long: `Resolves the backend address the client would use, fetches the room
list, and reports the result. Useful for diagnosing connection problems
before starting the TUI.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	return runCheckWithWriter(os.Stdout)
}

// runCheckWithWriter allows injecting a writer for testing
func runCheckWithWriter(out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	client := api.New(cfg.ResolveBackendURL(backendURL))
	fmt.Fprintf(out, "Backend: %s\n", client.BaseURL())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	rooms, err := client.ListRooms(ctx)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		fmt.Fprintf(out, "Status:  unreachable (%v)\n", err)
		return fmt.Errorf("backend check failed")
	}

	fmt.Fprintf(out, "Status:  ok (%v)\n", elapsed)
	fmt.Fprintf(out, "Rooms:   %d\n", len(rooms))
	for _, room := range rooms {
		fmt.Fprintf(out, "  - %s\n", room.Name)
	}
	return nil
}
