package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"eamvu"
	"eamvu/ilos"
)

// eamvu-diag exercises the ILOS backend the same way the app does: health
// probe, connection test suite, application listing, and statistics. It is a
// field tool for diagnosing connectivity problems, not part of the app.

func newClient() (*ilos.Client, error) {
	cfg, err := eamvu.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	client, err := ilos.NewClient(cfg.APIBaseURL)
	if err != nil {
		return nil, err
	}
	client.SetTimeout(cfg.Timeout())

	if cfg.Debug {
		logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
		client.SetLogger(logger)
	}

	return client, nil
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the backend health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			health, err := client.CheckHealth(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("status: %s\n", health.Status)
			if health.Version != "" {
				fmt.Printf("version: %s\n", health.Version)
			}
			return nil
		},
	}
}

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the full connection test suite",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := context.Background()

			results := map[string]ilos.ConnectionTestResult{
				"backend":      client.TestBackendConnection(ctx),
				"applications": client.TestApplicationsEndpoint(ctx),
			}

			failed := 0
			for name, result := range results {
				mark := "ok"
				if !result.Success {
					mark = "FAIL"
					failed++
				}
				fmt.Printf("%-14s %-4s %s\n", name, mark, result.Message)
				if result.Err != "" {
					fmt.Printf("%-14s      %s\n", "", result.Err)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d connection tests failed", failed, len(results))
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List assigned applications, sorted by priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			raw, err := client.GetEAMVUApplications(context.Background())
			if err != nil {
				return err
			}

			applications := eamvu.SortApplicationsByPriority(eamvu.TransformApplications(raw))
			if len(applications) == 0 {
				fmt.Println("no applications assigned")
				return nil
			}

			for _, app := range applications {
				fmt.Printf("%-16s %-8s %-24s %-14s %s\n",
					app.LosID, app.DisplayPriority, app.ApplicantName, app.Amount, app.DisplayStatus)
			}
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show application counts by status, priority, and type",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			stats, err := client.GetApplicationStatistics(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("total: %d\n", stats.Total)
			printCounts := func(title string, counts map[string]int) {
				fmt.Printf("%s:\n", title)
				for key, count := range counts {
					fmt.Printf("  %-28s %d\n", key, count)
				}
			}
			printCounts("by status", stats.ByStatus)
			printCounts("by priority", stats.ByPriority)
			printCounts("by type", stats.ByType)
			return nil
		},
	}
}

func newAssignmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assignments",
		Short: "List every agent-to-application assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			assignments, err := client.GetAgentAssignments(context.Background())
			if err != nil {
				return err
			}

			for _, a := range assignments {
				fmt.Printf("%-12s %-20s %-16s %s\n", a.AgentID, a.AgentName, a.LosID, a.AssignedAt)
			}
			return nil
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:           "eamvu-diag",
		Short:         "Diagnostics for the ILOS EAMVU backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newHealthCmd(),
		newTestCmd(),
		newListCmd(),
		newStatsCmd(),
		newAssignmentsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
