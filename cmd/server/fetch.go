package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sports-gateway/internal/app/schedule"
	"sports-gateway/internal/config"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/server"
)

type fetchOptions struct {
	league string
	team   string
	count  int
}

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run a single gateway fetch and print the result as JSON",
	}
	cmd.AddCommand(fetchGamesCmd())
	cmd.AddCommand(fetchHighlightsCmd())
	return cmd
}

func fetchGamesCmd() *cobra.Command {
	var opts fetchOptions
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Recent completed games for a league",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts, false)
		},
	}
	cmd.Flags().StringVar(&opts.league, "league", "", "League (NFL, NBA, MLB, NHL)")
	cmd.Flags().StringVar(&opts.team, "team", "", "Only games involving this team (name or abbreviation)")
	_ = cmd.MarkFlagRequired("league")
	return cmd
}

func fetchHighlightsCmd() *cobra.Command {
	var opts fetchOptions
	cmd := &cobra.Command{
		Use:   "highlights",
		Short: "Recent highlights for a league",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts, true)
		},
	}
	cmd.Flags().StringVar(&opts.league, "league", "", "League (NFL, NBA, MLB, NHL)")
	cmd.Flags().StringVar(&opts.team, "team", "", "Only highlights involving this team (name or abbreviation)")
	cmd.Flags().IntVar(&opts.count, "count", 5, "Number of highlights")
	_ = cmd.MarkFlagRequired("league")
	return cmd
}

func runFetch(cmd *cobra.Command, opts fetchOptions, wantHighlights bool) error {
	league, ok := leagues.Parse(opts.league)
	if !ok {
		return fmt.Errorf("unsupported league %q", opts.league)
	}

	cfg := config.Load()
	logger := newLogger(cfg, os.Stderr)
	gw, closeCache := server.NewGateway(cfg, logger)
	defer closeCache()

	ctx := cmd.Context()
	if wantHighlights {
		return writeOutput(cmd.OutOrStdout(), gw.FetchHighlightsForLeague(ctx, league, opts.team, opts.count))
	}
	sched := schedule.NewService(gw)
	if opts.team != "" {
		return writeOutput(cmd.OutOrStdout(), sched.TeamSchedule(ctx, league, opts.team))
	}
	return writeOutput(cmd.OutOrStdout(), sched.Games(ctx, league))
}

func writeOutput(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
