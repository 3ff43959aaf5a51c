package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/league-fixtures-service/internal/config"
	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/matchform"
	"github.com/preston-bernstein/league-fixtures-service/internal/refdata"
	"github.com/preston-bernstein/league-fixtures-service/internal/server"
)

// leagueClient is what the commands need from the league API.
type leagueClient interface {
	matchform.AuthenticatedClient
	refdata.Source
}

type app struct {
	cfg       config.Config
	logger    *slog.Logger
	out       io.Writer
	newClient func(config.LeagueAPIConfig, *slog.Logger) leagueClient
}

func newLeagueClient(cfg config.LeagueAPIConfig, logger *slog.Logger) leagueClient {
	return server.BuildLeagueClient(cfg, logger, nil)
}

// draftFlags holds the fixture fields shared by every subcommand.
type draftFlags struct {
	date      string
	home      int64
	away      int64
	matchType int64
	ageGroup  int64
	season    int64
	division  int64
	status    string
	homeScore string
	awayScore string
}

func (f *draftFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "Match date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&f.home, "home", 0, "Home team id")
	cmd.Flags().Int64Var(&f.away, "away", 0, "Away team id")
	cmd.Flags().Int64Var(&f.matchType, "match-type", 0, "Match type id")
	cmd.Flags().Int64Var(&f.ageGroup, "age-group", 0, "Age group id")
	cmd.Flags().Int64Var(&f.season, "season", 0, "Season id")
	cmd.Flags().Int64Var(&f.division, "division", 0, "Division id (required for League matches)")
	cmd.Flags().StringVar(&f.status, "status", "", "Fixture status (scheduled, completed, postponed, cancelled)")
}

func (f *draftFlags) fields() fixtures.Fields {
	return fixtures.Fields{
		Date:        f.date,
		MatchTypeID: f.matchType,
		AgeGroupID:  f.ageGroup,
		SeasonID:    f.season,
		DivisionID:  f.division,
		HomeTeamID:  f.home,
		AwayTeamID:  f.away,
		Status:      fixtures.Status(f.status),
	}
}

func (f *draftFlags) draft(mode fixtures.Mode) fixtures.Draft {
	if mode == fixtures.ModeScore {
		return fixtures.ScoreDraft{
			Fields:    f.fields(),
			HomeScore: fixtures.ScoreEntry(f.homeScore),
			AwayScore: fixtures.ScoreEntry(f.awayScore),
		}
	}
	return fixtures.ScheduleDraft{Fields: f.fields()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "fixturectl",
		Short:         "Schedule fixtures and record results",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.cfg.League.BaseURL, "base-url", a.cfg.League.BaseURL, "League API base URL")
	root.PersistentFlags().StringVar(&a.cfg.League.Token, "token", a.cfg.League.Token, "Bearer token for the league API")
	root.PersistentFlags().DurationVar(&a.cfg.League.Timeout, "timeout", a.cfg.League.Timeout, "Per-request timeout")

	root.AddCommand(submitCmd(a, fixtures.ModeSchedule))
	root.AddCommand(submitCmd(a, fixtures.ModeScore))
	root.AddCommand(conflictsCmd(a))
	return root
}

func submitCmd(a *app, mode fixtures.Mode) *cobra.Command {
	var flags draftFlags
	cmd := &cobra.Command{
		Use:   string(mode),
		Short: "Schedule a fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.submit(cmd.Context(), flags.draft(mode))
		},
	}
	flags.bind(cmd)
	if mode == fixtures.ModeScore {
		cmd.Short = "Record or amend a result"
		cmd.Flags().StringVar(&flags.homeScore, "home-score", "", "Home team score")
		cmd.Flags().StringVar(&flags.awayScore, "away-score", "", "Away team score")
	}
	return cmd
}

func conflictsCmd(a *app) *cobra.Command {
	var flags draftFlags
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Look up an existing fixture for a date and pair of teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.conflicts(cmd.Context(), flags.draft(fixtures.ModeSchedule))
		},
	}
	flags.bind(cmd)
	for _, name := range []string{"date", "home", "away"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (a *app) submit(ctx context.Context, draft fixtures.Draft) error {
	client := a.newClient(a.cfg.League, a.logger)

	refs := refdata.Select(a.cfg.RefData.Source, client, a.cfg.RefData.Retries, a.logger)
	catalog, err := refdata.Load(ctx, refs)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	ctrl := matchform.NewController(matchform.Config{
		Client: client,
		Lookup: catalog,
		Draft:  draft,
		Logger: a.logger,
	})
	defer ctrl.Close()

	start := time.Now()
	outcome, err := ctrl.Submit(ctx)
	fmt.Fprintln(a.out, ctrl.Message())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "match %d (%s) in %s\n", outcome.Record.ID, outcome.Record.Status, time.Since(start).Round(time.Millisecond))
	return nil
}

func (a *app) conflicts(ctx context.Context, draft fixtures.Draft) error {
	client := a.newClient(a.cfg.League, a.logger)

	res, err := matchform.NewConflictChecker(client).Check(ctx, draft)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if res.Exists {
		fmt.Fprintf(a.out, "existing fixture: match %d\n", res.MatchID)
		return nil
	}
	fmt.Fprintln(a.out, "no existing fixture")
	return nil
}
