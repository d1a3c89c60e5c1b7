package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"goalt/internal/bootstrap"
	"goalt/internal/platform/config"
	apperrors "goalt/internal/platform/errors"
	"goalt/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".goalt"
	}
	return filepath.Join(home, ".goalt")
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "goalt",
		Short:         "Track study time per topic against daily goals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")

	root.AddCommand(newTopicCmd(&dataDir))
	root.AddCommand(newGoalCmd(&dataDir))
	root.AddCommand(newSessionCmd(&dataDir))
	root.AddCommand(newStatusCmd(&dataDir))
	root.AddCommand(newStreakCmd(&dataDir))
	root.AddCommand(newSummaryCmd(&dataDir))
	root.AddCommand(newMigrateCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, config.Config, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, config.Config{}, err
	}
	app, err := bootstrap.New(cfg, logging.New(os.Stderr))
	if err != nil {
		return nil, config.Config{}, err
	}
	return app, cfg, nil
}

func parseDay(raw string, cfg config.Config) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, cfg.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, want YYYY-MM-DD", raw)
	}
	return day, nil
}

func parseInstant(raw string, cfg config.Config) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, raw, cfg.Location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

func newTopicCmd(dataDir *string) *cobra.Command {
	topic := &cobra.Command{Use: "topic", Short: "Manage topics"}

	var goalMinutes int
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TopicCLI.Create(context.Background(), args[0], goalMinutes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "topic created: %s (%s)\n", out.Name, out.ID)
			return nil
		},
	}
	add.Flags().IntVar(&goalMinutes, "goal", 0, "initial daily goal in minutes")
	topic.AddCommand(add)

	topic.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List topics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			topics, err := app.TopicCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(topics) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no topics")
				return nil
			}
			for _, t := range topics {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t.ID, t.Name)
			}
			return nil
		},
	})

	var topicID string
	remove := &cobra.Command{
		Use:   "remove --id <id>",
		Short: "Delete a topic with its sessions and goal history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(topicID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.TopicCLI.Remove(context.Background(), topicID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "topic removed: %s\n", topicID)
			return nil
		},
	}
	remove.Flags().StringVar(&topicID, "id", "", "topic id")
	topic.AddCommand(remove)
	return topic
}

func newGoalCmd(dataDir *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage daily goals"}

	var topicID string
	var minutes int
	set := &cobra.Command{
		Use:   "set --topic-id <id> --minutes <n>",
		Short: "Record a new goal snapshot effective today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(topicID) == "" {
				return fmt.Errorf("--topic-id is required")
			}
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TopicCLI.SetGoal(context.Background(), topicID, minutes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal set: %d min/day from %s\n", out.Minutes, out.EffectiveFromDay.Format("2006-01-02"))
			return nil
		},
	}
	set.Flags().StringVar(&topicID, "topic-id", "", "topic id")
	set.Flags().IntVar(&minutes, "minutes", 0, "daily goal in minutes")
	goal.AddCommand(set)

	var showTopicID, day string
	show := &cobra.Command{
		Use:   "show --topic-id <id>",
		Short: "Show the goal active for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showTopicID) == "" {
				return fmt.Errorf("--topic-id is required")
			}
			app, cfg, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			target, err := parseDay(day, cfg)
			if err != nil {
				return err
			}
			out, err := app.TopicCLI.ResolveGoal(context.Background(), showTopicID, target)
			if err != nil {
				return err
			}
			if !out.Known {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goal set for that day")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d min/day\n", out.Minutes)
			return nil
		},
	}
	show.Flags().StringVar(&showTopicID, "topic-id", "", "topic id")
	show.Flags().StringVar(&day, "day", "", "day (YYYY-MM-DD, default today)")
	goal.AddCommand(show)
	return goal
}

func newSessionCmd(dataDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Study session lifecycle"}

	var topicID string
	start := &cobra.Command{
		Use:   "start --topic-id <id>",
		Short: "Start the study timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(topicID) == "" {
				return fmt.Errorf("--topic-id is required")
			}
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Start(context.Background(), topicID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session started for %s at %s\n", out.TopicName, out.StartedAt.Format(time.RFC3339))
			return nil
		},
	}
	start.Flags().StringVar(&topicID, "topic-id", "", "topic id")
	session.AddCommand(start)

	var note string
	end := &cobra.Command{
		Use:   "end",
		Short: "Stop the study timer and record the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.End(context.Background(), note)
			if err != nil {
				return err
			}
			if out.Discarded {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session under one minute, discarded")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session recorded: %d minutes\n", out.DurationMinutes)
			return nil
		},
	}
	end.Flags().StringVar(&note, "note", "", "session note")
	session.AddCommand(end)

	var logTopicID, startRaw, endRaw, logNote string
	logCmd := &cobra.Command{
		Use:   "log --topic-id <id> --start <ts> --end <ts>",
		Short: "Record a past session with explicit bounds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(logTopicID) == "" || strings.TrimSpace(startRaw) == "" || strings.TrimSpace(endRaw) == "" {
				return fmt.Errorf("--topic-id, --start, and --end are required")
			}
			app, cfg, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			startedAt, err := parseInstant(startRaw, cfg)
			if err != nil {
				return err
			}
			endedAt, err := parseInstant(endRaw, cfg)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Log(context.Background(), logTopicID, startedAt, endedAt, logNote)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session logged: %d minutes on %s\n", out.DurationMinutes, out.StartedAt.Format("2006-01-02"))
			return nil
		},
	}
	logCmd.Flags().StringVar(&logTopicID, "topic-id", "", "topic id")
	logCmd.Flags().StringVar(&startRaw, "start", "", "start timestamp")
	logCmd.Flags().StringVar(&endRaw, "end", "", "end timestamp")
	logCmd.Flags().StringVar(&logNote, "note", "", "session note")
	session.AddCommand(logCmd)

	session.AddCommand(&cobra.Command{
		Use:   "current",
		Short: "Show the running study timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			active, err := app.SessionCLI.GetActive(context.Background())
			if errors.Is(err, apperrors.ErrNoActiveSession) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no active session")
				return nil
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "studying %s since %s\n", active.TopicName, active.StartedAt.Format(time.RFC3339))
			return nil
		},
	})

	var listTopicID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			sessions, err := app.SessionCLI.List(context.Background(), listTopicID)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%dmin\t%s\n", s.ID, s.TopicID, s.StartedAt.Format("2006-01-02 15:04"), s.DurationMinutes, s.Note)
			}
			return nil
		},
	}
	list.Flags().StringVar(&listTopicID, "topic-id", "", "filter by topic id")
	session.AddCommand(list)
	return session
}

func newStatusCmd(dataDir *string) *cobra.Command {
	var day string
	status := &cobra.Command{
		Use:   "status",
		Short: "Per-topic completion for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cfg, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			target, err := parseDay(day, cfg)
			if err != nil {
				return err
			}
			out, ok, err := app.StatsCLI.Status(context.Background(), target)
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions that day")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "status for %s\n", out.Day.Format("2006-01-02"))
			for _, entry := range out.Entries {
				goal := "no goal"
				if entry.GoalKnown {
					goal = fmt.Sprintf("goal %dmin", entry.GoalMinutes)
				}
				marker := " "
				if entry.Met {
					marker = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\t%dmin\t%s\n", marker, entry.TopicName, entry.TotalMinutes, goal)
			}
			return nil
		},
	}
	status.Flags().StringVar(&day, "day", "", "day (YYYY-MM-DD, default today)")
	return status
}

func newStreakCmd(dataDir *string) *cobra.Command {
	var topicID string
	streak := &cobra.Command{
		Use:   "streak",
		Short: "Current and longest day streaks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.StatsCLI.Streaks(context.Background(), topicID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "current=%d longest=%d\n", out.Current, out.Longest)
			return nil
		},
	}
	streak.Flags().StringVar(&topicID, "topic-id", "", "scope to one topic (default: global)")
	return streak
}

func newSummaryCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Per-topic totals, goals, and streaks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			rows, err := app.StatsCLI.Summary(context.Background())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no topics")
				return nil
			}
			for _, row := range rows {
				goal := "no goal"
				if row.GoalKnown {
					goal = fmt.Sprintf("%dmin/day", row.GoalMinutes)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\ttotal=%dmin today=%dmin goal=%s streak=%d/%d\n",
					row.TopicName, row.TotalMinutes, row.TodayMinutes, goal, row.CurrentStreak, row.LongestStreak)
			}
			return nil
		},
	}
}

func newMigrateCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate a legacy store to the snapshot shape",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			// Bootstrap already migrates on load; this reports the outcome
			// for operators running it explicitly.
			out, err := app.MigrationCLI.Run(context.Background())
			if err != nil {
				return err
			}
			if !out.Migrated {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "store already in current shape")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "migrated %d topics, %d sessions, %d goal snapshots (%d skipped)\n",
				out.TopicsMigrated, out.SessionsMigrated, out.SnapshotsCreated, out.TopicsSkipped)
			return nil
		},
	}
}
