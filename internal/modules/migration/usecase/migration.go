package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"goalt/internal/modules/migration/domain"
	"goalt/internal/modules/migration/dto"
	migrationin "goalt/internal/modules/migration/port/in"
	migrationout "goalt/internal/modules/migration/port/out"
	"goalt/internal/modules/migration/service"
	"goalt/internal/platform/tx"
)

type Interactor struct {
	svc    *service.Migrator
	legacy migrationout.LegacyStore
	writer migrationout.NewShapeWriter
	txm    tx.Manager
	log    zerolog.Logger
}

func NewInteractor(svc *service.Migrator, legacy migrationout.LegacyStore, writer migrationout.NewShapeWriter, txm tx.Manager, log zerolog.Logger) migrationin.Usecase {
	return &Interactor{svc: svc, legacy: legacy, writer: writer, txm: txm, log: log}
}

// Run performs the one-shot two-phase migration. Phase 1 reads the legacy
// shape to completion and detaches into a staged value; phase 2 then writes
// the new shape from that value inside a single transaction. The staged value
// is scoped to this call and dies with it.
func (i *Interactor) Run(ctx context.Context) (dto.Result, error) {
	legacyPresent, err := i.legacy.DetectLegacy(ctx)
	if err != nil {
		return dto.Result{}, fmt.Errorf("detect legacy shape: %w", err)
	}
	if !legacyPresent {
		return dto.Result{}, nil
	}

	staged, err := i.extract(ctx)
	if err != nil {
		return dto.Result{}, err
	}

	result, err := i.Load(ctx, staged)
	if err != nil {
		return dto.Result{}, err
	}
	i.log.Info().
		Int("topics", result.TopicsMigrated).
		Int("sessions", result.SessionsMigrated).
		Int("snapshots", result.SnapshotsCreated).
		Msg("legacy migration completed")
	return result, nil
}

// extract is phase 1: all legacy reads finish before it returns.
func (i *Interactor) extract(ctx context.Context) (domain.Staged, error) {
	topics, err := i.legacy.Topics(ctx)
	if err != nil {
		return domain.Staged{}, fmt.Errorf("read legacy topics: %w", err)
	}
	goals, err := i.legacy.Goals(ctx)
	if err != nil {
		return domain.Staged{}, fmt.Errorf("read legacy goals: %w", err)
	}
	sessions, err := i.legacy.Sessions(ctx)
	if err != nil {
		return domain.Staged{}, fmt.Errorf("read legacy sessions: %w", err)
	}
	return i.svc.Stage(topics, goals, sessions), nil
}

// Load is phase 2: it writes the new shape from the staged value only,
// inside a single transaction.
func (i *Interactor) Load(ctx context.Context, staged domain.Staged) (dto.Result, error) {
	result := dto.Result{Migrated: true}
	err := i.txm.Within(ctx, func(ctx context.Context) error {
		if err := i.writer.ReplaceLegacySchema(ctx); err != nil {
			return err
		}
		for _, topic := range staged.Topics {
			if err := i.writer.InsertTopic(ctx, topic); err != nil {
				return err
			}
			result.TopicsMigrated++

			seeds, ok := staged.SeedsByTopic[topic.ID]
			if !ok {
				// Identity mismatch between shapes: skip this topic's
				// snapshots rather than aborting everyone else's migration.
				i.log.Warn().Str("topic_id", topic.ID).Msg("no staged goal seeds for topic, skipping")
				result.TopicsSkipped++
				continue
			}
			for _, seed := range seeds {
				if err := i.writer.InsertGoalChange(ctx, topic.ID, seed); err != nil {
					return err
				}
				result.SnapshotsCreated++
			}
		}
		for _, session := range staged.Sessions {
			if err := i.writer.InsertSession(ctx, session); err != nil {
				return err
			}
			result.SessionsMigrated++
		}
		return nil
	})
	if err != nil {
		return dto.Result{}, fmt.Errorf("write new shape: %w", err)
	}
	return result, nil
}
