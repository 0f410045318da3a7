package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rezan-m/NutriPlanBack/internal/models"
)

var (
	ErrProfileIncomplete = errors.New("profile is missing required fields")
	ErrInvalidInput      = errors.New("invalid input")
)

// surplus above this share of TDEE gets a user-facing advisory on top of the
// stored warning flag
const surplusAdvisoryPercent = 35

type profileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
}

type goalReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Goal, error)
}

type targetsStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.DailyTargets, error)
	Upsert(ctx context.Context, targets *models.DailyTargets) error
}

// Notifier delivers advisory events to a connected user. Implementations
// must not block; delivery is best-effort.
type Notifier interface {
	Notify(userID int64, eventType, message string)
}

type TargetsService struct {
	profileRepo profileReader
	goalRepo    goalReader
	targetsRepo targetsStore
	notifier    Notifier
	now         func() time.Time
}

func NewTargetsService(
	profileRepo profileReader,
	goalRepo goalReader,
	targetsRepo targetsStore,
	notifier Notifier,
) *TargetsService {
	return &TargetsService{
		profileRepo: profileRepo,
		goalRepo:    goalRepo,
		targetsRepo: targetsRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

// Recalculate recomputes the user's daily targets from the stored profile
// and goal, persisting and broadcasting only when a computed field actually
// changed. The returned bool reports whether a write happened; a recompute
// that lands on identical values is a no-op, which keeps reactive callers
// from re-triggering themselves.
func (s *TargetsService) Recalculate(ctx context.Context, userID int64) (*models.DailyTargets, bool, error) {
	if userID <= 0 {
		return nil, false, ErrInvalidInput
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, ErrProfileIncomplete
		}
		return nil, false, err
	}

	goal, err := s.goalRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	computed := ComputeDailyTargets(profile, goal, s.now())
	if computed == nil {
		return nil, false, ErrProfileIncomplete
	}
	computed.UserID = userID

	stored, err := s.targetsRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}
	if stored != nil && stored.Equal(computed) {
		return stored, false, nil
	}

	if err := s.targetsRepo.Upsert(ctx, computed); err != nil {
		return nil, false, err
	}

	s.publishChange(computed)

	return computed, true, nil
}

// publishChange pushes the update event, plus a surplus advisory for targets
// whose surplus clears the advisory threshold.
func (s *TargetsService) publishChange(targets *models.DailyTargets) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(targets.UserID, "targets_updated", "Daily targets recalculated")
	if surplus := targets.SurplusPercent(); surplus > surplusAdvisoryPercent {
		s.notifier.Notify(targets.UserID, "high_surplus_advisory",
			fmt.Sprintf("Your plan implies a %d%% calorie surplus; consider a later goal date", surplus))
	}
}

// Get returns the stored targets without recomputing.
func (s *TargetsService) Get(ctx context.Context, userID int64) (*models.DailyTargets, error) {
	if userID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.targetsRepo.GetByUserID(ctx, userID)
}
