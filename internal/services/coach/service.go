package coach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gridiron/internal/common/clock"
	"github.com/KirkDiggler/gridiron/internal/common/uuid"
	"github.com/KirkDiggler/gridiron/internal/deck"
	"github.com/KirkDiggler/gridiron/internal/dice"
	"github.com/KirkDiggler/gridiron/internal/drive"
	"github.com/KirkDiggler/gridiron/internal/models"
	coachRepo "github.com/KirkDiggler/gridiron/internal/repositories/coach"
	lockRepo "github.com/KirkDiggler/gridiron/internal/repositories/lock"
	sessionRepo "github.com/KirkDiggler/gridiron/internal/repositories/session"
	"github.com/KirkDiggler/gridiron/internal/services/commentary"
	"github.com/KirkDiggler/gridiron/internal/zones"
)

const (
	defaultStartingCoachingPoints = 100
	defaultInitialHandSize        = 5
	defaultLockTimeout            = 5 * time.Second
	defaultLockTTL                = 30 * time.Second
	lockReleaseTimeout            = 2 * time.Second

	coachLockPrefix = "coach:"
)

// service implements the Service interface
type service struct {
	startingPoints int
	handSize       int
	lockTimeout    time.Duration
	lockTTL        time.Duration

	sessionRepo sessionRepo.Repository
	coachRepo   coachRepo.Repository
	lockRepo    lockRepo.Repository

	catalog    Catalog
	assembler  *deck.Assembler
	resolver   *drive.Resolver
	roller     dice.Roller
	clock      clock.Clock
	uuid       uuid.UUID
	commentary commentary.Service
	log        *zap.Logger
}

// New creates a new coach service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.CoachRepo == nil {
		return nil, ErrNilCoachRepo
	}
	if cfg.LockRepo == nil {
		return nil, ErrNilLockRepo
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	assembler, err := deck.New(&deck.Config{
		Cards:      cfg.Catalog,
		DiceRoller: cfg.DiceRoller,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create deck assembler: %w", err)
	}

	svc := &service{
		startingPoints: defaultStartingCoachingPoints,
		handSize:       defaultInitialHandSize,
		lockTimeout:    cfg.LockTimeout,
		lockTTL:        cfg.LockTTL,
		sessionRepo:    cfg.SessionRepo,
		coachRepo:      cfg.CoachRepo,
		lockRepo:       cfg.LockRepo,
		catalog:        cfg.Catalog,
		assembler:      assembler,
		resolver:       drive.NewResolver(cfg.DiceRoller),
		roller:         cfg.DiceRoller,
		clock:          cfg.Clock,
		uuid:           cfg.UUIDGenerator,
		commentary:     cfg.Commentary,
		log:            cfg.Logger,
	}

	if cfg.StartingCoachingPoints != nil {
		svc.startingPoints = *cfg.StartingCoachingPoints
	}
	if cfg.InitialHandSize != nil {
		svc.handSize = *cfg.InitialHandSize
	}
	if svc.startingPoints < 0 {
		return nil, ErrNegativeStartingPoints
	}
	if svc.handSize < 0 {
		return nil, ErrNegativeHandSize
	}
	if svc.lockTimeout == 0 {
		svc.lockTimeout = defaultLockTimeout
	}
	if svc.lockTTL == 0 {
		svc.lockTTL = defaultLockTTL
	}
	if svc.log == nil {
		svc.log = zap.NewNop()
	}

	return svc, nil
}

// StartSession assembles a deck, deals the opening hand and makes it the coach's current session
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.CoachID == "" {
		return nil, ErrInvalidInput
	}

	release, err := s.acquire(ctx, coachLockKey(input.CoachID), "start_session")
	if err != nil {
		return nil, err
	}
	defer release()

	coach, err := s.coachRepo.GetCoach(ctx, &coachRepo.GetCoachInput{CoachID: input.CoachID})
	switch {
	case errors.Is(err, coachRepo.ErrCoachNotFound):
		coach = &models.Coach{ID: input.CoachID}
	case err != nil:
		return nil, err
	}

	archetype, found := s.catalog.ResolveArchetype(input.Archetype)
	if !found && input.Archetype != "" {
		s.log.Warn("unknown archetype, using default",
			zap.String("coach_id", input.CoachID),
			zap.String("requested", input.Archetype),
			zap.String("archetype", archetype.ID))
	}
	if !s.catalog.Unlocked(archetype, coach.BestScore) {
		return nil, ErrArchetypeLocked
	}

	assembled := s.assembler.Assemble(archetype.ID)

	name := input.CoachName
	if name == "" {
		name = coach.Name
	}
	if name == "" {
		name = coach.ID
	}

	now := s.clock.Now()
	session := &models.Session{
		ID:             s.uuid.NewUUID(),
		CoachID:        coach.ID,
		CoachName:      name,
		Archetype:      assembled.Archetype.ID,
		Deck:           assembled.Instances,
		CoachingPoints: s.startingPoints,
		Progress:       models.NewProgress(),
		Status:         models.SessionStatusActive,
		InstanceSeq:    len(assembled.Instances),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	session.ResetPossession()

	dealt, err := zones.Deal(session, s.roller, s.handSize)
	if err != nil {
		return nil, zoneError(err)
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: dealt}); err != nil {
		return nil, err
	}

	coach.Name = name
	coach.CurrentSessionID = dealt.ID
	coach.SessionsPlayed++
	coach.LastPlayedAt = now
	if err := s.coachRepo.SaveCoach(ctx, &coachRepo.SaveCoachInput{Coach: coach}); err != nil {
		return nil, err
	}

	s.log.Info("session started",
		zap.String("session_id", dealt.ID),
		zap.String("coach_id", coach.ID),
		zap.String("archetype", dealt.Archetype),
		zap.Int("deck_size", len(dealt.Deck)))

	return &StartSessionOutput{
		Session:           dealt,
		Archetype:         assembled.Archetype,
		ArchetypeFallback: !found,
	}, nil
}

// GetSession returns a session by ID
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Session: session}, nil
}

// ListSessions returns a coach's sessions, or every active session when no coach is given
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.CoachID != "" {
		sessions, err := s.sessionRepo.GetSessionsByCoach(ctx, &sessionRepo.GetSessionsByCoachInput{
			CoachID: input.CoachID,
		})
		if err != nil {
			return nil, err
		}
		return &ListSessionsOutput{Sessions: sessions}, nil
	}

	active, err := s.sessionRepo.GetActiveSessions(ctx, &sessionRepo.GetActiveSessionsInput{})
	if err != nil {
		return nil, err
	}
	return &ListSessionsOutput{Sessions: active.Sessions}, nil
}

// AbandonSession deletes the coach's current session
func (s *service) AbandonSession(ctx context.Context, input *AbandonSessionInput) (*AbandonSessionOutput, error) {
	if input == nil || input.CoachID == "" {
		return nil, ErrInvalidInput
	}

	releaseCoach, err := s.acquire(ctx, coachLockKey(input.CoachID), "abandon_session")
	if err != nil {
		return nil, err
	}
	defer releaseCoach()

	coach, err := s.getCoach(ctx, input.CoachID)
	if err != nil {
		return nil, err
	}
	if coach.CurrentSessionID == "" {
		return nil, ErrSessionNotFound
	}
	sessionID := coach.CurrentSessionID

	release, err := s.acquire(ctx, sessionID, "abandon_session")
	if err != nil {
		return nil, err
	}
	defer release()

	var score float64
	session, err := s.loadSession(ctx, sessionID)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		// stale pointer; clearing it below is all that is left to do
	case err != nil:
		return nil, err
	default:
		score = session.Score
		if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{SessionID: sessionID}); err != nil {
			return nil, err
		}
	}

	if err := s.coachRepo.UpdateCoachSession(ctx, &coachRepo.UpdateCoachSessionInput{
		CoachID: input.CoachID,
	}); err != nil {
		return nil, err
	}

	s.log.Info("session abandoned",
		zap.String("session_id", sessionID),
		zap.String("coach_id", input.CoachID),
		zap.Float64("score", score))

	return &AbandonSessionOutput{
		SessionID: sessionID,
		Score:     score,
	}, nil
}

func coachLockKey(coachID string) string {
	return coachLockPrefix + coachID
}

// acquire takes the lock on key and returns its release func. Coach locks are
// always taken before session locks.
func (s *service) acquire(ctx context.Context, key, op string) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	held, err := s.lockRepo.Acquire(lockCtx, &lockRepo.AcquireInput{
		Key: key,
		TTL: s.lockTTL,
	})
	if err != nil {
		if errors.Is(err, lockRepo.ErrLockTimeout) {
			s.log.Warn("lock busy", zap.String("key", key), zap.String("op", op))
			return nil, ErrSessionBusy
		}
		return nil, err
	}

	return func() {
		// the lock must go even when the caller's request was cancelled
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseTimeout)
		defer cancel()

		err := s.lockRepo.Release(releaseCtx, &lockRepo.ReleaseInput{
			Key:   key,
			Token: held.Token,
		})
		if err != nil {
			s.log.Warn("failed to release lock",
				zap.String("key", key),
				zap.String("op", op),
				zap.Error(err))
		}
	}, nil
}

// withSession runs fn on the stored session while holding its lock and saves what fn
// returns. Nothing is saved when fn fails.
func (s *service) withSession(ctx context.Context, sessionID, op string, fn func(*models.Session) (*models.Session, error)) (*models.Session, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}

	release, err := s.acquire(ctx, sessionID, op)
	if err != nil {
		return nil, err
	}
	defer release()

	current, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated, err := fn(current)
	if err != nil {
		s.log.Debug("session operation rejected",
			zap.String("session_id", sessionID),
			zap.String("op", op),
			zap.Error(err))
		return nil, err
	}

	updated.UpdatedAt = s.clock.Now()
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: updated}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *service) loadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *service) getCoach(ctx context.Context, coachID string) (*models.Coach, error) {
	coach, err := s.coachRepo.GetCoach(ctx, &coachRepo.GetCoachInput{CoachID: coachID})
	if err != nil {
		if errors.Is(err, coachRepo.ErrCoachNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}
	return coach, nil
}

// zoneError maps card-movement failures onto the service's error kinds
func zoneError(err error) error {
	switch {
	case errors.Is(err, zones.ErrHandFull):
		return ErrHandFull
	case errors.Is(err, zones.ErrNotInHand),
		errors.Is(err, zones.ErrNotOnBench),
		errors.Is(err, zones.ErrDuplicateCard):
		return fmt.Errorf("%w: %w", ErrInvalidCard, err)
	case errors.Is(err, zones.ErrEmptyHand),
		errors.Is(err, zones.ErrInvalidCount):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
