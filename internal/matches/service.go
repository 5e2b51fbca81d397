package matches

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
)

type teamGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Team, error)
}

// ServiceParams groups dependencies for the match service.
type ServiceParams struct {
	Repo  Repository
	Teams teamGetter
}

// Service manages league fixtures and their results.
type Service struct {
	repo  Repository
	teams teamGetter
}

// NewService builds a match service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	if params.Teams == nil {
		return nil, errors.New("team service is required")
	}
	return &Service{repo: params.Repo, teams: params.Teams}, nil
}

// ScheduleInput enters a fixture between two league teams.
type ScheduleInput struct {
	LeagueID    uuid.UUID
	HomeTeamID  uuid.UUID
	AwayTeamID  uuid.UUID
	FieldID     *uuid.UUID
	ScheduledAt time.Time
}

func (s *Service) Schedule(ctx context.Context, input ScheduleInput) (*models.Match, error) {
	if input.HomeTeamID == input.AwayTeamID {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "a team cannot play itself")
	}
	if input.ScheduledAt.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kickoff time is required")
	}

	for _, teamID := range []uuid.UUID{input.HomeTeamID, input.AwayTeamID} {
		team, err := s.teams.Get(ctx, teamID)
		if err != nil {
			return nil, err
		}
		if team.LeagueID != input.LeagueID {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "both teams must belong to the league")
		}
	}

	match := &models.Match{
		LeagueID:    input.LeagueID,
		HomeTeamID:  input.HomeTeamID,
		AwayTeamID:  input.AwayTeamID,
		FieldID:     input.FieldID,
		ScheduledAt: input.ScheduledAt.UTC(),
		Status:      enums.MatchStatusScheduled,
	}
	if err := s.repo.Create(ctx, match); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "scheduling match")
	}
	return match, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up match")
	}
	if match == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "match not found")
	}
	return match, nil
}

func (s *Service) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Match, error) {
	out, err := s.repo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing matches")
	}
	return out, nil
}

// RecordResult enters the final score and closes the fixture.
func (s *Service) RecordResult(ctx context.Context, id uuid.UUID, homeScore, awayScore int) (*models.Match, error) {
	if homeScore < 0 || awayScore < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "scores cannot be negative")
	}
	match, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch match.Status {
	case enums.MatchStatusScheduled, enums.MatchStatusLive:
	default:
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "match is not open for a result")
	}
	match.HomeScore = &homeScore
	match.AwayScore = &awayScore
	match.Status = enums.MatchStatusCompleted
	if err := s.repo.Update(ctx, match); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recording result")
	}
	return match, nil
}

// Reschedule moves a fixture that has not been played yet.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, at time.Time) (*models.Match, error) {
	if at.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kickoff time is required")
	}
	match, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch match.Status {
	case enums.MatchStatusScheduled, enums.MatchStatusPostponed:
	default:
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only upcoming matches can move")
	}
	match.ScheduledAt = at.UTC()
	match.Status = enums.MatchStatusScheduled
	if err := s.repo.Update(ctx, match); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rescheduling match")
	}
	return match, nil
}
