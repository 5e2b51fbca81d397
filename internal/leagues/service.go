package leagues

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/pkg/db"
	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
)

// ServiceParams groups dependencies for the league service.
type ServiceParams struct {
	Repo Repository
}

// Service manages league seasons and their registration window.
type Service struct {
	repo Repository
}

// NewService builds a league service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

// CreateInput carries staff-entered league attributes.
type CreateInput struct {
	Name                 string
	Season               string
	MaxTeams             int
	RegistrationFeeCents int
	StartsOn             *time.Time
	EndsOn               *time.Time
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.League, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.Season) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name and season are required")
	}
	if input.MaxTeams < 2 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "a league needs at least two teams")
	}
	if input.StartsOn != nil && input.EndsOn != nil && !input.EndsOn.After(*input.StartsOn) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "season end must follow start")
	}

	league := &models.League{
		Name:                 name,
		Season:               strings.TrimSpace(input.Season),
		Status:               enums.LeagueStatusRegistration,
		MaxTeams:             input.MaxTeams,
		RegistrationFeeCents: input.RegistrationFeeCents,
		StartsOn:             input.StartsOn,
		EndsOn:               input.EndsOn,
	}
	if err := s.repo.Create(ctx, league); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "league name already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating league")
	}
	return league, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up league")
	}
	if league == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "league not found")
	}
	return league, nil
}

func (s *Service) List(ctx context.Context, status *enums.LeagueStatus) ([]models.League, error) {
	if status != nil && !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown league status")
	}
	out, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing leagues")
	}
	return out, nil
}

// Advance moves the league along registration -> active -> completed.
func (s *Service) Advance(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch league.Status {
	case enums.LeagueStatusRegistration:
		count, err := s.repo.CountTeams(ctx, id)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting teams")
		}
		if count < 2 {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cannot start with fewer than two teams")
		}
		league.Status = enums.LeagueStatusActive
	case enums.LeagueStatusActive:
		league.Status = enums.LeagueStatusCompleted
	default:
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "league already completed")
	}
	if err := s.repo.Update(ctx, league); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "advancing league")
	}
	return league, nil
}
