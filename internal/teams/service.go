package teams

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/pkg/db"
	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
)

type leagueGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.League, error)
}

// ServiceParams groups dependencies for the team service.
type ServiceParams struct {
	Repo    Repository
	Leagues leagueGetter
}

// Service handles team registration into leagues.
type Service struct {
	repo    Repository
	leagues leagueGetter
}

// NewService builds a team service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	if params.Leagues == nil {
		return nil, errors.New("league service is required")
	}
	return &Service{repo: params.Repo, leagues: params.Leagues}, nil
}

// RegisterInput enrolls a captain's team into a league.
type RegisterInput struct {
	LeagueID   uuid.UUID
	CaptainID  uuid.UUID
	Name       string
	RosterSize int
}

// Register creates the team while the league is still taking registrations
// and has room left.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team name is required")
	}

	league, err := s.leagues.Get(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	if league.Status != enums.LeagueStatusRegistration {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "league registration is closed")
	}
	if len(league.Teams) >= league.MaxTeams {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "league is full")
	}

	team := &models.Team{
		LeagueID:   input.LeagueID,
		CaptainID:  input.CaptainID,
		Name:       name,
		RosterSize: input.RosterSize,
	}
	if err := s.repo.Create(ctx, team); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "team name already taken in this league")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "registering team")
	}
	return team, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up team")
	}
	if team == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "team not found")
	}
	return team, nil
}

func (s *Service) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error) {
	out, err := s.repo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing teams")
	}
	return out, nil
}

// UpdateRoster adjusts the roster head count, captain or staff only.
func (s *Service) UpdateRoster(ctx context.Context, id uuid.UUID, rosterSize int, actorID uuid.UUID, actorRole enums.MemberRole) (*models.Team, error) {
	if rosterSize < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "roster size cannot be negative")
	}
	team, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole == enums.MemberRoleCustomer && team.CaptainID != actorID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only the captain can manage the roster")
	}
	team.RosterSize = rosterSize
	if err := s.repo.Update(ctx, team); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating roster")
	}
	return team, nil
}
