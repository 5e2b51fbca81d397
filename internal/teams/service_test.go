package teams

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
)

type stubRepo struct {
	byID    map[uuid.UUID]*models.Team
	created []*models.Team
	updated []*models.Team
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }
func (s *stubRepo) Create(ctx context.Context, team *models.Team) error {
	s.created = append(s.created, team)
	return nil
}
func (s *stubRepo) Update(ctx context.Context, team *models.Team) error {
	s.updated = append(s.updated, team)
	return nil
}
func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return s.byID[id], nil
}
func (s *stubRepo) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error) {
	return nil, nil
}
func (s *stubRepo) ListByCaptain(ctx context.Context, captainID uuid.UUID) ([]models.Team, error) {
	return nil, nil
}

type stubLeagues struct {
	league *models.League
}

func (s *stubLeagues) Get(ctx context.Context, id uuid.UUID) (*models.League, error) {
	if s.league == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "league not found")
	}
	return s.league, nil
}

func openLeague(maxTeams int, enrolled int) *models.League {
	teams := make([]models.Team, enrolled)
	return &models.League{
		ID:       uuid.New(),
		Status:   enums.LeagueStatusRegistration,
		MaxTeams: maxTeams,
		Teams:    teams,
	}
}

func TestRegisterHappyPath(t *testing.T) {
	repo := &stubRepo{}
	league := openLeague(8, 3)
	svc, _ := NewService(ServiceParams{Repo: repo, Leagues: &stubLeagues{league: league}})

	team, err := svc.Register(context.Background(), RegisterInput{
		LeagueID: league.ID, CaptainID: uuid.New(), Name: "  The Strikers  ", RosterSize: 11,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if team.Name != "The Strikers" {
		t.Fatalf("name not trimmed: %q", team.Name)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
}

func TestRegisterClosedLeague(t *testing.T) {
	league := openLeague(8, 0)
	league.Status = enums.LeagueStatusActive
	svc, _ := NewService(ServiceParams{Repo: &stubRepo{}, Leagues: &stubLeagues{league: league}})

	_, err := svc.Register(context.Background(), RegisterInput{LeagueID: league.ID, Name: "Late Arrivals"})
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestRegisterFullLeague(t *testing.T) {
	league := openLeague(4, 4)
	svc, _ := NewService(ServiceParams{Repo: &stubRepo{}, Leagues: &stubLeagues{league: league}})

	_, err := svc.Register(context.Background(), RegisterInput{LeagueID: league.ID, Name: "Overflow FC"})
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestUpdateRosterOwnership(t *testing.T) {
	captain := uuid.New()
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.Team{
		id: {ID: id, CaptainID: captain, RosterSize: 11},
	}}
	svc, _ := NewService(ServiceParams{Repo: repo, Leagues: &stubLeagues{league: openLeague(8, 0)}})

	_, err := svc.UpdateRoster(context.Background(), id, 14, uuid.New(), enums.MemberRoleCustomer)
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden for a stranger, got %v", err)
	}

	team, err := svc.UpdateRoster(context.Background(), id, 14, captain, enums.MemberRoleCustomer)
	if err != nil {
		t.Fatalf("captain update: %v", err)
	}
	if team.RosterSize != 14 {
		t.Fatalf("roster = %d, want 14", team.RosterSize)
	}
}
