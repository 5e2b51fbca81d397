package leagues

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
	byID      map[uuid.UUID]*models.League
	teamCount int64
	updated   []*models.League
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }
func (s *stubRepo) Create(ctx context.Context, l *models.League) error {
	return nil
}
func (s *stubRepo) Update(ctx context.Context, l *models.League) error {
	s.updated = append(s.updated, l)
	return nil
}
func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return s.byID[id], nil
}
func (s *stubRepo) List(ctx context.Context, status *enums.LeagueStatus) ([]models.League, error) {
	return nil, nil
}
func (s *stubRepo) CountTeams(ctx context.Context, leagueID uuid.UUID) (int64, error) {
	return s.teamCount, nil
}

func TestCreateValidation(t *testing.T) {
	svc, _ := NewService(ServiceParams{Repo: &stubRepo{}})

	_, err := svc.Create(context.Background(), CreateInput{Name: "Sunday League", Season: "2026", MaxTeams: 1})
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for max_teams=1, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{Name: " ", Season: "2026", MaxTeams: 8})
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
}

func TestCreateStartsInRegistration(t *testing.T) {
	svc, _ := NewService(ServiceParams{Repo: &stubRepo{}})
	league, err := svc.Create(context.Background(), CreateInput{Name: "Sunday League", Season: "2026", MaxTeams: 8})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if league.Status != enums.LeagueStatusRegistration {
		t.Fatalf("status = %s, want registration", league.Status)
	}
}

func TestAdvanceNeedsTwoTeams(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{
		byID:      map[uuid.UUID]*models.League{id: {ID: id, Status: enums.LeagueStatusRegistration}},
		teamCount: 1,
	}
	svc, _ := NewService(ServiceParams{Repo: repo})

	_, err := svc.Advance(context.Background(), id)
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestAdvanceWalksTheLifecycle(t *testing.T) {
	id := uuid.New()
	league := &models.League{ID: id, Status: enums.LeagueStatusRegistration}
	repo := &stubRepo{byID: map[uuid.UUID]*models.League{id: league}, teamCount: 4}
	svc, _ := NewService(ServiceParams{Repo: repo})

	got, err := svc.Advance(context.Background(), id)
	if err != nil || got.Status != enums.LeagueStatusActive {
		t.Fatalf("registration -> active failed: %v %v", got, err)
	}

	got, err = svc.Advance(context.Background(), id)
	if err != nil || got.Status != enums.LeagueStatusCompleted {
		t.Fatalf("active -> completed failed: %v %v", got, err)
	}

	_, err = svc.Advance(context.Background(), id)
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("completed league must not advance, got %v", err)
	}
}
