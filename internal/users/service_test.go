package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
	"github.com/oyugibear/bofa-backend/pkg/pagination"
)

type stubRepo struct {
	byID     map[uuid.UUID]*models.User
	updated  []*models.User
	listed   []models.User
	lastList ListQuery
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository                  { return s }
func (s *stubRepo) Create(ctx context.Context, u *models.User) error { return nil }
func (s *stubRepo) Update(ctx context.Context, u *models.User) error {
	s.updated = append(s.updated, u)
	return nil
}
func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.byID[id], nil
}
func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}
func (s *stubRepo) List(ctx context.Context, params ListQuery) ([]models.User, *pagination.Cursor, error) {
	s.lastList = params
	if len(s.listed) > params.Limit && params.Limit > 0 {
		next := s.listed[params.Limit]
		return s.listed[:params.Limit], &pagination.Cursor{CreatedAt: next.CreatedAt, ID: next.ID}, nil
	}
	return s.listed, nil, nil
}
func (s *stubRepo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

func TestGetUnknownUser(t *testing.T) {
	svc, _ := NewService(ServiceParams{Repo: &stubRepo{byID: map[uuid.UUID]*models.User{}}})
	_, err := svc.Get(context.Background(), uuid.New())
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateProfilePatchesOnlyProvidedFields(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.User{
		id: {ID: id, FirstName: "Boniface", LastName: "Oyugi"},
	}}
	svc, _ := NewService(ServiceParams{Repo: repo})

	first := "Bonnie"
	got, err := svc.UpdateProfile(context.Background(), id, UpdateProfileInput{FirstName: &first})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.FirstName != "Bonnie" || got.LastName != "Oyugi" {
		t.Fatalf("patch wrong: %+v", got)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one update, got %d", len(repo.updated))
	}
}

func TestListRejectsUnknownRole(t *testing.T) {
	svc, _ := NewService(ServiceParams{Repo: &stubRepo{}})
	_, _, err := svc.List(context.Background(), "wizard", false, pagination.Params{})
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListRejectsGarbageCursor(t *testing.T) {
	svc, _ := NewService(ServiceParams{Repo: &stubRepo{}})
	_, _, err := svc.List(context.Background(), "", false, pagination.Params{Cursor: "not-base64!"})
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListEncodesNextCursor(t *testing.T) {
	now := time.Now().UTC()
	repo := &stubRepo{listed: []models.User{
		{ID: uuid.New(), CreatedAt: now},
		{ID: uuid.New(), CreatedAt: now.Add(-time.Minute)},
		{ID: uuid.New(), CreatedAt: now.Add(-2 * time.Minute)},
	}}
	svc, _ := NewService(ServiceParams{Repo: repo})

	page, next, err := svc.List(context.Background(), "", false, pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 users, got %d", len(page))
	}
	if next == "" {
		t.Fatal("expected a next cursor")
	}

	cursor, err := pagination.ParseCursor(next)
	if err != nil || cursor == nil {
		t.Fatalf("round-tripping cursor: %v", err)
	}
	if cursor.ID != repo.listed[2].ID {
		t.Fatalf("cursor should point at the first row of the next page")
	}
}

func TestDeactivateTwiceConflicts(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.User{
		id: {ID: id, IsActive: true},
	}}
	svc, _ := NewService(ServiceParams{Repo: repo})

	if err := svc.Deactivate(context.Background(), id); err != nil {
		t.Fatalf("first deactivate: %v", err)
	}
	err := svc.Deactivate(context.Background(), id)
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}
