package fields

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
	byID    map[uuid.UUID]*models.Field
	created []*models.Field
	updated []*models.Field
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }
func (s *stubRepo) Create(ctx context.Context, f *models.Field) error {
	s.created = append(s.created, f)
	return nil
}
func (s *stubRepo) Update(ctx context.Context, f *models.Field) error {
	s.updated = append(s.updated, f)
	return nil
}
func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Field, error) {
	return s.byID[id], nil
}
func (s *stubRepo) List(ctx context.Context, params ListQuery) ([]models.Field, error) {
	return nil, nil
}

func TestCreateValidation(t *testing.T) {
	svc, _ := NewService(ServiceParams{Repo: &stubRepo{}})

	cases := []struct {
		name  string
		input CreateInput
	}{
		{"blank name", CreateInput{Surface: enums.FieldSurfaceGrass, HourlyRateCents: 100}},
		{"bad surface", CreateInput{Name: "Arena 1", Surface: "lava", HourlyRateCents: 100}},
		{"zero rate", CreateInput{Name: "Arena 1", Surface: enums.FieldSurfaceGrass}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateDefaultsActive(t *testing.T) {
	repo := &stubRepo{}
	svc, _ := NewService(ServiceParams{Repo: repo})

	field, err := svc.Create(context.Background(), CreateInput{
		Name:            "  Arena 1  ",
		Surface:         enums.FieldSurfaceAstroturf,
		Capacity:        14,
		HourlyRateCents: 9050,
		Amenities:       []string{"floodlights", "changing_rooms"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if field.Name != "Arena 1" {
		t.Fatalf("name not trimmed: %q", field.Name)
	}
	if !field.IsActive {
		t.Fatal("new fields must start active")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
}

func TestUpdatePatchesProvidedFields(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.Field{
		id: {ID: id, Name: "Arena 1", HourlyRateCents: 9050, Capacity: 14, IsActive: true},
	}}
	svc, _ := NewService(ServiceParams{Repo: repo})

	inactive := false
	got, err := svc.Update(context.Background(), id, UpdateInput{IsActive: &inactive})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.IsActive {
		t.Fatal("is_active not patched")
	}
	if got.HourlyRateCents != 9050 || got.Capacity != 14 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestUpdateUnknownField(t *testing.T) {
	svc, _ := NewService(ServiceParams{Repo: &stubRepo{byID: map[uuid.UUID]*models.Field{}}})
	_, err := svc.Update(context.Background(), uuid.New(), UpdateInput{})
	if err == nil || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
