package fields

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/oyugibear/bofa-backend/pkg/db"
	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
)

// ServiceParams groups dependencies for the field service.
type ServiceParams struct {
	Repo Repository
}

// Service manages the field catalog.
type Service struct {
	repo Repository
}

// NewService builds a field service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

// CreateInput carries the staff-entered field attributes.
type CreateInput struct {
	Name            string
	Description     *string
	Surface         enums.FieldSurface
	Capacity        int
	HourlyRateCents int
	Amenities       []string
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Field, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if !input.Surface.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown surface")
	}
	if input.HourlyRateCents <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "hourly rate must be positive")
	}

	field := &models.Field{
		Name:            name,
		Description:     input.Description,
		Surface:         input.Surface,
		Capacity:        input.Capacity,
		HourlyRateCents: input.HourlyRateCents,
		Amenities:       pq.StringArray(input.Amenities),
		IsActive:        true,
	}
	if err := s.repo.Create(ctx, field); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "field name already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating field")
	}
	return field, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Field, error) {
	field, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up field")
	}
	if field == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "field not found")
	}
	return field, nil
}

func (s *Service) List(ctx context.Context, params ListQuery) ([]models.Field, error) {
	out, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing fields")
	}
	return out, nil
}

// UpdateInput patches field attributes; nil fields are untouched.
type UpdateInput struct {
	Description     *string
	Capacity        *int
	HourlyRateCents *int
	Amenities       []string
	IsActive        *bool
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Field, error) {
	field, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Description != nil {
		field.Description = input.Description
	}
	if input.Capacity != nil {
		field.Capacity = *input.Capacity
	}
	if input.HourlyRateCents != nil {
		if *input.HourlyRateCents <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "hourly rate must be positive")
		}
		field.HourlyRateCents = *input.HourlyRateCents
	}
	if input.Amenities != nil {
		field.Amenities = pq.StringArray(input.Amenities)
	}
	if input.IsActive != nil {
		field.IsActive = *input.IsActive
	}
	if err := s.repo.Update(ctx, field); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating field")
	}
	return field, nil
}
