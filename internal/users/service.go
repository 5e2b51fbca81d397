package users

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/oyugibear/bofa-backend/pkg/db/models"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	pkgerrors "github.com/oyugibear/bofa-backend/pkg/errors"
	"github.com/oyugibear/bofa-backend/pkg/pagination"
)

// ServiceParams groups dependencies for the user service.
type ServiceParams struct {
	Repo Repository
}

// Service orchestrates user reads and profile updates. Account creation
// lives in the auth service.
type Service struct {
	repo Repository
}

// NewService builds a user service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up user")
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return user, nil
}

// UpdateProfileInput carries the self-service editable fields.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating user")
	}
	return user, nil
}

// List returns a page of users filtered by role, staff/admin only at the
// router. The second return is the opaque cursor for the next page, empty
// on the last one.
func (s *Service) List(ctx context.Context, role string, activeOnly bool, page pagination.Params) ([]models.User, string, error) {
	if role != "" && !enums.MemberRole(role).IsValid() {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "unknown role filter")
	}
	cursor, err := pagination.ParseCursor(page.Cursor)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	out, next, err := s.repo.List(ctx, ListQuery{
		Role:       role,
		ActiveOnly: activeOnly,
		Limit:      page.Limit,
		Cursor:     cursor,
	})
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing users")
	}

	nextCursor := ""
	if next != nil {
		nextCursor = pagination.EncodeCursor(*next)
	}
	return out, nextCursor, nil
}

// Deactivate flips the account off without deleting history.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "user already deactivated")
	}
	user.IsActive = false
	if err := s.repo.Update(ctx, user); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deactivating user")
	}
	return nil
}
