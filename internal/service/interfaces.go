package service

import (
	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/collaborator_mocks.go -package=mocks

// UserDirectory resolves staff identities and role membership. Injected into
// the engines so tests supply a fake instead of touching global state.
type UserDirectory interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByRoleCode(code string) ([]models.User, error)
}

// CourseCatalog resolves course references attached to shifts and templates.
type CourseCatalog interface {
	GetByID(id uuid.UUID) (*models.CourseType, error)
}
