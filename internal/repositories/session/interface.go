package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pointing/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/pointing/internal/models"
)

// Repository defines the interface for session data persistence.
// Sessions are stored whole: every save overwrites the entire
// serialized aggregate and refreshes its expiry.
type Repository interface {
	// SaveSession persists a session and refreshes its TTL
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetSessionsByCreator retrieves all live sessions created by a user
	GetSessionsByCreator(ctx context.Context, input *GetSessionsByCreatorInput) (*GetSessionsByCreatorOutput, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// SessionExists reports whether a session is currently stored
	SessionExists(ctx context.Context, input *SessionExistsInput) (bool, error)
}
