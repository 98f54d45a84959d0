package session

import "github.com/KirkDiggler/pointing/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionsByCreatorInput struct {
	CreatorID string
}

type GetSessionsByCreatorOutput struct {
	Sessions []*models.Session
}

type DeleteSessionInput struct {
	SessionID string
}

type SessionExistsInput struct {
	SessionID string
}
