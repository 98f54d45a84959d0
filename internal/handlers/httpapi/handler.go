package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/pointing/internal/models"
	sessionService "github.com/KirkDiggler/pointing/internal/services/session"
)

// Broadcaster pushes the current session snapshot to every live
// connection after a successful mutation
type Broadcaster interface {
	BroadcastSessionState(ctx context.Context, sessionID string) error
}

// Pinger reports backing store health for the readiness endpoint
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds configuration for the HTTP handler
type Config struct {
	SessionService sessionService.Service

	// Broadcaster is optional; without one, mutations succeed but no
	// snapshot push happens
	Broadcaster Broadcaster

	// Pinger is optional; without one, /healthz only reports liveness
	Pinger Pinger
}

// Handler serves the REST surface of the session service
type Handler struct {
	sessions    sessionService.Service
	broadcaster Broadcaster
	pinger      Pinger
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	return &Handler{
		sessions:    cfg.SessionService,
		broadcaster: cfg.Broadcaster,
		pinger:      cfg.Pinger,
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && r.URL.Path == "/healthz" {
		h.handleHealth(w, r)
		return
	}

	parts := splitPath(r.URL.Path)
	if len(parts) < 2 || parts[0] != "api" || parts[1] != "sessions" {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
		return
	}

	switch {
	case len(parts) == 2 && r.Method == http.MethodPost:
		h.handleCreateSession(w, r)

	case len(parts) == 2 && r.Method == http.MethodGet:
		h.handleListSessions(w, r)

	case len(parts) == 3 && r.Method == http.MethodGet:
		h.handleGetSession(w, r, parts[2])

	case len(parts) == 4 && r.Method == http.MethodPost && parts[3] == "join":
		h.handleJoin(w, r, parts[2])

	case len(parts) == 4 && r.Method == http.MethodPost && parts[3] == "leave":
		h.handleLeave(w, r, parts[2])

	case len(parts) == 5 && r.Method == http.MethodPost && parts[3] == "voting":
		h.handleVoting(w, r, parts[2], parts[4])

	default:
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.pinger == nil {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		CreatorID   string `json:"creatorId"`
		ScaleName   string `json:"scaleName"`
		CustomScale *struct {
			Name   string   `json:"name"`
			Values []string `json:"values"`
		} `json:"customScale"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	input := &sessionService.CreateSessionInput{
		Name:      body.Name,
		CreatorID: body.CreatorID,
		ScaleName: body.ScaleName,
	}
	if body.CustomScale != nil {
		input.CustomScale = &sessionService.CustomScaleInput{
			Name:   body.CustomScale.Name,
			Values: body.CustomScale.Values,
		}
	}

	output, err := h.sessions.CreateSession(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"sessionId": output.SessionID,
	})
}

func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	creatorID := r.URL.Query().Get("creatorId")
	if creatorID == "" {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", "creatorId is required")
		return
	}

	output, err := h.sessions.ListSessionsByCreator(r.Context(), &sessionService.ListSessionsByCreatorInput{
		CreatorID: creatorID,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sessions": output.Sessions,
	})
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	output, err := h.sessions.GetSession(r.Context(), &sessionService.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Session)
}

func (h *Handler) handleJoin(w http.ResponseWriter, r *http.Request, sessionID string) {
	var body struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	output, err := h.sessions.JoinSession(r.Context(), &sessionService.JoinSessionInput{
		SessionID: sessionID,
		Name:      body.Name,
		Role:      models.ParticipantRole(body.Role),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.broadcast(r.Context(), sessionID)
	writeJSON(w, http.StatusOK, map[string]any{
		"participantId": output.ParticipantID,
		"sessionName":   output.SessionName,
		"scale":         output.Scale,
		"currentRound":  output.CurrentRound,
	})
}

func (h *Handler) handleLeave(w http.ResponseWriter, r *http.Request, sessionID string) {
	var body struct {
		ParticipantID string `json:"participantId"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	_, err := h.sessions.LeaveSession(r.Context(), &sessionService.LeaveSessionInput{
		SessionID:     sessionID,
		ParticipantID: body.ParticipantID,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.broadcast(r.Context(), sessionID)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) handleVoting(w http.ResponseWriter, r *http.Request, sessionID, action string) {
	var body struct {
		ParticipantID string `json:"participantId"`
		Question      string `json:"question"`
		Value         string `json:"value"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	var payload any
	var err error

	switch action {
	case "start":
		var output *sessionService.StartVotingOutput
		output, err = h.sessions.StartVoting(r.Context(), &sessionService.StartVotingInput{
			SessionID:     sessionID,
			ParticipantID: body.ParticipantID,
			Question:      body.Question,
		})
		if err == nil {
			payload = map[string]any{
				"roundId":  output.RoundID,
				"question": output.Question,
				"voters":   output.Voters,
			}
		}

	case "vote":
		var output *sessionService.SubmitVoteOutput
		output, err = h.sessions.SubmitVote(r.Context(), &sessionService.SubmitVoteInput{
			SessionID:     sessionID,
			ParticipantID: body.ParticipantID,
			Value:         body.Value,
		})
		if err == nil {
			payload = map[string]any{
				"participantId": output.ParticipantID,
				"value":         output.Value,
				"submittedAt":   output.SubmittedAt,
			}
		}

	case "reveal":
		var output *sessionService.RevealVotesOutput
		output, err = h.sessions.RevealVotes(r.Context(), &sessionService.RevealVotesInput{
			SessionID:     sessionID,
			ParticipantID: body.ParticipantID,
		})
		if err == nil {
			payload = map[string]any{
				"roundId":    output.RoundID,
				"question":   output.Question,
				"results":    output.Results,
				"statistics": output.Statistics,
			}
		}

	case "finish":
		var output *sessionService.FinishVotingOutput
		output, err = h.sessions.FinishVoting(r.Context(), &sessionService.FinishVotingInput{
			SessionID:     sessionID,
			ParticipantID: body.ParticipantID,
		})
		if err == nil {
			payload = map[string]any{
				"roundId":    output.RoundID,
				"statistics": output.Statistics,
			}
		}

	default:
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
		return
	}

	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.broadcast(r.Context(), sessionID)
	writeJSON(w, http.StatusOK, payload)
}

// broadcast pushes the fresh snapshot after a successful mutation. A
// failed push never fails the request that caused it.
func (h *Handler) broadcast(ctx context.Context, sessionID string) {
	if h.broadcaster == nil {
		return
	}
	if err := h.broadcaster.BroadcastSessionState(ctx, sessionID); err != nil {
		log.Printf("broadcast failed for session %s: %v", sessionID, err)
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case sessionService.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case sessionService.IsValidation(err):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	case sessionService.IsPrecondition(err):
		writeError(w, http.StatusBadRequest, "PRECONDITION", err.Error())
	case sessionService.IsAuthorization(err):
		writeError(w, http.StatusBadRequest, "FORBIDDEN", err.Error())
	default:
		log.Printf("request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"code":  code,
		"error": message,
	})
}

func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
