package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cogniquest/cogniquest/ent"
	"github.com/cogniquest/cogniquest/ent/sessionstate"
	"github.com/cogniquest/cogniquest/internal/quiz"
)

// currentSlot is the fixed key of the singleton session row.
const currentSlot = "current"

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) SaveSession(ctx context.Context, state *quiz.AppState) error {
	dataMap, err := toMap(state)
	if err != nil {
		return fmt.Errorf("marshal session snapshot: %w", err)
	}

	err = r.client.SessionState.Create().
		SetSlot(currentSlot).
		SetData(dataMap).
		OnConflictColumns(sessionstate.FieldSlot).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetSession(ctx context.Context) (*quiz.AppState, error) {
	row, err := r.client.SessionState.Query().
		Where(sessionstate.SlotEQ(currentSlot)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	var state quiz.AppState
	if err := fromMap(row.Data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal session snapshot: %w", err)
	}
	return &state, nil
}

func (r *sessionRepo) ClearSession(ctx context.Context) error {
	_, err := r.client.SessionState.Delete().
		Where(sessionstate.SlotEQ(currentSlot)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// toMap converts a value to map[string]any for ent JSON storage.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromMap converts an ent JSON map back into a typed value.
func fromMap(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
