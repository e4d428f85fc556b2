package store

import (
	"context"
	"fmt"

	"github.com/cogniquest/cogniquest/ent"
	"github.com/cogniquest/cogniquest/ent/historyitem"
	"github.com/cogniquest/cogniquest/internal/quiz"
)

// historyRepo implements HistoryRepo using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) SaveHistory(ctx context.Context, item HistoryItem) (int, error) {
	payload, err := toMap(item.Payload)
	if err != nil {
		return 0, fmt.Errorf("marshal history payload: %w", err)
	}

	create := r.client.HistoryItem.Create().
		SetTopic(item.Topic).
		SetScore(item.Score).
		SetTotalQuestions(item.TotalQuestions).
		SetPayload(payload)
	if !item.Timestamp.IsZero() {
		create.SetTimestamp(item.Timestamp)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save history: %w", err)
	}
	return row.ID, nil
}

func (r *historyRepo) UpdateHistory(ctx context.Context, id int, patch HistoryPatch) error {
	update := r.client.HistoryItem.UpdateOneID(id)
	if patch.Topic != nil {
		update.SetTopic(*patch.Topic)
	}
	if patch.Score != nil {
		update.SetScore(*patch.Score)
	}
	if patch.TotalQuestions != nil {
		update.SetTotalQuestions(*patch.TotalQuestions)
	}
	if patch.Timestamp != nil {
		update.SetTimestamp(*patch.Timestamp)
	}
	if patch.Payload != nil {
		payload, err := toMap(*patch.Payload)
		if err != nil {
			return fmt.Errorf("marshal history payload: %w", err)
		}
		update.SetPayload(payload)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("history id %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("update history: %w", err)
	}
	return nil
}

func (r *historyRepo) ListHistory(ctx context.Context) ([]HistoryItem, error) {
	rows, err := r.client.HistoryItem.Query().
		Order(ent.Desc(historyitem.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	items := make([]HistoryItem, 0, len(rows))
	for _, row := range rows {
		var payload quiz.HistorySnapshot
		if err := fromMap(row.Payload, &payload); err != nil {
			return nil, fmt.Errorf("unmarshal history payload (id %d): %w", row.ID, err)
		}
		items = append(items, HistoryItem{
			ID:             row.ID,
			Timestamp:      row.Timestamp,
			Topic:          row.Topic,
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			Payload:        payload,
		})
	}
	return items, nil
}

func (r *historyRepo) DeleteHistory(ctx context.Context, id int) error {
	err := r.client.HistoryItem.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}
