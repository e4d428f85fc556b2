package store

import (
	"context"
	"fmt"

	"github.com/cogniquest/cogniquest/ent"
	"github.com/cogniquest/cogniquest/ent/llmrequest"
)

// requestLogRepo implements RequestLogRepo using the ent client.
type requestLogRepo struct {
	client *ent.Client
}

func (r *requestLogRepo) AppendRequest(ctx context.Context, entry RequestLogEntry) error {
	err := r.client.LLMRequest.Create().
		SetProvider(entry.Provider).
		SetModel(entry.Model).
		SetPurpose(entry.Purpose).
		SetInputTokens(entry.InputTokens).
		SetOutputTokens(entry.OutputTokens).
		SetLatencyMs(entry.LatencyMs).
		SetSuccess(entry.Success).
		SetErrorMessage(entry.ErrorMessage).
		SetRequestBody(entry.RequestBody).
		SetResponseBody(entry.ResponseBody).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append request log: %w", err)
	}
	return nil
}

func (r *requestLogRepo) ListRequests(ctx context.Context, limit int) ([]RequestLogRecord, error) {
	query := r.client.LLMRequest.Query().
		Order(ent.Desc(llmrequest.FieldTimestamp))
	if limit > 0 {
		query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query request log: %w", err)
	}

	records := make([]RequestLogRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

func (r *requestLogRepo) GetRequest(ctx context.Context, id int) (*RequestLogRecord, error) {
	row, err := r.client.LLMRequest.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("request log id %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get request log: %w", err)
	}
	record := recordFromRow(row)
	return &record, nil
}

func recordFromRow(row *ent.LLMRequest) RequestLogRecord {
	return RequestLogRecord{
		ID:        row.ID,
		Timestamp: row.Timestamp,
		RequestLogEntry: RequestLogEntry{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
