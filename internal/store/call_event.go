package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on top of the ent SQL builder and the
// global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var callEventColumns = []string{
	"id", "sequence", "timestamp", "submission_id", "endpoint",
	"status_code", "outcome", "latency_ms", "error_message",
}

func (r *eventRepo) AppendCallEvent(ctx context.Context, data CallEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(CallEventsTable.Name).
		Columns(callEventColumns[1:]...).
		Values(
			seqNum,
			time.Now().UTC(),
			data.SubmissionID,
			data.Endpoint,
			data.StatusCode,
			data.Outcome,
			data.LatencyMs,
			data.ErrorMessage,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save call event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCallEvents(ctx context.Context, opts QueryOpts) ([]CallEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(callEventColumns...).
		From(entsql.Table(CallEventsTable.Name))

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To.UTC()))
	}
	if opts.Outcome != "" {
		preds = append(preds, entsql.EQ("outcome", opts.Outcome))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query call events: %w", err)
	}
	defer rows.Close()

	var events []CallEvent
	for rows.Next() {
		var e CallEvent
		if err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp, &e.SubmissionID, &e.Endpoint,
			&e.StatusCode, &e.Outcome, &e.LatencyMs, &e.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("scan call event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) CallStats(ctx context.Context) ([]OutcomeStats, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(
			"outcome",
			entsql.As(entsql.Count("*"), "calls"),
			entsql.As(entsql.Avg("latency_ms"), "avg_latency_ms"),
		).
		From(entsql.Table(CallEventsTable.Name)).
		GroupBy("outcome").
		OrderBy("outcome").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query call stats: %w", err)
	}
	defer rows.Close()

	var stats []OutcomeStats
	for rows.Next() {
		var (
			st  OutcomeStats
			avg float64
		)
		if err := rows.Scan(&st.Outcome, &st.Calls, &avg); err != nil {
			return nil, fmt.Errorf("scan call stats: %w", err)
		}
		st.AvgLatencyMs = int64(avg)
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (r *eventRepo) PruneCallEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	del := entsql.Dialect(dialect.SQLite).Delete(CallEventsTable.Name)
	if !cutoff.IsZero() {
		del.Where(entsql.LT("timestamp", cutoff.UTC()))
	}

	query, args := del.Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("prune call events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune call events: %w", err)
	}
	return n, nil
}
