package injuries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stridecoach/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, injury Injury) (_ *Injury, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	restrictionsJson, err := json.Marshal(injury.Restrictions)
	if err != nil {
		return nil, fmt.Errorf("marshal restrictions: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO injury
				(id, user_id, injury_type, affected_area, severity,
				initial_pain, current_pain, status,
				injury_date, reported_date, expected_recovery_date, actual_recovery_date, last_update_date,
				description, symptoms, treatment_plan, restrictions, version)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);`,
		injury.ID, injury.UserID, injury.InjuryType, injury.AffectedArea, injury.Severity,
		injury.InitialPain, injury.CurrentPain, injury.Status,
		injury.InjuryDate, injury.ReportedDate, injury.ExpectedRecoveryDate, injury.ActualRecoveryDate, injury.LastUpdateDate,
		injury.Description, injury.Symptoms, injury.TreatmentPlan, restrictionsJson, injury.Version,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("injury.id", injury.ID))

	return &injury, nil
}

const injuryColumns = `
	id, user_id, injury_type, affected_area, severity,
	initial_pain, current_pain, status,
	injury_date, reported_date, expected_recovery_date, actual_recovery_date, last_update_date,
	description, symptoms, treatment_plan, restrictions, version`

func (r *Repo) Get(ctx context.Context, injuryID, userID string) (_ *Injury, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("injury.id", injuryID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+injuryColumns+` FROM injury WHERE id = $1 AND user_id = $2;`,
		injuryID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	list, err := r.rows2injuries(rows)
	if err != nil {
		return nil, err
	}

	// wrong owner and unknown id look the same on purpose
	if len(list) != 1 {
		return nil, ErrInjuryNotFound
	}

	return &list[0], nil
}

func (r *Repo) ListForUser(ctx context.Context, userID string, statuses []Status) (_ []Injury, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	statusStrings := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrings = append(statusStrings, string(s))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+injuryColumns+`
			FROM injury
			WHERE user_id = $1 AND status = ANY($2)
			ORDER BY reported_date DESC;`,
		userID, statusStrings,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2injuries(rows)
}

func (r *Repo) History(ctx context.Context, userID string, from time.Time, includeRecovered bool) (_ []Injury, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.Bool("include_recovered", includeRecovered))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+injuryColumns+`
			FROM injury
			WHERE user_id = $1
			AND reported_date >= $2
			AND ($3::boolean IS TRUE OR status != 'recovered')
			ORDER BY reported_date DESC;`,
		userID, from, includeRecovered,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2injuries(rows)
}

// AppendUpdate inserts the timeline entry and applies the already-computed
// record mutation in one transaction. The update must not be older than the
// injury's latest existing update, and the record write is guarded by the
// version the injury was read at: a concurrent writer makes this call fail
// with ErrConcurrencyConflict instead of overwriting.
func (r *Repo) AppendUpdate(ctx context.Context, injury *Injury, update Update) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.appendUpdate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("injury.id", injury.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var latest *time.Time
	if err := tx.QueryRow(
		ctx,
		`SELECT MAX(update_date) FROM injury_update WHERE injury_id = $1;`,
		injury.ID,
	).Scan(&latest); err != nil {
		return fmt.Errorf("latest update: %w", err)
	}
	if latest != nil && update.Timestamp.Before(*latest) {
		return &OutOfOrderError{Latest: *latest, Got: update.Timestamp}
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO injury_update
				(id, injury_id, user_id, update_date, pain_level, status, improvement,
				notes, activities_performed, pain_triggers)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		update.ID, update.InjuryID, update.UserID, update.Timestamp,
		update.PainLevel, update.Status, update.Improvement,
		update.Notes, update.ActivitiesPerformed, update.PainTriggers,
	); err != nil {
		return fmt.Errorf("insert update: %w", err)
	}

	tag, err := tx.Exec(
		ctx,
		`UPDATE injury
			SET current_pain = $1, status = $2, actual_recovery_date = $3,
				last_update_date = $4, version = version + 1
			WHERE id = $5 AND user_id = $6 AND version = $7;`,
		injury.CurrentPain, injury.Status, injury.ActualRecoveryDate,
		injury.LastUpdateDate,
		injury.ID, injury.UserID, injury.Version,
	)
	if err != nil {
		return fmt.Errorf("update injury: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConcurrencyConflict
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	injury.Version++
	return nil
}

func (r *Repo) ListUpdates(ctx context.Context, injuryID, userID string) (_ []Update, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.listUpdates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("injury.id", injuryID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, injury_id, user_id, update_date, pain_level, status, improvement,
				notes, activities_performed, pain_triggers
			FROM injury_update
			WHERE injury_id = $1 AND user_id = $2
			ORDER BY update_date ASC, seq ASC;`,
		injuryID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var updates []Update
	for rows.Next() {
		var u Update
		if err := rows.Scan(
			&u.ID, &u.InjuryID, &u.UserID, &u.Timestamp, &u.PainLevel, &u.Status, &u.Improvement,
			&u.Notes, &u.ActivitiesPerformed, &u.PainTriggers,
		); err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}

	if updates == nil {
		updates = make([]Update, 0)
	}

	return updates, nil
}

// Delete removes the injury and, via FK cascade, its whole timeline.
func (r *Repo) Delete(ctx context.Context, injuryID, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("injury.id", injuryID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM injury WHERE id = $1 AND user_id = $2;`,
		injuryID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInjuryNotFound
	}
	return nil
}

func (r *Repo) rows2injuries(rows pgx.Rows) ([]Injury, error) {
	var list []Injury
	for rows.Next() {
		var injury Injury
		var restrictionsBytes []byte
		if err := rows.Scan(
			&injury.ID, &injury.UserID, &injury.InjuryType, &injury.AffectedArea, &injury.Severity,
			&injury.InitialPain, &injury.CurrentPain, &injury.Status,
			&injury.InjuryDate, &injury.ReportedDate, &injury.ExpectedRecoveryDate, &injury.ActualRecoveryDate, &injury.LastUpdateDate,
			&injury.Description, &injury.Symptoms, &injury.TreatmentPlan, &restrictionsBytes, &injury.Version,
		); err != nil {
			return nil, err
		}

		if len(restrictionsBytes) > 0 {
			if err := json.Unmarshal(restrictionsBytes, &injury.Restrictions); err != nil {
				return nil, fmt.Errorf("unmarshal restrictions for injury %s: %w", injury.ID, err)
			}
		}

		list = append(list, injury)
	}

	if list == nil {
		list = make([]Injury, 0)
	}

	return list, nil
}
