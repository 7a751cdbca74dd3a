// Package financestore keeps a daily history of the financing totals
// of each votation so that their evolution up to the vote can be
// followed.
package financestore

import (
	"campaignfinance/lib/timezone"
	"context"
	"database/sql"
	"time"

	_ "embed"
)

//go:embed schema.sql
var Schema string

type Store struct {
	db *sql.DB
}

// NewStore creates the schema if it does not exist yet.
func NewStore(ctx context.Context, database *sql.DB) (Store, error) {
	_, err := database.ExecContext(ctx, Schema)
	if err != nil {
		return Store{}, err
	}
	return Store{db: database}, nil
}

type VotationSnapshot struct {
	VotationID      string
	VoteDate        string
	Title           string
	SupportersTotal float64
	OpponentsTotal  float64
	SupportersCount int
	OpponentsCount  int
}

type PushRequest struct {
	Time      time.Time
	Votations []VotationSnapshot
}

// Push records one snapshot per votation. A votation keeps at most one
// snapshot per (Zurich) day, pushing again on the same day replaces it.
func (s Store) Push(ctx context.Context, req PushRequest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	local := req.Time.In(timezone.Location)
	startOfToday := timezone.Day(local.Year(), local.Month(), local.Day()).Unix()
	startOfTomorrow := timezone.Day(local.Year(), local.Month(), local.Day()+1).Unix()

	for _, v := range req.Votations {
		_, err = tx.ExecContext(
			ctx,
			`insert into votation(id, vote_date, title) values (?, ?, ?)
			on conflict(id) do update set vote_date = excluded.vote_date, title = excluded.title`,
			v.VotationID, v.VoteDate, v.Title,
		)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(
			ctx,
			`delete from financing_snapshot
			where votation_id = ? and time >= ? and time < ?`,
			v.VotationID, startOfToday, startOfTomorrow,
		)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(
			ctx,
			`insert into financing_snapshot(
				votation_id, time,
				supporters_total, opponents_total,
				supporters_count, opponents_count
			) values (?, ?, ?, ?, ?, ?)`,
			v.VotationID, req.Time.Unix(),
			v.SupportersTotal, v.OpponentsTotal,
			v.SupportersCount, v.OpponentsCount,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

type Snapshot struct {
	Time            time.Time
	SupportersTotal float64
	OpponentsTotal  float64
	SupportersCount int
	OpponentsCount  int
}

// Pull returns the snapshots of a votation, oldest first.
func (s Store) Pull(ctx context.Context, votationId string) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`select time, supporters_total, opponents_total, supporters_count, opponents_count
		from financing_snapshot
		where votation_id = ?
		order by time asc`,
		votationId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var unix int64
		var snap Snapshot
		err := rows.Scan(
			&unix,
			&snap.SupportersTotal, &snap.OpponentsTotal,
			&snap.SupportersCount, &snap.OpponentsCount,
		)
		if err != nil {
			return nil, err
		}
		snap.Time = time.Unix(unix, 0).In(timezone.Location)
		out = append(out, snap)
	}
	return out, rows.Err()
}

type Votation struct {
	ID       string
	VoteDate string
	Title    string
}

func (s Store) Votations(ctx context.Context) ([]Votation, error) {
	rows, err := s.db.QueryContext(ctx, `select id, vote_date, title from votation order by id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Votation
	for rows.Next() {
		var v Votation
		err := rows.Scan(&v.ID, &v.VoteDate, &v.Title)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
