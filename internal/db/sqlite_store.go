package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/surveyflow/surveyflow/internal/services"
)

// Store is the durable, append-only response repository backed by SQLite.
// Records are immutable once written; there is no update or delete path.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(sqlDB *sql.DB) (*Store, error) {
	if sqlDB == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := sqlDB.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &Store{db: sqlDB, now: func() time.Time { return time.Now().UTC() }}, nil
}

// DSN builds the sqlite connection string for a database file path.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?cache=shared&_busy_timeout=5000", path)
}

func (s *Store) logErr(prefix string, err error) {
	if err != nil {
		log.Printf("sqlite store: %s: %v", prefix, err)
	}
}

// AppendResponse stores one finalized response and returns the record with
// its assigned identifier and UTC timestamp. The single insert is atomic, so
// concurrent commits cannot interleave partial records, and AUTOINCREMENT
// keeps identifiers monotonic.
func (s *Store) AppendResponse(details services.RespondentIdentity, answers map[string]string) (*services.StoredResponse, error) {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encode user details: %w", err)
	}
	if answers == nil {
		answers = map[string]string{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}

	submittedAt := s.now()
	res, err := s.db.Exec(
		`INSERT INTO responses (user_details, answers, submitted_at) VALUES (?, ?, ?)`,
		string(detailsJSON), string(answersJSON), submittedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert response: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("response id: %w", err)
	}
	return &services.StoredResponse{
		ID:          id,
		Details:     details,
		Answers:     answers,
		SubmittedAt: submittedAt,
	}, nil
}

// ListResponses returns every stored response ordered by assigned id. A
// record whose snapshots no longer decode is surfaced with empty substituted
// details rather than failing the whole listing.
func (s *Store) ListResponses() ([]*services.StoredResponse, error) {
	rows, err := s.db.Query(`SELECT id, user_details, answers, submitted_at FROM responses ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("ListResponses: rows.Close", cerr)
		}
	}()

	out := []*services.StoredResponse{}
	for rows.Next() {
		var (
			rec              services.StoredResponse
			details, answers sql.NullString
			submitted        string
		)
		if err := rows.Scan(&rec.ID, &details, &answers, &submitted); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		rec.Details = s.decodeDetails(details)
		rec.Answers = s.decodeAnswers(answers)
		if t, perr := time.Parse(time.RFC3339Nano, submitted); perr == nil {
			rec.SubmittedAt = t
		} else {
			s.logErr("ListResponses: parse submitted_at", perr)
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responses: %w", err)
	}
	return out, nil
}

func (s *Store) decodeDetails(ns sql.NullString) services.RespondentIdentity {
	if !ns.Valid || strings.TrimSpace(ns.String) == "" {
		return services.RespondentIdentity{}
	}
	var out services.RespondentIdentity
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		s.logErr("decode user details", err)
		return services.RespondentIdentity{}
	}
	return out
}

func (s *Store) decodeAnswers(ns sql.NullString) map[string]string {
	if !ns.Valid || strings.TrimSpace(ns.String) == "" {
		return map[string]string{}
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		s.logErr("decode answers", err)
		return map[string]string{}
	}
	if out == nil {
		out = map[string]string{}
	}
	return out
}

var _ services.ResponseStore = (*Store)(nil)
