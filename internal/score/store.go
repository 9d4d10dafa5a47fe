package score

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store keeps every finished play, keyed by the hash of its chart and the
// key count it was played with.
type Store struct {
	db *sql.DB
}

type History struct {
	ID       string
	Sum      string
	KeyCount int
	Result   Result
	Inputs   []game.Input
	PlayedAt time.Time
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return nil, fmt.Errorf("unable to open score database: %w", err)
	}

	initStatement := `
	create table if not exists scores
	  (
		  id text not null primary key,
		  sum text not null,
		  key_count integer not null,
		  score integer not null,
		  max_combo integer not null,
		  perfect integer not null,
		  great integer not null,
		  good integer not null,
		  ok integer not null,
		  miss integer not null,
		  accuracy real not null,
		  grade text not null,
		  inputs blob,
		  played_at integer not null
	  );
	create index if not exists scores_sum on scores(sum, key_count, played_at);
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create score table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save records a play and returns its id, or an empty string if it could not
// be stored.
func (s *Store) Save(c *game.Chart, result Result, inputs []game.Input, playedAt time.Time) string {
	data, err := json.Marshal(compactInputs(inputs))
	if nil != err {
		log.Println("unable to marshal inputs", err)
		return ""
	}
	id := uuid.New().String()
	_, err = s.db.Exec(
		`insert into scores(id, sum, key_count, score, max_combo, perfect, great, good, ok, miss, accuracy, grade, inputs, played_at)
		values(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, c.Sum, c.KeyCount, result.Score, result.MaxCombo,
		result.Counts.Perfect, result.Counts.Great, result.Counts.Good, result.Counts.Ok, result.Counts.Miss,
		result.Accuracy, string(result.Grade), data, playedAt.UnixNano(),
	)
	if nil != err {
		log.Println("unable to save score", err)
		return ""
	}
	return id
}

// Load returns the stored plays of a chart at its key count, newest first.
func (s *Store) Load(c *game.Chart) []History {
	histories := []History{}
	rows, err := s.db.Query(
		`select id, sum, key_count, score, max_combo, perfect, great, good, ok, miss, accuracy, grade, inputs, played_at
		from scores where sum = ? and key_count = ? order by played_at desc`,
		c.Sum, c.KeyCount,
	)
	if nil != err {
		log.Println("unable to load scores", err)
		return histories
	}
	defer rows.Close()

	for rows.Next() {
		var h History
		var grade string
		var inputs []byte
		var playedAt int64
		if err := rows.Scan(
			&h.ID, &h.Sum, &h.KeyCount, &h.Result.Score, &h.Result.MaxCombo,
			&h.Result.Counts.Perfect, &h.Result.Counts.Great, &h.Result.Counts.Good, &h.Result.Counts.Ok, &h.Result.Counts.Miss,
			&h.Result.Accuracy, &grade, &inputs, &playedAt,
		); nil != err {
			log.Println("unable to scan score", err)
			continue
		}
		h.Result.Grade = Grade(grade)
		h.PlayedAt = time.Unix(0, playedAt)

		var ns []InputsCompact
		if err := json.Unmarshal(inputs, &ns); nil != err {
			log.Println("unable to unmarshal input history", err)
			continue
		}
		h.Inputs = uncompactInputs(ns)
		histories = append(histories, h)
	}
	if err := rows.Err(); nil != err {
		log.Println("unable to read scores", err)
	}
	return histories
}

// Best returns the highest scoring play of a chart.
func (s *Store) Best(c *game.Chart) (History, bool) {
	var best History
	found := false
	for _, h := range s.Load(c) {
		if !found || h.Result.Score > best.Result.Score {
			best = h
			found = true
		}
	}
	return best, found
}
