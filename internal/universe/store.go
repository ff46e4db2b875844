package universe

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SearchLimit caps the number of instruments returned for one query.
const SearchLimit = 15

// Instrument is one searchable entry in the instrument universe.
type Instrument struct {
	Symbol string `json:"symbol"`
	Name   string `json:"display_name"`
	Kind   string `json:"kind,omitempty"`
}

// SearchResult carries the matches for one query. When the last universe
// load failed, Error carries a description; the lookup itself never
// propagates a failure.
type SearchResult struct {
	Results []Instrument `json:"results"`
	Error   string       `json:"error,omitempty"`
}

// Store holds the in-memory instrument universe, optionally backed by a
// read-only SQLite database. The snapshot is replaced atomically on
// reload; handlers only ever read it.
type Store struct {
	mu          sync.RWMutex
	instruments []Instrument
	lastErr     string
	dbPath      string
	log         zerolog.Logger
}

// NewStore creates a Store. Call Reload to populate it.
func NewStore(dbPath string, log zerolog.Logger) *Store {
	return &Store{
		dbPath: dbPath,
		log:    log.With().Str("component", "universe").Logger(),
	}
}

// Reload re-reads the instrument database. With no database configured the
// built-in seed list is used. On failure the previous snapshot is kept and
// searches report the failure alongside whatever they can still serve.
func (s *Store) Reload() error {
	var instruments []Instrument
	var err error
	if s.dbPath == "" {
		instruments = seedInstruments()
	} else {
		instruments, err = loadFromSQLite(s.dbPath)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err.Error()
		return fmt.Errorf("load universe: %w", err)
	}
	s.lastErr = ""
	s.instruments = instruments
	s.log.Info().Int("instruments", len(instruments)).Msg("universe loaded")
	return nil
}

func loadFromSQLite(path string) ([]Instrument, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT symbol, name, COALESCE(kind, '') FROM instruments ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("query instruments: %w", err)
	}
	defer rows.Close()

	var instruments []Instrument
	for rows.Next() {
		var inst Instrument
		if err := rows.Scan(&inst.Symbol, &inst.Name, &inst.Kind); err != nil {
			return nil, fmt.Errorf("scan instrument: %w", err)
		}
		instruments = append(instruments, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate instruments: %w", err)
	}
	return instruments, nil
}

// Search returns up to SearchLimit instruments whose symbol or display
// name contains the query, case-insensitively. An empty query matches
// nothing.
func (s *Store) Search(query string) SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := SearchResult{Results: []Instrument{}, Error: s.lastErr}
	if q == "" {
		return result
	}
	for _, inst := range s.instruments {
		if strings.Contains(strings.ToLower(inst.Symbol), q) ||
			strings.Contains(strings.ToLower(inst.Name), q) {
			result.Results = append(result.Results, inst)
			if len(result.Results) == SearchLimit {
				break
			}
		}
	}
	return result
}
