package universe

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore("", zerolog.Nop())
	require.NoError(t, s.Reload())
	return s
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	s := seededStore(t)

	bySymbol := s.Search("aapl")
	require.Len(t, bySymbol.Results, 1)
	assert.Equal(t, "AAPL", bySymbol.Results[0].Symbol)

	byName := s.Search("vanguard")
	require.NotEmpty(t, byName.Results)
	for _, inst := range byName.Results {
		assert.Contains(t, inst.Name, "Vanguard")
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	s := seededStore(t)
	assert.Empty(t, s.Search("").Results)
	assert.Empty(t, s.Search("   ").Results)
}

func TestSearch_NoMatch(t *testing.T) {
	s := seededStore(t)
	res := s.Search("zzzzzz")
	assert.NotNil(t, res.Results, "results must serialize as [], not null")
	assert.Empty(t, res.Results)
	assert.Empty(t, res.Error)
}

func writeInstrumentDB(t *testing.T, instruments []Instrument) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "universe.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE instruments (symbol TEXT PRIMARY KEY, name TEXT NOT NULL, kind TEXT)`)
	require.NoError(t, err)
	for _, inst := range instruments {
		_, err = db.Exec(`INSERT INTO instruments (symbol, name, kind) VALUES (?, ?, ?)`,
			inst.Symbol, inst.Name, inst.Kind)
		require.NoError(t, err)
	}
	return path
}

func TestReload_FromSQLite(t *testing.T) {
	path := writeInstrumentDB(t, []Instrument{
		{Symbol: "ABC", Name: "Alphabet Soup Corp", Kind: "stock"},
		{Symbol: "XYZ", Name: "Xylophone Holdings", Kind: "stock"},
	})
	s := NewStore(path, zerolog.Nop())
	require.NoError(t, s.Reload())

	res := s.Search("xylo")
	require.Len(t, res.Results, 1)
	assert.Equal(t, "XYZ", res.Results[0].Symbol)
}

func TestSearch_CappedAtLimit(t *testing.T) {
	var many []Instrument
	for i := 0; i < SearchLimit+10; i++ {
		many = append(many, Instrument{
			Symbol: fmt.Sprintf("ZZ%02d", i),
			Name:   fmt.Sprintf("Zeta Fund %02d", i),
			Kind:   "mf",
		})
	}
	s := NewStore(writeInstrumentDB(t, many), zerolog.Nop())
	require.NoError(t, s.Reload())

	res := s.Search("zeta")
	assert.Len(t, res.Results, SearchLimit)
}

func TestReload_FailureReportedNotPropagated(t *testing.T) {
	// A database without the instruments table fails to load; Search must
	// still answer, attaching the error description.
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE unrelated (id INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s := NewStore(path, zerolog.Nop())
	require.Error(t, s.Reload())

	res := s.Search("aapl")
	assert.Empty(t, res.Results)
	assert.NotEmpty(t, res.Error)
}
