package repository

import (
	"database/sql"
	"database/sql/driver"
	"io"
	"testing"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/infrastructure/database/postgres"
	"github.com/stretchr/testify/require"
)

// stubDriver serves canned result sets the way lib/pq hands them to
// database/sql: DATE and TIMESTAMP columns arrive as time.Time values, never
// as strings. It also records every prepared query for assertions on the
// generated SQL.
type stubResultSet struct {
	columns []string
	rows    [][]driver.Value
}

type stubDriver struct {
	queue   []*stubResultSet
	queries []string
}

var stub = &stubDriver{}

func init() {
	sql.Register("stubpg", stub)
}

func stubConnection(t *testing.T, results ...*stubResultSet) *postgres.Connection {
	stub.queue = results
	stub.queries = nil

	db, err := sql.Open("stubpg", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &postgres.Connection{DB: db}
}

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return &stubConn{driver: d}, nil
}

type stubConn struct {
	driver *stubDriver
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	c.driver.queries = append(c.driver.queries, query)

	var result *stubResultSet
	if len(c.driver.queue) > 0 {
		result = c.driver.queue[0]
		c.driver.queue = c.driver.queue[1:]
	}
	return &stubStmt{result: result}, nil
}

func (c *stubConn) Close() error              { return nil }
func (c *stubConn) Begin() (driver.Tx, error) { return nil, driver.ErrSkip }

type stubStmt struct {
	result *stubResultSet
}

func (s *stubStmt) Close() error  { return nil }
func (s *stubStmt) NumInput() int { return -1 }

func (s *stubStmt) Exec([]driver.Value) (driver.Result, error) {
	return driver.ResultNoRows, nil
}

func (s *stubStmt) Query([]driver.Value) (driver.Rows, error) {
	if s.result == nil {
		return &stubRows{result: &stubResultSet{}}, nil
	}
	return &stubRows{result: s.result}, nil
}

type stubRows struct {
	result *stubResultSet
	cursor int
}

func (r *stubRows) Columns() []string { return r.result.columns }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.cursor >= len(r.result.rows) {
		return io.EOF
	}
	copy(dest, r.result.rows[r.cursor])
	r.cursor++
	return nil
}
