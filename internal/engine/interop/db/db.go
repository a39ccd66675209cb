// Released under an MIT license. See LICENSE.

// Package db provides access to SQL databases. The sqlite3 and mysql
// drivers are available.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql" // Registers the mysql driver.
	_ "github.com/mattn/go-sqlite3"    // Registers the sqlite3 driver.

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
)

//nolint:gochecknoglobals
var (
	// ErrClosed is returned when a closed handle is used.
	ErrClosed = errors.New("database closed")

	// ErrNotHandle is returned when a database operation gets something else.
	ErrNotHandle = errors.New("not a database handle")
)

// Interop returns the sql module.
func Interop(_ *env.T) map[string]entity.I {
	m := map[string]entity.I{}

	for k, fn := range map[string]function.Fn{
		"close": closeHandle,
		"exec":  exec,
		"open":  open,
		"query": query,
	} {
		m[k] = function.Strict(k, fn)
	}

	return m
}

func closeHandle(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	h, err := toHandle(args[0])
	if err != nil {
		return nil, err
	}

	if err := h.Close(); err != nil {
		return nil, err
	}

	return atom.Nil, nil
}

// exec runs a statement and returns the number of rows it affected.
func exec(_ *env.T, args ...entity.I) (entity.I, error) {
	h, q, params, err := statement(args)
	if err != nil {
		return nil, err
	}

	db, err := h.DB()
	if err != nil {
		return nil, err
	}

	res, err := db.Exec(q, params...)
	if err != nil {
		return nil, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	return integer.New(n), nil
}

func open(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, err
	}

	driver, err := validate.String(args[0])
	if err != nil {
		return nil, err
	}

	dsn, err := validate.String(args[1])
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver.Raw(), dsn.Raw())
	if err != nil {
		return nil, err
	}

	// Each connection to an in-memory sqlite database is a new database.
	if strings.Contains(dsn.Raw(), ":memory:") {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()

		return nil, err
	}

	slog.Info("opened database", slog.String("driver", driver.Raw()))

	return New(driver.Raw(), db), nil
}

// query runs a statement and returns its rows as a vector of vectors.
func query(_ *env.T, args ...entity.I) (entity.I, error) {
	h, q, params, err := statement(args)
	if err != nil {
		return nil, err
	}

	db, err := h.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(q, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []entity.I

	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))

		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make([]entity.I, len(cols))
		for i, v := range values {
			row[i] = Entity(v)
		}

		result = append(result, vector.New(row...))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vector.New(result...), nil
}

// Entity converts a scanned column value.
func Entity(v any) entity.I {
	switch v := v.(type) {
	case nil:
		return atom.Nil
	case bool:
		return atom.Bool(v)
	case int64:
		return integer.New(v)
	case float64:
		return str.New(strconv.FormatFloat(v, 'g', -1, 64))
	case []byte:
		return str.New(string(v))
	case string:
		return str.New(v)
	}

	return str.New(fmt.Sprint(v))
}

// Value converts an entity into a query parameter.
func Value(e entity.I) any {
	switch e := e.(type) {
	case *atom.T:
		if e == atom.Nil {
			return nil
		}

		return e.Tag()
	case *integer.T:
		if e.Int().IsInt64() {
			return e.Int().Int64()
		}

		return e.String()
	case *str.T:
		return e.Raw()
	}

	return e.String()
}

func toHandle(e entity.I) (*T, error) {
	if h, ok := e.(*T); ok {
		return h, nil
	}

	return nil, fmt.Errorf("%w: %s %s", ErrNotHandle, e.Name(), e)
}

func statement(args []entity.I) (*T, string, []any, error) {
	if err := validate.Variadic(args, 2, -1); err != nil {
		return nil, "", nil, err
	}

	h, err := toHandle(args[0])
	if err != nil {
		return nil, "", nil, err
	}

	q, err := validate.String(args[1])
	if err != nil {
		return nil, "", nil, err
	}

	params := make([]any, len(args)-2)
	for i, a := range args[2:] {
		params[i] = Value(a)
	}

	return h, q.Raw(), params, nil
}
