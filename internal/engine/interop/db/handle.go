// Released under an MIT license. See LICENSE.

package db

import (
	"database/sql"
	"sync"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
)

const name = "database"

// T (handle) is an open database.
type T struct {
	sync.Mutex
	db     *sql.DB
	driver string
}

type handle = T

// New wraps db, opened with driver.
func New(driver string, db *sql.DB) *handle {
	return &handle{db: db, driver: driver}
}

// Close closes the database. Closing twice is not an error.
func (h *handle) Close() error {
	h.Lock()
	defer h.Unlock()

	if h.db == nil {
		return nil
	}

	err := h.db.Close()
	h.db = nil

	return err
}

// DB returns the database or ErrClosed.
func (h *handle) DB() (*sql.DB, error) {
	h.Lock()
	defer h.Unlock()

	if h.db == nil {
		return nil, ErrClosed
	}

	return h.db, nil
}

// Equal returns true if e is the same handle as h.
func (h *handle) Equal(e entity.I) bool {
	o, ok := e.(*handle)

	return ok && o == h
}

// Name returns the type name for handle.
func (h *handle) Name() string {
	return name
}

// String returns the printed form of h.
func (h *handle) String() string {
	return "<database(" + h.driver + ")>"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t handle

	// The handle type is an entity.
	_ = entity.I(&t)
}
