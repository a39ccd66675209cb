// Released under an MIT license. See LICENSE.

// Package reader turns lispy source text into entities.
package reader

import (
	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/reader/lexer"
	"github.com/michaelmacinnis/lispy/internal/reader/parser"
)

// ErrIncomplete is returned when text ends inside an expression. More
// text may complete it.
var ErrIncomplete = parser.ErrIncomplete //nolint:gochecknoglobals

// Compile parses text and returns its top-level expressions in order.
// Label names the source in error messages.
func Compile(label, text string) ([]entity.I, error) {
	return parser.New(lexer.New(label, text).Token).Parse()
}
