// Released under an MIT license. See LICENSE.

package functools

import (
	"strings"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
)

const name = "linked-list"

// Empty is the empty linked list.
var Empty = &LinkedList{} //nolint:gochecknoglobals

// LinkedList is an immutable singly linked list.
type LinkedList struct {
	head entity.I
	rest *LinkedList
}

// New creates a list with head in front of rest.
func New(head entity.I, rest *LinkedList) *LinkedList {
	return &LinkedList{head: head, rest: rest}
}

// Elements returns the values in l from front to back.
func (l *LinkedList) Elements() []entity.I {
	var es []entity.I

	for ; l != Empty; l = l.rest {
		es = append(es, l.head)
	}

	return es
}

// Equal returns true if e is a list with equal elements.
func (l *LinkedList) Equal(e entity.I) bool {
	o, ok := e.(*LinkedList)

	return ok && entity.All(l.Elements(), o.Elements())
}

// Head returns the first value in l.
func (l *LinkedList) Head() entity.I {
	return l.head
}

// Name returns the type name for linked lists.
func (l *LinkedList) Name() string {
	return name
}

// Rest returns l without its first value.
func (l *LinkedList) Rest() *LinkedList {
	return l.rest
}

// String returns the expression that builds l.
func (l *LinkedList) String() string {
	es := l.Elements()

	var b strings.Builder

	for _, e := range es {
		b.WriteString("(+> ")
		b.WriteString(e.String())
		b.WriteString(" ")
	}

	b.WriteString("emp")
	b.WriteString(strings.Repeat(")", len(es)))

	return b.String()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t LinkedList

	// The linked list type is an entity.
	_ = entity.I(&t)
}
