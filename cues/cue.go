// Package cues is the cue tree produced from a plot.
//
// Cue is a closed set: only the types in this package implement it. Each
// variant renders its own display name and short description; group cues
// build theirs from their children.
package cues

import (
	"slices"
	"strings"
)

// Cue is one executable instruction for QLab.
type Cue interface {
	// Number is the cue number from the plot, "" if it has none.
	Number() string
	Comment() string
	// PreWait is the delay in seconds before the cue fires.
	PreWait() float64
	// Name is the display name given to the cue in QLab.
	Name() string
	// Description is the short form used inside a parent group's name.
	Description() string

	attrs() *base
}

type base struct {
	number  string
	comment string
	preWait float64
}

func newBase(preWait float64) base {
	if preWait < 0 {
		preWait = 0
	}
	return base{preWait: preWait}
}

func (b *base) Number() string   { return b.number }
func (b *base) Comment() string  { return b.comment }
func (b *base) PreWait() float64 { return b.preWait }
func (b *base) attrs() *base     { return b }

// Identify sets the cue number and comment of c and returns it. It is meant
// for the compiler, before the cue is handed out.
func Identify(c Cue, number, comment string) Cue {
	a := c.attrs()
	a.number = number
	a.comment = comment
	return c
}

// Walk visits cs depth first, parents before children. Returning false from
// fn skips the children of that cue.
func Walk(cs []Cue, fn func(c Cue, depth int) bool) {
	walk(cs, 0, fn)
}

func walk(cs []Cue, depth int, fn func(c Cue, depth int) bool) {
	for _, c := range cs {
		if !fn(c, depth) {
			continue
		}
		if g, ok := c.(*Group); ok {
			walk(g.Children, depth+1, fn)
		}
	}
}

// Count returns the number of cues in the tree, groups included.
func Count(cs []Cue) int {
	n := 0
	Walk(cs, func(Cue, int) bool {
		n++
		return true
	})
	return n
}

// Compare orders cues by number. A cue without a number sorts as "".
func Compare(a, b Cue) int {
	return strings.Compare(a.Number(), b.Number())
}

// Less reports whether a sorts before b.
func Less(a, b Cue) bool {
	return Compare(a, b) < 0
}

// SortByNumber sorts cs in place by cue number, keeping the order of equal numbers.
func SortByNumber(cs []Cue) {
	slices.SortStableFunc(cs, Compare)
}
