package cues

import (
	"fmt"
	"strings"
)

// Group holds an ordered list of child cues that fire together.
type Group struct {
	base
	Page     string
	Children []Cue

	// DCA is set for the groups made by the console template; it changes how
	// the group names itself.
	DCA *int
}

// NewGroup returns a group cue numbered number.
func NewGroup(number, comment, page string, children []Cue) *Group {
	g := &Group{
		base:     newBase(0),
		Page:     page,
		Children: children,
	}
	g.number = number
	g.comment = comment
	return g
}

// NewDCAGroup returns an unnumbered group describing a change to one DCA.
func NewDCAGroup(comment string, dca int, children []Cue) *Group {
	g := NewGroup("", comment, "", children)
	g.DCA = &dca
	return g
}

// Append adds children to the group.
func (g *Group) Append(children ...Cue) {
	g.Children = append(g.Children, children...)
}

// Name is "DCA<n> => <comment>" for DCA groups, otherwise the comment,
// page and child descriptions.
func (g *Group) Name() string {
	if g.DCA != nil {
		return fmt.Sprintf("DCA%d => %s", *g.DCA, g.comment)
	}

	var name strings.Builder
	if g.comment != "" {
		name.WriteString(g.comment + " ")
	}
	if g.Page != "" {
		name.WriteString("(pg" + g.Page + ") ")
	}
	name.WriteString("(" + g.childrenDescription() + ")")
	return name.String()
}

// Description is "DCA<n>" for DCA groups, otherwise "<number><children>".
func (g *Group) Description() string {
	if g.DCA != nil {
		return fmt.Sprintf("DCA%d", *g.DCA)
	}
	number := g.number
	if number == "" {
		number = "#"
	}
	return number + "<" + g.childrenDescription() + ">"
}

func (g *Group) childrenDescription() string {
	parts := make([]string, 0, len(g.Children))
	for _, c := range g.Children {
		parts = append(parts, c.Description())
	}
	return strings.Join(parts, ",")
}
