package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by single-row lookups that match nothing
var ErrNotFound = errors.New("not found")

// whereBuilder accumulates AND-ed conditions and their bind arguments,
// numbering PostgreSQL placeholders as it goes.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

// add appends cond, whose single %d verb becomes the next placeholder index
func (b *whereBuilder) add(cond string, arg interface{}) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(cond, len(b.args)))
}

// addRaw appends a condition that takes no argument
func (b *whereBuilder) addRaw(cond string) {
	b.conds = append(b.conds, cond)
}

// bind registers arg and returns its placeholder
func (b *whereBuilder) bind(arg interface{}) string {
	b.args = append(b.args, arg)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into an ILIKE pattern matching s literally anywhere
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
