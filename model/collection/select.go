// Package collection builds product collection queries.
//
// A Select accumulates from/join and where descriptors and is rendered onto a gorm
// chain only when the collection loads. Filter processors mutate the Select in place.
package collection

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Join types.
const (
	JoinFrom  = "from"
	JoinInner = "inner join"
	JoinLeft  = "left join"
)

var ErrDuplicateAlias = errors.New("collection: duplicate table alias")

// FromPart describes the main table or one joined table. Args are the bound values
// of the ? placeholders in Condition.
type FromPart struct {
	JoinType  string
	TableName string
	Alias     string
	Condition string
	Args      []interface{}
	Columns   []string
}

// WherePart is one AND'd predicate with its bound args.
type WherePart struct {
	Expr string
	Args []interface{}
}

// Select is a mutable query description.
type Select struct {
	from     map[string]*FromPart
	aliases  []string
	where    []WherePart
	orders   []clause.OrderByColumn
	distinct bool
	limit    int
	offset   int
}

// NewSelect starts a select from table under alias. No columns means alias.*.
func NewSelect(table, alias string, columns ...string) *Select {
	s := &Select{from: make(map[string]*FromPart)}
	s.from[alias] = &FromPart{JoinType: JoinFrom, TableName: table, Alias: alias, Columns: columns}
	s.aliases = append(s.aliases, alias)
	return s
}

// FromPart returns a copy of the from part keyed by alias.
func (s *Select) FromPart() map[string]FromPart {
	out := make(map[string]FromPart, len(s.from))
	for alias, p := range s.from {
		out[alias] = *p
	}
	return out
}

// HasAlias reports whether alias is registered as the main table or a join.
func (s *Select) HasAlias(alias string) bool {
	_, ok := s.from[alias]
	return ok
}

// MainAlias returns the alias of the table the select starts from.
func (s *Select) MainAlias() string {
	return s.aliases[0]
}

// Join registers an inner join projecting no columns. args bind the ? placeholders
// of condition.
func (s *Select) Join(table, alias, condition string, args ...interface{}) error {
	return s.join(JoinInner, table, alias, condition, args)
}

// JoinLeft registers a left join.
func (s *Select) JoinLeft(table, alias, condition string, args ...interface{}) error {
	return s.join(JoinLeft, table, alias, condition, args)
}

func (s *Select) join(kind, table, alias, condition string, args []interface{}) error {
	if _, ok := s.from[alias]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAlias, alias)
	}
	s.from[alias] = &FromPart{JoinType: kind, TableName: table, Alias: alias, Condition: condition, Args: args}
	s.aliases = append(s.aliases, alias)
	return nil
}

// AddColumns projects columns of a registered table.
func (s *Select) AddColumns(alias string, columns ...string) error {
	p, ok := s.from[alias]
	if !ok {
		return fmt.Errorf("collection: unknown alias %s", alias)
	}
	p.Columns = append(p.Columns, columns...)
	return nil
}

// Where appends a predicate AND'd with the existing ones.
func (s *Select) Where(expr string, args ...interface{}) *Select {
	s.where = append(s.where, WherePart{Expr: expr, Args: args})
	return s
}

// WherePart returns a copy of the registered predicates.
func (s *Select) WherePart() []WherePart {
	return append([]WherePart(nil), s.where...)
}

// Order sorts by column of the table registered under alias. Column names are quoted
// by the dialect.
func (s *Select) Order(alias, column, direction string) *Select {
	s.orders = append(s.orders, clause.OrderByColumn{
		Column: clause.Column{Table: alias, Name: column},
		Desc:   strings.EqualFold(direction, "DESC"),
	})
	return s
}

func (s *Select) Distinct(on bool) *Select {
	s.distinct = on
	return s
}

// LimitPage sets LIMIT/OFFSET from a 1-based page.
func (s *Select) LimitPage(page, size int) *Select {
	if page < 1 {
		page = 1
	}
	s.limit = size
	s.offset = (page - 1) * size
	return s
}

// Apply renders the select onto db: table, joins, wheres, columns, order and paging.
func (s *Select) Apply(db *gorm.DB) *gorm.DB {
	tx := s.applyFilters(db)
	if s.distinct {
		tx = tx.Distinct(s.columns())
	} else {
		tx = tx.Select(s.columns())
	}
	for _, o := range s.orders {
		tx = tx.Order(o)
	}
	if s.limit > 0 {
		tx = tx.Limit(s.limit).Offset(s.offset)
	}
	return tx
}

// ApplyCount renders a distinct count of column on the main table, without order
// and paging. Finish the chain with Count.
func (s *Select) ApplyCount(db *gorm.DB, column string) *gorm.DB {
	return s.applyFilters(db).Distinct(s.MainAlias() + "." + column)
}

func (s *Select) applyFilters(db *gorm.DB) *gorm.DB {
	main := s.from[s.MainAlias()]
	tx := db.Table(main.TableName + " AS " + main.Alias)
	for _, alias := range s.aliases[1:] {
		p := s.from[alias]
		tx = tx.Joins(strings.ToUpper(p.JoinType)+" "+p.TableName+" AS "+alias+" ON "+p.Condition, p.Args...)
	}
	for _, w := range s.where {
		tx = tx.Where(w.Expr, w.Args...)
	}
	return tx
}

func (s *Select) columns() []string {
	var cols []string
	for _, alias := range s.aliases {
		p := s.from[alias]
		if p.JoinType == JoinFrom && len(p.Columns) == 0 {
			cols = append(cols, alias+".*")
			continue
		}
		for _, c := range p.Columns {
			if strings.ContainsAny(c, ". (") {
				cols = append(cols, c)
			} else {
				cols = append(cols, alias+"."+c)
			}
		}
	}
	return cols
}
