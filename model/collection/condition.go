package collection

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"stockfilter.GO/model/api/searchcriteria"
)

var ErrUnsupportedCondition = errors.New("collection: unsupported condition type")

// ConditionSQL renders one filter condition on column as a predicate with args.
func ConditionSQL(column, condition string, value interface{}) (string, []interface{}, error) {
	switch strings.ToLower(condition) {
	case "", searchcriteria.ConditionEq:
		return column + " = ?", []interface{}{value}, nil
	case searchcriteria.ConditionNeq:
		return column + " <> ?", []interface{}{value}, nil
	case searchcriteria.ConditionLike:
		return column + " LIKE ?", []interface{}{value}, nil
	case searchcriteria.ConditionNLike:
		return column + " NOT LIKE ?", []interface{}{value}, nil
	case searchcriteria.ConditionGt:
		return column + " > ?", []interface{}{value}, nil
	case searchcriteria.ConditionGteq, "moreq":
		return column + " >= ?", []interface{}{value}, nil
	case searchcriteria.ConditionLt:
		return column + " < ?", []interface{}{value}, nil
	case searchcriteria.ConditionLteq:
		return column + " <= ?", []interface{}{value}, nil
	case searchcriteria.ConditionNull:
		return column + " IS NULL", nil, nil
	case searchcriteria.ConditionNotNull:
		return column + " IS NOT NULL", nil, nil
	case searchcriteria.ConditionIn, searchcriteria.ConditionNin:
		vals := toValues(value)
		notIn := strings.EqualFold(condition, searchcriteria.ConditionNin)
		if len(vals) == 0 {
			if notIn {
				return "1 = 1", nil, nil
			}
			return "1 = 0", nil, nil
		}
		op := " IN "
		if notIn {
			op = " NOT IN "
		}
		ph := strings.TrimSuffix(strings.Repeat("?, ", len(vals)), ", ")
		return column + op + "(" + ph + ")", vals, nil
	}
	return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedCondition, condition)
}

// toValues flattens an in/nin value. Strings are comma separated lists.
func toValues(value interface{}) []interface{} {
	if value == nil {
		return nil
	}
	if s, ok := value.(string); ok {
		var out []interface{}
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []interface{}{value}
	}
	out := make([]interface{}, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, rv.Index(i).Interface())
	}
	return out
}
