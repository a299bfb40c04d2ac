package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// modelColumn is one `db` tagged field. Tag options after the column name:
// omitempty skips zero values, readonly keeps the column out of UPDATE SET.
type modelColumn struct {
	name      string
	value     any
	omitEmpty bool
	readOnly  bool
	zero      bool
}

// InsertModel builds an INSERT from the exported `db` tagged fields of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	columns, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}

	names := make([]string, 0, len(columns))
	values := make([]any, 0, len(columns))
	for _, col := range columns {
		if col.omitEmpty && col.zero {
			continue
		}
		names = append(names, col.name)
		values = append(values, col.value)
	}
	if len(names) == 0 {
		return "", nil, fmt.Errorf("model %T has no insertable columns", model)
	}

	return InsertInto(table).
		Columns(names...).
		Values(values...).
		Suffix(suffix).
		ToSQL()
}

// UpdateModel returns an UPDATE builder with one SET per writable column.
// Callers add the WHERE clause and any SetExpr columns.
func UpdateModel(table string, model any) (*UpdateBuilder, error) {
	columns, err := modelColumns(model)
	if err != nil {
		return nil, err
	}

	builder := Update(table)
	set := 0
	for _, col := range columns {
		if col.readOnly || (col.omitEmpty && col.zero) {
			continue
		}
		builder.Set(col.name, col.value)
		set++
	}
	if set == 0 {
		return nil, fmt.Errorf("model %T has no writable columns", model)
	}
	return builder, nil
}

func modelColumns(model any) ([]modelColumn, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be a struct, got %s", value.Kind())
	}

	typ := value.Type()
	out := make([]modelColumn, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}

		col := modelColumn{
			name:  name,
			value: value.Field(i).Interface(),
			zero:  value.Field(i).IsZero(),
		}
		for _, opt := range strings.Split(opts, ",") {
			switch strings.TrimSpace(opt) {
			case "omitempty":
				col.omitEmpty = true
			case "readonly":
				col.readOnly = true
			}
		}
		out = append(out, col)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("model %s has no db columns", typ.Name())
	}
	return out, nil
}
