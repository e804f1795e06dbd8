package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// UpsertModel builds a single-row INSERT from the model's db tags that
// updates every non-key column in place when a row with the same key exists.
func UpsertModel(table string, model any, keyColumns ...string) (string, []any, error) {
	if len(keyColumns) == 0 {
		return "", nil, fmt.Errorf("upsert key columns are required")
	}

	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}

	keys := make(map[string]struct{}, len(keyColumns))
	for _, key := range keyColumns {
		keys[key] = struct{}{}
	}
	for _, key := range keyColumns {
		if !containsColumn(cols, key) {
			return "", nil, fmt.Errorf("upsert key column %q is not part of the model", key)
		}
	}

	updates := make([]string, 0, len(cols))
	for _, col := range cols {
		if _, isKey := keys[col]; isKey {
			continue
		}
		updates = append(updates, col+" = EXCLUDED."+col)
	}

	suffix := "ON CONFLICT (" + strings.Join(keyColumns, ", ") + ") DO NOTHING"
	if len(updates) > 0 {
		suffix = "ON CONFLICT (" + strings.Join(keyColumns, ", ") + ") DO UPDATE SET " + strings.Join(updates, ", ")
	}

	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// UpdateModel builds an UPDATE that sets every db-tagged column of the model.
func UpdateModel(table string, model any, where ...Condition) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}

	builder := Update(table)
	for i, col := range cols {
		builder.Set(col, vals[i])
	}
	return builder.Where(where...).ToSQL()
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

func containsColumn(cols []string, target string) bool {
	for _, col := range cols {
		if col == target {
			return true
		}
	}
	return false
}
