package sqlite

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Scanner maps sql rows onto structs using `db` tags, falling back to a
// case-insensitive field name match.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

func (s *Scanner) ScanRowToStruct(rows *sql.Rows, dest interface{}) error {
	destValue := reflect.ValueOf(dest)

	if destValue.Kind() != reflect.Ptr || destValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dest must be a pointer to struct")
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}

		return sql.ErrNoRows
	}

	return s.scanCurrentRow(rows, destValue.Elem())
}

func (s *Scanner) ScanRowsToSlice(rows *sql.Rows, dest interface{}) error {
	destValue := reflect.ValueOf(dest)

	if destValue.Kind() != reflect.Ptr || destValue.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("dest must be a pointer to slice")
	}

	sliceValue := destValue.Elem()
	elemType := sliceValue.Type().Elem()

	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("slice elements must be structs")
	}

	for rows.Next() {
		elemValue := reflect.New(elemType).Elem()

		if err := s.scanCurrentRow(rows, elemValue); err != nil {
			return err
		}

		sliceValue.Set(reflect.Append(sliceValue, elemValue))
	}

	return rows.Err()
}

func (s *Scanner) scanCurrentRow(rows *sql.Rows, destElem reflect.Value) error {
	columns, err := rows.Columns()

	if err != nil {
		return err
	}

	scanArgs := make([]interface{}, len(columns))

	for i := range scanArgs {
		scanArgs[i] = new(interface{})
	}

	if err := rows.Scan(scanArgs...); err != nil {
		return err
	}

	destType := destElem.Type()

	for i, colName := range columns {
		val := *(scanArgs[i].(*interface{}))

		field, found := s.findStructField(destType, colName)

		if !found {
			continue
		}

		if err := s.setFieldValue(destElem.FieldByIndex(field.Index), val); err != nil {
			return fmt.Errorf("column %s: %w", colName, err)
		}
	}

	return nil
}

func (s *Scanner) findStructField(structType reflect.Type, colName string) (reflect.StructField, bool) {
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if tag := field.Tag.Get("db"); tag != "" && strings.EqualFold(tag, colName) {
			return field, true
		}
	}

	name := strings.ReplaceAll(colName, "_", "")

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if strings.EqualFold(field.Name, name) {
			return field, true
		}
	}

	return reflect.StructField{}, false
}

func (s *Scanner) setFieldValue(field reflect.Value, val interface{}) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	if val == nil {
		return nil
	}

	fieldType := field.Type()

	// Nullable timestamps land in *time.Time fields.
	if fieldType == reflect.TypeOf((*time.Time)(nil)) {
		parsed, err := toTime(val)

		if err != nil {
			return err
		}

		field.Set(reflect.ValueOf(&parsed))

		return nil
	}

	if fieldType == reflect.TypeOf(time.Time{}) {
		parsed, err := toTime(val)

		if err != nil {
			return err
		}

		field.Set(reflect.ValueOf(parsed))

		return nil
	}

	switch fieldType.Kind() {
	case reflect.String:
		switch v := val.(type) {
		case string:
			field.SetString(v)
		case []byte:
			field.SetString(string(v))
		}
	case reflect.Bool:
		switch v := val.(type) {
		case bool:
			field.SetBool(v)
		case int64:
			field.SetBool(v != 0)
		}
	case reflect.Int, reflect.Int64:
		if v, ok := val.(int64); ok {
			field.SetInt(v)
		}
	case reflect.Float32, reflect.Float64:
		if v, ok := val.(float64); ok {
			field.SetFloat(v)
		}
	}

	return nil
}

func toTime(val interface{}) (time.Time, error) {
	switch v := val.(type) {
	case time.Time:
		return v, nil
	case string:
		return parseTimeString(v)
	case []byte:
		return parseTimeString(string(v))
	default:
		return time.Time{}, fmt.Errorf("cannot convert %T to time", val)
	}
}

func parseTimeString(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format %q", value)
}
