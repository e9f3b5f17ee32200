package repository

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/leon37/NetoLedger/internal/model"
)

// SerializeRecords renders records as a JSON array for the prompt. An empty
// set is "[]". Values JSON has no type for (timestamps, ids, decimals...)
// are written as strings.
func SerializeRecords(records []model.AssetRecord) (string, error) {
	out := make([]any, 0, len(records))
	for _, rec := range records {
		out = append(out, Normalize(map[string]any(rec)))
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("serialize assets: %w", err)
	}
	return string(data), nil
}

// Normalize converts v into a tree of JSON-native values.
func Normalize(v any) any {
	switch t := v.(type) {
	case nil, bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return t
	case float32:
		return normalizeFloat(float64(t))
	case float64:
		return normalizeFloat(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case []byte:
		// Same encoding the Mongo store uses for binary fields.
		return base64.StdEncoding.EncodeToString(t)
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = Normalize(iter.Value().Interface())
		}
		return m
	case reflect.Slice, reflect.Array:
		s := make([]any, rv.Len())
		for i := range s {
			s[i] = Normalize(rv.Index(i).Interface())
		}
		return s
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return Normalize(rv.Elem().Interface())
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return normalizeFloat(rv.Float())
	}
	return fmt.Sprint(v)
}

// normalizeFloat keeps finite numbers and spells NaN and infinities out,
// since JSON has no literal for them.
func normalizeFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return f
}
