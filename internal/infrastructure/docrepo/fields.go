// Package docrepo implementa los puertos de repositorio tipados sobre el
// almacén de documentos genérico (docstore.Store). Cada repositorio mapea su
// entidad a campos planos: los montos y cantidades viajan como strings
// decimales y las fechas como "YYYY-MM-DD".
package docrepo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

func strField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func decField(fields map[string]any, key string) (decimal.Decimal, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return decimal.Zero, nil
	}
	switch n := v.(type) {
	case string:
		if n == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, fmt.Errorf("campo %s: %w", key, err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	default:
		return decimal.Zero, fmt.Errorf("campo %s: tipo %T no numérico", key, v)
	}
}

func dateField(fields map[string]any, key string) (time.Time, error) {
	s := strField(fields, key)
	if s == "" {
		return time.Time{}, nil
	}
	d, err := entity.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("campo %s: %w", key, err)
	}
	return d, nil
}

// itemsField normaliza la lista de líneas embebidas a []map[string]any,
// tolerando las variantes que devuelven los distintos drivers.
func itemsField(fields map[string]any, key string) []map[string]any {
	switch raw := fields[key].(type) {
	case []map[string]any:
		return raw
	case []any:
		out := make([]map[string]any, 0, len(raw))
		for _, item := range raw {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}
