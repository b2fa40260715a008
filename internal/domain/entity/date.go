package entity

import "time"

// DateLayout formato de las fechas de negocio. Son fechas calendario sin
// componente horario; se comparan solo por orden y pertenencia a rangos.
const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha calendario "YYYY-MM-DD" en UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate serializa una fecha calendario como "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
