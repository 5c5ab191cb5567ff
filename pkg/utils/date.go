package utils

import "time"

// JST é o fuso dos exports (os timestamps chegam em UTC e as datas de
// calendário são sempre interpretadas no fuso local da operação).
var JST = time.FixedZone("JST", 9*60*60)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// NormalizeExportTimestamp converte um timestamp ISO/UTC do export para a data
// de calendário em JST (formato YYYY-MM-DD). Quando o valor não é um timestamp
// parseável, o valor bruto é devolvido sem erro — comportamento herdado dos
// exports, que às vezes já trazem a data pronta.
func NormalizeExportTimestamp(raw string) string {
	if raw == "" {
		return raw
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(JST).Format("2006-01-02")
	}

	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t.In(JST).Format("2006-01-02")
	}

	return raw
}
