package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// Period formata a data no padrão mm-yyyy usado nos snapshots mensais
func Period(date time.Time) string {
	return date.Format("01-2006")
}

// ParsePeriod converte um período mm-yyyy no primeiro dia do mês correspondente
func ParsePeriod(period string) (time.Time, error) {
	return time.Parse("01-2006", period)
}
