package metrics

import (
	"strings"
	"time"
)

var monthNamesPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// ParseDate aceita data ISO (com ou sem horário) ou dd/mm/yyyy
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}

// MonthName retorna o nome do mês por extenso em pt-BR
func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return monthNamesPtBR[month-1]
}

// WeekOfMonth é o balde simples ceil(dia/7), de 1 a 5. Não é semana ISO.
func WeekOfMonth(date time.Time) int {
	return (date.Day() + 6) / 7
}

// WeekOfYear é a semana usada no filtro semanal do dashboard:
// ceil((diaDoAno + diaDaSemanaDe1ºJan) / 7), com domingo = 0.
// As semanas começam no domingo.
func WeekOfYear(date time.Time) int {
	jan1 := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	return (date.YearDay() + int(jan1.Weekday()) + 6) / 7
}

// Week é uma semana do ano recortada pelos limites de um mês
type Week struct {
	Number int
	Start  time.Time
	End    time.Time
}

// WeeksInMonth lista as semanas do ano (WeekOfYear) que tocam o mês, ordenadas pelo número.
// O fim de cada semana é o sábado, limitado ao último dia do mês.
func WeeksInMonth(year int, month time.Month) []Week {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	weeks := make([]Week, 0, 6)
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		number := WeekOfYear(day)
		if len(weeks) > 0 && weeks[len(weeks)-1].Number == number {
			continue
		}

		end := day.AddDate(0, 0, 6-int(day.Weekday()))
		if end.After(lastDay) {
			end = lastDay
		}

		weeks = append(weeks, Week{Number: number, Start: day, End: end})
	}

	return weeks
}

// DaysOfWeek retorna os dias do ano que pertencem à semana informada (WeekOfYear)
func DaysOfWeek(year, week int) []time.Time {
	if week < 1 {
		return []time.Time{}
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	start := jan1.AddDate(0, 0, 7*(week-1)-int(jan1.Weekday()))

	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		if day.Year() == year {
			days = append(days, day)
		}
	}

	return days
}
