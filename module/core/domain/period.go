package domain

import "fmt"

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), nil
	}
	return "", fmt.Errorf("%w: period must be one of day, week, month, year", ErrInvalidArgument)
}
