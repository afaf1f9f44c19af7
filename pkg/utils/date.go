package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta datas YYYY-MM-DD vindas de query string; vazio retorna nil
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
