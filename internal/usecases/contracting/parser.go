package contracting

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/profitability-api/internal/domain"
)

var (
	clientNamePattern   = regexp.MustCompile(`(?is)Contratante\s*(.*?)\s*,?\s*(?:pessoa jurídica|inscrita no CNPJ)`)
	recurringFeePattern = regexp.MustCompile(`(?i)Valor da Parcela:\s*R\$\s*([\d.,]+)`)
	oneTimeFeePattern   = regexp.MustCompile(`(?i)Valor de implementação \(pontual\):\s*R\$\s*([\d.,]+)`)
	startDatePattern    = regexp.MustCompile(`(?im)Data de início do projeto:\s*(.*?)(?:;|$)`)
)

var portugueseMonths = map[string]time.Month{
	"janeiro":   time.January,
	"fevereiro": time.February,
	"março":     time.March,
	"marco":     time.March,
	"abril":     time.April,
	"maio":      time.May,
	"junho":     time.June,
	"julho":     time.July,
	"agosto":    time.August,
	"setembro":  time.September,
	"outubro":   time.October,
	"novembro":  time.November,
	"dezembro":  time.December,
}

// ParseContract extrai nome, fee recorrente, taxa de implantação e início do projeto
// do texto do contrato. Campos não encontrados ficam zerados.
func ParseContract(text string) domain.ContractHints {
	hints := domain.ContractHints{}

	if match := clientNamePattern.FindStringSubmatch(text); len(match) > 1 {
		name := strings.TrimLeft(strings.TrimSpace(match[1]), ":- ")
		hints.ClientName = strings.Join(strings.Fields(name), " ")
	}

	if match := recurringFeePattern.FindStringSubmatch(text); len(match) > 1 {
		hints.RecurringFee = ParseBrazilianCurrency(match[1])
	}

	if match := oneTimeFeePattern.FindStringSubmatch(text); len(match) > 1 {
		hints.OneTimeFee = ParseBrazilianCurrency(match[1])
	}

	if match := startDatePattern.FindStringSubmatch(text); len(match) > 1 {
		if date, ok := ParseBrazilianDate(match[1]); ok {
			hints.StartDate = &date
		}
	}

	return hints
}

// ParseBrazilianCurrency converte "27.735,00" em 27735. Valores inválidos viram 0.
func ParseBrazilianCurrency(value string) float64 {
	clean := strings.TrimRight(strings.TrimSpace(value), ".,")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.Replace(clean, ",", ".", 1)

	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return 0
	}

	return amount.Round(2).InexactFloat64()
}

// ParseBrazilianDate converte "21 de fevereiro de 2026"
func ParseBrazilianDate(value string) (time.Time, bool) {
	clean := strings.NewReplacer(";", "", ".", "").Replace(value)
	parts := strings.Split(strings.ToLower(strings.TrimSpace(clean)), " de ")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}

	month, ok := portugueseMonths[strings.TrimSpace(parts[1])]
	if !ok {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day {
		return time.Time{}, false
	}

	return date, true
}
