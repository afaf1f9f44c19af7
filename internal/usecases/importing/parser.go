package importing

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	columnExecutor  = "Executor"
	columnWorkspace = "Workspace"
	columnRealized  = "Realizado"
	columnDate      = "Data"

	entryDateLayout = "2/1/2006"
)

// ParseResult guarda os apontamentos válidos e quantas linhas foram descartadas
type ParseResult struct {
	Entries []domain.TimeEntry
	Skipped int
}

type columnIndex struct {
	executor  int
	workspace int
	realized  int
	date      int
}

func (c columnIndex) max() int {
	m := c.executor
	for _, idx := range []int{c.workspace, c.realized, c.date} {
		if idx > m {
			m = idx
		}
	}
	return m
}

// ParseCSV lê a exportação separada por ponto e vírgula. Linhas com erro de formato são descartadas.
func ParseCSV(r io.Reader) (ParseResult, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows := make([][]string, 0)
	malformed := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				malformed++
				continue
			}
			return ParseResult{}, errors.Wrap(err, "erro ao ler o arquivo CSV")
		}
		rows = append(rows, record)
	}

	result := parseRows(rows)
	result.Skipped += malformed
	return result, nil
}

// ParseXLSX lê a primeira planilha do arquivo com os mesmos cabeçalhos do CSV
func ParseXLSX(r io.Reader) (ParseResult, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return ParseResult{}, errors.Wrap(err, "erro ao abrir a planilha")
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return ParseResult{}, nil
	}

	// valores crus: datas e horas formatadas chegam como número serial
	rows, err := file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return ParseResult{}, errors.Wrapf(err, "erro ao ler a planilha %s", sheets[0])
	}

	return parseRows(normalizeSpreadsheetRows(rows)), nil
}

// normalizeSpreadsheetRows converte datas e horas salvas como número serial do Excel
func normalizeSpreadsheetRows(rows [][]string) [][]string {
	header, idx, ok := findHeader(rows)
	if !ok {
		return rows
	}

	for i := header + 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= idx.max() {
			continue
		}

		if serial, err := strconv.ParseFloat(strings.TrimSpace(row[idx.date]), 64); err == nil {
			if date, err := excelize.ExcelDateToTime(serial, false); err == nil {
				row[idx.date] = date.Format("02/01/2006")
			}
		}

		if fraction, err := strconv.ParseFloat(strings.TrimSpace(row[idx.realized]), 64); err == nil && fraction > 0 {
			minutes := int(fraction*24*60 + 0.5)
			row[idx.realized] = strconv.Itoa(minutes/60) + ":" + twoDigits(minutes%60)
		}
	}

	return rows
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func findHeader(rows [][]string) (int, columnIndex, bool) {
	for i, row := range rows {
		positions := make(map[string]int, len(row))
		for j, cell := range row {
			name := cleanCell(cell)
			if _, exists := positions[name]; !exists {
				positions[name] = j
			}
		}

		executor, hasExecutor := positions[columnExecutor]
		workspace, hasWorkspace := positions[columnWorkspace]
		if !hasExecutor || !hasWorkspace {
			continue
		}

		realized, hasRealized := positions[columnRealized]
		date, hasDate := positions[columnDate]
		if !hasRealized || !hasDate {
			return i, columnIndex{}, false
		}

		return i, columnIndex{executor: executor, workspace: workspace, realized: realized, date: date}, true
	}

	return -1, columnIndex{}, false
}

func parseRows(rows [][]string) ParseResult {
	result := ParseResult{Entries: make([]domain.TimeEntry, 0)}

	header, idx, ok := findHeader(rows)
	if !ok {
		return result
	}

	for _, row := range rows[header+1:] {
		if isBlank(row) {
			continue
		}
		if len(row) <= idx.max() {
			result.Skipped++
			continue
		}

		realized := cleanCell(row[idx.realized])
		hours := HoursFromRealized(realized)
		if hours == 0 {
			result.Skipped++
			continue
		}

		date, ok := ParseEntryDate(row[idx.date])
		if !ok {
			result.Skipped++
			continue
		}

		result.Entries = append(result.Entries, domain.TimeEntry{
			Executor:     cleanCell(row[idx.executor]),
			Workspace:    cleanCell(row[idx.workspace]),
			RealizedTime: realized,
			Hours:        hours,
			Date:         date,
			MonthKey:     domain.NewMonthKey(date),
		})
	}

	return result
}

// HoursFromRealized converte "HH:MM" em horas decimais ("01:30" vira 1.5). Valores inválidos viram 0.
func HoursFromRealized(value string) float64 {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 {
		return 0
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}

	total := float64(hours) + float64(minutes)/60
	if total < 0 {
		return 0
	}
	return total
}

// ParseEntryDate aceita DD/MM/YYYY
func ParseEntryDate(value string) (time.Time, bool) {
	date, err := time.Parse(entryDateLayout, cleanCell(value))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func cleanCell(value string) string {
	value = strings.TrimPrefix(value, "\ufeff")
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, `"`)
	value = strings.TrimSuffix(value, `"`)
	return strings.TrimSpace(value)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
