package domain

import "time"

type ImportResult struct {
	Imported           int        `json:"imported"`
	Replaced           int64      `json:"replaced"`
	Skipped            int        `json:"skipped"`
	NewEmployees       []string   `json:"new_employees"`
	NewClients         []string   `json:"new_clients"`
	SuggestedStartDate *time.Time `json:"suggested_start_date,omitempty"`
	SuggestedEndDate   *time.Time `json:"suggested_end_date,omitempty"`
}

// ContractHints são os campos extraídos do texto de um contrato
type ContractHints struct {
	ClientName   string     `json:"client_name"`
	RecurringFee float64    `json:"recurring_fee"`
	OneTimeFee   float64    `json:"one_time_fee"`
	StartDate    *time.Time `json:"start_date,omitempty"`
}
