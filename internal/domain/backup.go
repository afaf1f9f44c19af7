package domain

import "time"

const BackupVersion = "1.0"

// SystemBackup é o snapshot completo exportado e restaurado pelo sistema
type SystemBackup struct {
	Entries      []TimeEntry      `json:"entries"`
	Employees    []EmployeeConfig `json:"employees"`
	Clients      []ClientConfig   `json:"clients"`
	HealthInputs []HealthInput    `json:"health_inputs"`
	Timestamp    time.Time        `json:"timestamp"`
	Version      string           `json:"version"`
}

type RestoreResult struct {
	Entries      int `json:"entries"`
	Employees    int `json:"employees"`
	Clients      int `json:"clients"`
	HealthInputs int `json:"health_inputs"`
}
