package backup

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBackup     = errors.New("arquivo de backup inválido")
	ErrExportBackup      = errors.New("erro ao exportar backup")
	ErrRestoreBackup     = errors.New("erro ao restaurar backup")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

type BackupError struct {
	Err     error
	Code    string
	Details string
}

func (e *BackupError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BackupError) Unwrap() error {
	return e.Err
}

func NewBackupError(err error, code string, details string) *BackupError {
	return &BackupError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
