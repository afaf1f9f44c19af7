package handler

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/usecases/backup"
)

const maxBackupSize = 64 << 20

// ExportBackup devolve o snapshot completo como anexo JSON
func ExportBackup(service backup.Backuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportBackup")

		snapshot, err := service.Export(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		filename := fmt.Sprintf("backup-%s.json", snapshot.Timestamp.Format("20060102-150405"))
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)

		if err := backup.Encode(w, snapshot); err != nil {
			logrus.WithError(err).Error("Erro ao enviar backup")
		}
	}
}

func RestoreBackup(service backup.Backuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RestoreBackup")

		snapshot, err := backup.Decode(http.MaxBytesReader(w, r.Body, maxBackupSize))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		result, err := service.Restore(r.Context(), snapshot)
		if err != nil {
			logrus.WithError(err).Error("Erro ao restaurar backup")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
