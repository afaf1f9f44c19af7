package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/usecases/importing"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
)

const maxUploadSize = 32 << 20

// ImportEntries recebe a planilha no campo multipart "file"
func ImportEntries(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportEntries")

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o arquivo enviado", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo não fornecido no campo 'file'", nil)
			return
		}
		defer file.Close()

		result, err := service.Import(r.Context(), header.Filename, file)
		if err != nil {
			logrus.WithError(err).WithField("filename", header.Filename).Error("Erro ao importar apontamentos")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
