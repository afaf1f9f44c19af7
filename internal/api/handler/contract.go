package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/internal/usecases/contracting"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
)

type ContractTextRequest struct {
	Text string `json:"text"`
}

func ParseContract(service contracting.ContractReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContractTextRequest
		if err := decodeJSON(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		hints, err := service.Parse(req.Text)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, hints)
	}
}

// ApplyContract grava no cliente os valores extraídos do contrato
func ApplyContract(service contracting.ContractReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var hints domain.ContractHints
		if err := decodeJSON(w, r, &hints); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		client, err := service.ApplyToClient(clientID, hints)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}
