package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/internal/usecases/aggregating"
	"github.com/vfg2006/profitability-api/internal/usecases/authenticating"
	"github.com/vfg2006/profitability-api/internal/usecases/backup"
	"github.com/vfg2006/profitability-api/internal/usecases/configuring"
	"github.com/vfg2006/profitability-api/internal/usecases/contracting"
	"github.com/vfg2006/profitability-api/internal/usecases/importing"
	"github.com/vfg2006/profitability-api/internal/usecases/scoring"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
	"github.com/vfg2006/profitability-api/pkg/middleware"
)

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		auth         *fakeAuthenticator
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "login com sucesso",
			body:         `{"email":"ana@v4company.com"}`,
			auth:         &fakeAuthenticator{token: "token-123", user: &domain.User{Email: "ana@v4company.com", RoleID: domain.RoleViewer}},
			expectedCode: http.StatusOK,
		},
		{
			name: "domínio não permitido",
			body: `{"email":"ana@gmail.com"}`,
			auth: &fakeAuthenticator{err: authenticating.NewUserAuthError(
				authenticating.ErrEmailDomainNotAllowed, apiErrors.ErrEmailDomainNotAllowed, "ana@gmail.com", "")},
			expectedCode: http.StatusForbidden,
			expectedErr:  apiErrors.ErrEmailDomainNotAllowed,
		},
		{
			name:         "corpo inválido",
			body:         `{email`,
			auth:         &fakeAuthenticator{},
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body))

			Login(tt.auth).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeAPIError(t, rec).Code)
				return
			}

			var resp LoginResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "token-123", resp.Token)
			assert.Equal(t, "ana@v4company.com", resp.User.Email)
		})
	}
}

func TestGetMe(t *testing.T) {
	handler := GetMe(&fakeAuthenticator{})

	t.Run("sem usuário no contexto", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("usuário master", func(t *testing.T) {
		claims := &domain.Claims{UserEmail: "master@v4company.com", UserRoleID: domain.RoleMaster}
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var user domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.True(t, user.IsMaster)
		assert.Equal(t, "master@v4company.com", user.Email)
	})
}

func TestGetDashboard_RepassaFiltrosEOrdenacao(t *testing.T) {
	service := &fakeProfitability{summary: &domain.Summary{Dashboard: domain.DashboardSummary{TotalRevenue: 1000}}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/v1/dashboard?start_date=2025-01-01&end_date=2025-01-31&client_sort=revenue&client_order=asc&employee_sort=hours&category=Saber", nil)

	GetDashboard(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	query := service.lastQuery
	require.NotNil(t, query.Filters.StartDate)
	require.NotNil(t, query.Filters.EndDate)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), *query.Filters.StartDate)
	assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), *query.Filters.EndDate)
	assert.Equal(t, aggregating.ClientSortRevenue, query.ClientSort)
	assert.Equal(t, aggregating.SortAsc, query.ClientOrder)
	assert.Equal(t, aggregating.EmployeeSortHours, query.EmployeeSort)
	assert.Equal(t, aggregating.SortDesc, query.EmployeeOrder)
	assert.Equal(t, domain.CategorySaber, query.Category)

	var summary domain.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 1000.0, summary.Dashboard.TotalRevenue)
}

func TestGetDashboard_SemPeriodo(t *testing.T) {
	service := &fakeProfitability{summary: &domain.Summary{}}

	rec := httptest.NewRecorder()
	GetDashboard(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, service.lastQuery.Filters.StartDate)
	assert.Nil(t, service.lastQuery.Filters.EndDate)
}

func TestGetDashboard_DataInvalida(t *testing.T) {
	rec := httptest.NewRecorder()
	GetDashboard(&fakeProfitability{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?start_date=01/01/2025", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
}

func TestListEntries(t *testing.T) {
	service := &fakeProfitability{entries: []domain.TimeEntry{{ID: "e1", Executor: "Ana", Hours: 2}}}

	rec := httptest.NewRecorder()
	ListEntries(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/entries?start_date=2025-02-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.lastFilter.StartDate)
	assert.Nil(t, service.lastFilter.EndDate)

	var entries []domain.TimeEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "período inválido",
			err:            aggregating.NewProfitabilityError(aggregating.ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, "fim antes do início"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidPeriod,
		},
		{
			name:           "avaliação não encontrada",
			err:            scoring.NewClientHealthError(scoring.ErrEvaluationNotFound, apiErrors.ErrResourceNotFound, "c1", "2025-01"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrResourceNotFound,
		},
		{
			name:           "configuração inválida",
			err:            configuring.NewConfigError(configuring.ErrInvalidConfig, apiErrors.ErrMissingRequiredData, "", "nome obrigatório"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:           "formato não suportado",
			err:            importing.NewImportError(importing.ErrUnsupportedFormat, apiErrors.ErrInvalidFormat, "dados.pdf", ""),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "contrato vazio",
			err:            contracting.NewContractError(contracting.ErrEmptyContract, apiErrors.ErrMissingRequiredData, "", ""),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:           "token expirado",
			err:            authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:           "falha no backup",
			err:            backup.NewBackupError(backup.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "conexão perdida"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
		},
		{
			name:           "erro desconhecido",
			err:            assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestUpdateClient_UsaIDDaURL(t *testing.T) {
	service := &fakeConfigurator{}
	rt := serveRoute(http.MethodPut, "/v1/clients/:id", UpdateClient(service))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/clients/c-42", strings.NewReader(`{"name":"Padaria","default_fee":5000}`))
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c-42", service.lastID)
	assert.Equal(t, "Padaria", service.lastClient.Name)
	assert.Equal(t, 5000.0, service.lastClient.DefaultFee)
}

func TestUpdateClient_NaoEncontrado(t *testing.T) {
	service := &fakeConfigurator{err: configuring.NewConfigError(configuring.ErrClientNotFound, apiErrors.ErrResourceNotFound, "c-1", nil)}
	rt := serveRoute(http.MethodPut, "/v1/clients/:id", UpdateClient(service))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/clients/c-1", strings.NewReader(`{"name":"X"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateClient(t *testing.T) {
	service := &fakeConfigurator{}

	rec := httptest.NewRecorder()
	CreateClient(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/clients", strings.NewReader(`{"name":"Loja Centro","category":"Ter"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.CategoryTer, service.lastClient.Category)
}

func TestSaveClientHealth_ClienteDaURLPrevalece(t *testing.T) {
	service := &fakeHealthScorer{}
	rt := serveRoute(http.MethodPut, "/v1/clients/:id/health", SaveClientHealth(service))

	rec := httptest.NewRecorder()
	body := `{"client_id":"outro","month_key":"2025-01","checkin":"semanal"}`
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/clients/c-1/health", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.lastInput)
	assert.Equal(t, "c-1", service.lastInput.ClientID)
	assert.Equal(t, domain.MonthKey("2025-01"), service.lastInput.MonthKey)
}

func TestListHealthScores(t *testing.T) {
	service := &fakeHealthScorer{scores: []domain.HealthScoreResult{
		{ClientID: "c1", Flag: domain.FlagBlack},
		{ClientID: "c2", Flag: domain.FlagRed},
		{ClientID: "c3", Flag: domain.FlagGreen},
	}}

	rec := httptest.NewRecorder()
	ListHealthScores(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health?month=2025-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.MonthKey("2025-01"), service.lastMonth)

	var resp HealthListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Scores, 3)
	assert.Equal(t, 1, resp.ByFlag[domain.FlagBlack])
	assert.Equal(t, 1, resp.ByFlag[domain.FlagRed])
	assert.Equal(t, 0, resp.ByFlag[domain.FlagYellow])
}

func TestListHealthScores_MesInvalido(t *testing.T) {
	service := &fakeHealthScorer{err: scoring.NewHealthError(scoring.ErrInvalidMonth, apiErrors.ErrInvalidPeriod, "2025-13")}

	rec := httptest.NewRecorder()
	ListHealthScores(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health?month=2025-13", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidPeriod, decodeAPIError(t, rec).Code)
}

func TestGetClientHealth(t *testing.T) {
	service := &fakeHealthScorer{input: &domain.HealthInput{ClientID: "c1", MonthKey: "2025-01"}}
	rt := serveRoute(http.MethodGet, "/v1/clients/:id/health", GetClientHealth(service))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/clients/c1/health?month=2025-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ClientHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "c1", resp.Input.ClientID)
	assert.Equal(t, "c1", resp.Score.ClientID)
	assert.Equal(t, domain.MonthKey("2025-01"), resp.Score.MonthKey)
}

func TestApplyContract(t *testing.T) {
	rt := serveRoute(http.MethodPost, "/v1/clients/:id/contract", ApplyContract(&fakeContractReader{}))

	rec := httptest.NewRecorder()
	body := `{"recurring_fee":6602.01,"one_time_fee":27735}`
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/clients/c-9/contract", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var client domain.ClientConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &client))
	assert.Equal(t, "c-9", client.ID)
	assert.Equal(t, 6602.01, client.DefaultFee)
	assert.Equal(t, 27735.0, client.OneTimeFee)
}

func TestParseContract_TextoVazio(t *testing.T) {
	rec := httptest.NewRecorder()
	ParseContract(&fakeContractReader{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/contracts/parse", strings.NewReader(`{"text":"  "}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
}

func TestImportEntries(t *testing.T) {
	t.Run("arquivo enviado", func(t *testing.T) {
		service := &fakeImporter{result: &domain.ImportResult{Imported: 2, NewClients: []string{}, NewEmployees: []string{}}}

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", "apontamentos.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte("Executor;Workspace\n"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/entries/import", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()

		ImportEntries(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "apontamentos.csv", service.lastName)
		assert.Equal(t, "Executor;Workspace\n", service.lastContent)

		var result domain.ImportResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 2, result.Imported)
	})

	t.Run("sem o campo file", func(t *testing.T) {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		require.NoError(t, writer.WriteField("outro", "valor"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/entries/import", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()

		ImportEntries(&fakeImporter{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})
}

func TestExportBackup(t *testing.T) {
	service := &fakeBackuper{snapshot: &domain.SystemBackup{
		Version:   domain.BackupVersion,
		Timestamp: time.Date(2025, time.March, 4, 10, 30, 0, 0, time.UTC),
		Clients:   []domain.ClientConfig{{ID: "c1", Name: "Padaria"}},
	}}

	rec := httptest.NewRecorder()
	ExportBackup(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/backup", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="backup-20250304-103000.json"`, rec.Header().Get("Content-Disposition"))

	decoded, err := backup.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Padaria", decoded.Clients[0].Name)
}

func TestRestoreBackup(t *testing.T) {
	t.Run("restaura o snapshot", func(t *testing.T) {
		service := &fakeBackuper{}
		body := `{"version":"1.0","clients":[{"id":"c1","name":"Padaria"}]}`

		rec := httptest.NewRecorder()
		RestoreBackup(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/backup/restore", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, service.restored)
		assert.Equal(t, "1.0", service.restored.Version)
	})

	t.Run("json inválido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RestoreBackup(&fakeBackuper{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/backup/restore", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		cronType       string
		expectedStatus int
		backupRuns     int
		digestRuns     int
	}{
		{name: "backup", cronType: CronJobTypeBackup, expectedStatus: http.StatusAccepted, backupRuns: 1},
		{name: "resumo de saúde", cronType: CronJobTypeHealthDigest, expectedStatus: http.StatusAccepted, digestRuns: 1},
		{name: "todas", cronType: CronJobTypeAll, expectedStatus: http.StatusAccepted, backupRuns: 1, digestRuns: 1},
		{name: "tipo inválido", cronType: "meta", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backupJob := &fakeCronJob{}
			digestJob := &fakeCronJob{}
			services := CronJobServices{
				CronJobTypeBackup:       backupJob,
				CronJobTypeHealthDigest: digestJob,
			}
			rt := serveRoute(http.MethodPost, "/v1/cron/:type/run", RunCronJob(services))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.backupRuns, backupJob.triggers)
			assert.Equal(t, tt.digestRuns, digestJob.triggers)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{
		CronJobTypeBackup:       &fakeCronJob{status: map[string]any{"enabled": true}},
		CronJobTypeHealthDigest: &fakeCronJob{status: map[string]any{"enabled": false}},
	}

	rec := httptest.NewRecorder()
	GetCronStatus(services).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, true, status[CronJobTypeBackup]["enabled"])
	assert.Equal(t, false, status[CronJobTypeHealthDigest]["enabled"])
}

func TestMetrics(t *testing.T) {
	profitability := &fakeProfitability{summary: &domain.Summary{
		Clients: []domain.ClientSummary{{ID: "c1", Name: "Padaria", GrossProfit: 1200.5}},
		Dashboard: domain.DashboardSummary{
			TotalRevenue:      5000,
			TotalCost:         3799.5,
			GrossProfit:       1200.5,
			RevenueByCategory: map[domain.ClientCategory]float64{domain.CategoryExecutar: 5000},
		},
	}}
	healthScorer := &fakeHealthScorer{scores: []domain.HealthScoreResult{
		{ClientID: "c1", Flag: domain.FlagRed},
		{ClientID: "c2", Flag: domain.FlagRed},
	}}

	rec := httptest.NewRecorder()
	Metrics(profitability, healthScorer).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, families["profitability_revenue"].GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, 1200.5, families["profitability_client_gross_profit"].GetMetric()[0].GetGauge().GetValue())

	flags := map[string]float64{}
	for _, m := range families["profitability_health_clients"].GetMetric() {
		flags[m.GetLabel()[0].GetValue()] = m.GetGauge().GetValue()
	}
	assert.Equal(t, 2.0, flags[string(domain.FlagRed)])
	assert.Equal(t, 0.0, flags[string(domain.FlagGreen)])
}

func TestBuildMetricFamilies_SemSaude(t *testing.T) {
	families := BuildMetricFamilies(&domain.Summary{}, nil)

	for _, family := range families {
		assert.NotEqual(t, "profitability_health_clients", family.GetName())
		assert.NotEqual(t, "profitability_client_gross_profit", family.GetName())
	}
}

type fakeContractReader struct{}

func (fakeContractReader) Parse(text string) (*domain.ContractHints, error) {
	if strings.TrimSpace(text) == "" {
		return nil, contracting.NewContractError(contracting.ErrEmptyContract, apiErrors.ErrMissingRequiredData, "", "")
	}
	hints := contracting.ParseContract(text)
	return &hints, nil
}

func (fakeContractReader) ApplyToClient(clientID string, hints domain.ContractHints) (*domain.ClientConfig, error) {
	return &domain.ClientConfig{ID: clientID, DefaultFee: hints.RecurringFee, OneTimeFee: hints.OneTimeFee}, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(_ context.Context) error { return f.err }

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name           string
		db             Pinger
		expectedStatus int
		expectedBody   string
	}{
		{name: "sem banco configurado", db: nil, expectedStatus: http.StatusOK, expectedBody: "ok"},
		{name: "banco respondendo", db: fakePinger{}, expectedStatus: http.StatusOK, expectedBody: "ok"},
		{name: "banco fora do ar", db: fakePinger{err: assert.AnError}, expectedStatus: http.StatusServiceUnavailable, expectedBody: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp HealthcheckResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp.Status)
		})
	}
}
