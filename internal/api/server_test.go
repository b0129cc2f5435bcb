package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/social-metrics-api/internal/config"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/internal/usecases/account"
	"github.com/vfg2006/social-metrics-api/internal/usecases/charting"
	importmocks "github.com/vfg2006/social-metrics-api/internal/usecases/importing/mocks"
	updatemocks "github.com/vfg2006/social-metrics-api/internal/usecases/updating/mocks"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type testAPI struct {
	handler http.Handler
	repo    *mocks.MockAccountRepository
	imports *importmocks.MockImportService
	updates *updatemocks.MockUpdateService
}

func newTestAPI(t *testing.T) *testAPI {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)
	imports := importmocks.NewMockImportService(ctrl)
	updates := updatemocks.NewMockUpdateService(ctrl)

	cfg := &config.Config{
		Server: config.Server{SyncRequestsPerMinute: 100},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:4001"}},
	}

	handler := NewHandler(cfg, Services{
		Accounts: account.NewService(repo),
		Charts: charting.NewServiceWithColor(repo, config.Chart{Size: 300}, func() string {
			return "#123456"
		}),
		Import: imports,
		Update: updates,
	})

	return &testAPI{handler: handler, repo: repo, imports: imports, updates: updates}
}

func (a *testAPI) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

func seededAccounts() []*domain.Account {
	return []*domain.Account{
		{Name: "Coletivo A", ExternalID: strPtr("coletivoa"), Link: strPtr("https://facebook.com/coletivoa")},
		{Name: "Coletivo B", ExternalID: strPtr("coletivob"), Link: strPtr("https://facebook.com/coletivob")},
		{Name: "Coletivo C"},
	}
}

func accountWithHistory() *domain.Account {
	return &domain.Account{
		Name:       "Coletivo A",
		ExternalID: strPtr("coletivoa"),
		Category:   "Movimentos",
		Link:       strPtr("https://facebook.com/coletivoa"),
		History: []domain.Sample{
			{
				Date:    time.Date(2018, time.January, 10, 0, 0, 0, 0, time.UTC),
				Metrics: map[string]*int64{"likes": int64Ptr(10), "followers": int64Ptr(5)},
			},
			{
				Date:    time.Date(2018, time.February, 10, 0, 0, 0, 0, time.UTC),
				Metrics: map[string]*int64{"likes": int64Ptr(42), "followers": int64Ptr(7)},
			},
		},
	}
}

func TestAPI_Index(t *testing.T) {
	a := newTestAPI(t)

	rec := a.get("/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	links := body["links"].([]any)
	require.Len(t, links, 4)
	first := links[0].(map[string]any)
	assert.Equal(t, "social-network-facebook", first["rel"])
	assert.Equal(t, "http://example.com/facebook", first["href"])
}

func TestAPI_ListAccounts(t *testing.T) {
	a := newTestAPI(t)
	facebook, _ := domain.PlatformByName("facebook")
	a.repo.EXPECT().ListAccounts(gomock.Any(), facebook).Return(seededAccounts(), nil)

	rec := a.get("/facebook")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["error"])
	assert.Len(t, body["accounts"], 3)

	imp := body["import"].(map[string]any)
	assert.Equal(t, "facebook.import", imp["rel"])
	assert.Equal(t, "http://example.com/facebook/import", imp["href"])

	accounts := body["accounts"].([]any)
	withoutID := accounts[2].(map[string]any)
	assert.Nil(t, withoutID["externalId"])
	assert.Empty(t, withoutID["links"])
}

func TestAPI_ListAccounts_DatabaseError(t *testing.T) {
	a := newTestAPI(t)
	a.repo.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão perdida"))

	rec := a.get("/instagram")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "ACC_002", decode(t, rec)["errorCode"])
}

func TestAPI_GetAccount(t *testing.T) {
	a := newTestAPI(t)
	a.repo.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), "coletivoa").Return(accountWithHistory(), nil)

	rec := a.get("/facebook/coletivoa")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Coletivo A", body["name"])
	assert.Equal(t, "Movimentos", body["category"])
	assert.Equal(t, "https://facebook.com/coletivoa", body["link"])
	assert.Len(t, body["history"], 2)
	// latest + uma por métrica
	assert.Len(t, body["links"], 3)
}

func TestAPI_GetAccount_NotFound(t *testing.T) {
	a := newTestAPI(t)
	a.repo.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), "ninguem").Return(nil, nil)

	rec := a.get("/facebook/ninguem")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "ACC_001", body["errorCode"])
}

func TestAPI_UnknownPlatform(t *testing.T) {
	a := newTestAPI(t)

	rec := a.get("/orkut")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "QRY_003", decode(t, rec)["errorCode"])
}

func TestAPI_Queries(t *testing.T) {
	a := newTestAPI(t)

	rec := a.get("/youtube/queries")

	require.Equal(t, http.StatusOK, rec.Code)
	var queries []domain.Metric
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &queries))
	require.Len(t, queries, 3)
	assert.Equal(t, "subscribers", queries[0].Key)
	assert.Equal(t, "Inscritos", queries[0].Label)
}

func TestAPI_Latest(t *testing.T) {
	a := newTestAPI(t)
	a.repo.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), "coletivoa").Return(accountWithHistory(), nil)

	rec := a.get("/facebook/latest/coletivoa")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp domain.LatestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]int64{"likes": 42, "followers": 7}, resp.Latest)
}

func TestAPI_AccountChart(t *testing.T) {
	t.Run("Configuração em JSON", func(t *testing.T) {
		a := newTestAPI(t)
		a.repo.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), "coletivoa").Return(accountWithHistory(), nil)

		rec := a.get("/facebook/coletivoa/likes?format=json")

		require.Equal(t, http.StatusOK, rec.Code)
		var cfg domain.ChartConfig
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
		assert.Equal(t, "line", cfg.Type)
		require.Len(t, cfg.Data.Datasets, 1)
		assert.Equal(t, "Coletivo A (https://facebook.com/coletivoa)", cfg.Data.Datasets[0].Label)
	})

	t.Run("Imagem PNG por padrão", func(t *testing.T) {
		a := newTestAPI(t)
		a.repo.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), "coletivoa").Return(accountWithHistory(), nil)

		rec := a.get("/facebook/coletivoa/likes")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes()[:4])
	})

	t.Run("Característica inexistente", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.get("/facebook/coletivoa/subscribers")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "QRY_001", decode(t, rec)["errorCode"])
	})
}

func TestAPI_CompareChart(t *testing.T) {
	t.Run("Compara os atores informados", func(t *testing.T) {
		a := newTestAPI(t)
		other := accountWithHistory()
		other.Name = "Coletivo B"
		other.ExternalID = strPtr("coletivob")
		a.repo.EXPECT().FindByExternalIDs(gomock.Any(), gomock.Any(), []string{"coletivoa", "coletivob"}).
			Return([]*domain.Account{accountWithHistory(), other}, nil)

		rec := a.get("/facebook/compare/followers?format=json&actors=coletivoa,%20coletivob")

		require.Equal(t, http.StatusOK, rec.Code)
		var cfg domain.ChartConfig
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
		assert.Len(t, cfg.Data.Datasets, 2)
	})

	t.Run("Sem atores", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.get("/facebook/compare/followers?actors=,")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "QRY_002", decode(t, rec)["errorCode"])
	})
}

func TestAPI_LatestPie(t *testing.T) {
	a := newTestAPI(t)
	a.repo.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), "coletivoa").Return(accountWithHistory(), nil)

	rec := a.get("/facebook/latest/coletivoa/pie?format=json")

	require.Equal(t, http.StatusOK, rec.Code)
	var cfg domain.PieConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, "pie", cfg.Type)
	assert.Len(t, cfg.Slices, 2)
}

func TestAPI_Import(t *testing.T) {
	t.Run("Sem código redireciona para o consentimento", func(t *testing.T) {
		a := newTestAPI(t)
		a.imports.EXPECT().AuthURL(gomock.Any()).Return("https://accounts.google.com/o/oauth2/auth?state=x", nil)

		rec := a.get("/facebook/import")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=x", rec.Header().Get("Location"))
	})

	t.Run("Com código importa e volta para a listagem", func(t *testing.T) {
		a := newTestAPI(t)
		a.imports.EXPECT().Import(gomock.Any(), gomock.Any(), "codigo", "estado").
			Return(&domain.ImportReport{RunID: "run", Accounts: 3}, nil)

		rec := a.get("/twitter/import?code=codigo&state=estado")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/twitter", rec.Header().Get("Location"))
	})
}

func TestAPI_Update(t *testing.T) {
	t.Run("Rede social sem monitor", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.get("/facebook/update")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "QRY_003", decode(t, rec)["errorCode"])
	})

	t.Run("Atualização completa redireciona", func(t *testing.T) {
		a := newTestAPI(t)
		a.updates.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(&domain.UpdateReport{Platform: domain.PlatformTwitter, SamplesAdded: 4}, nil)

		rec := a.get("/twitter/update")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/twitter", rec.Header().Get("Location"))
	})

	t.Run("Falhas parciais são reportadas", func(t *testing.T) {
		a := newTestAPI(t)
		a.updates.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(&domain.UpdateReport{
				Platform: domain.PlatformYoutube,
				Failures: []domain.UpdateFailure{{Actor: "canal", Date: "2018-01-10", Error: "timeout"}},
			}, nil)

		rec := a.get("/youtube/update")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "UPS_002", body["errorCode"])
		details := body["details"].(map[string]any)
		assert.Len(t, details["failures"], 1)
	})
}

func TestAPI_Healthcheck(t *testing.T) {
	a := newTestAPI(t)

	rec := a.get("/healthcheck")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_CronWithoutScheduler(t *testing.T) {
	a := newTestAPI(t)

	rec := a.get("/cron/status")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "SRV_001", decode(t, rec)["errorCode"])
}
