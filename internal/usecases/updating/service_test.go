package updating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	monitormocks "github.com/vfg2006/social-metrics-api/infrastructure/integrator/monitor/mocks"
	"github.com/vfg2006/social-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"github.com/vfg2006/social-metrics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func date(month time.Month) time.Time {
	return time.Date(2018, month, 1, 0, 0, 0, 0, time.UTC)
}

func countSample(d time.Time, followers int64) *domain.Sample {
	return &domain.Sample{Date: d, Metrics: map[string]*int64{"followers": &followers}}
}

func TestService_Update(t *testing.T) {
	twitter, _ := domain.PlatformByName("twitter")
	youtube, _ := domain.PlatformByName("youtube")

	t.Run("Completa datas ausentes e cria atores novos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAccountRepository(ctrl)
		monitor := monitormocks.NewMockMonitorIntegrator(ctrl)
		service := NewService(repo, monitor, 2)

		followers := int64(10)
		stored := &domain.Account{
			Name: "Perfil A",
			History: []domain.Sample{
				{Date: date(time.February), Metrics: map[string]*int64{"followers": &followers}},
			},
		}
		novo := "Perfil B"

		monitor.EXPECT().Actors(gomock.Any(), domain.PlatformTwitter).Return([]string{"Perfil A", "Perfil B"}, nil)
		monitor.EXPECT().Dates(gomock.Any(), domain.PlatformTwitter).
			Return([]time.Time{date(time.January), date(time.February), date(time.March)}, nil)
		repo.EXPECT().FindAll(gomock.Any(), twitter).Return([]*domain.Account{stored}, nil)
		monitor.EXPECT().NewAccount(domain.PlatformTwitter, "Perfil B").
			Return(&domain.Account{Name: "Perfil B", ExternalID: &novo, History: []domain.Sample{}})

		monitor.EXPECT().Sample(gomock.Any(), domain.PlatformTwitter, "Perfil A", date(time.January)).Return(countSample(date(time.January), 5), nil)
		monitor.EXPECT().Sample(gomock.Any(), domain.PlatformTwitter, "Perfil A", date(time.March)).Return(countSample(date(time.March), 15), nil)
		monitor.EXPECT().Sample(gomock.Any(), domain.PlatformTwitter, "Perfil B", date(time.January)).Return(countSample(date(time.January), 1), nil)
		monitor.EXPECT().Sample(gomock.Any(), domain.PlatformTwitter, "Perfil B", date(time.February)).Return(nil, errors.New("404"))
		monitor.EXPECT().Sample(gomock.Any(), domain.PlatformTwitter, "Perfil B", date(time.March)).Return(countSample(date(time.March), 3), nil)

		repo.EXPECT().SaveAll(gomock.Any(), twitter, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p domain.Platform, accounts []*domain.Account) error {
				require.Len(t, accounts, 2)

				a := accounts[0]
				require.Len(t, a.History, 3)
				assert.Equal(t, date(time.January), a.History[0].Date)
				assert.Equal(t, date(time.February), a.History[1].Date)
				assert.Equal(t, date(time.March), a.History[2].Date)

				b := accounts[1]
				require.Len(t, b.History, 2)
				assert.Equal(t, date(time.January), b.History[0].Date)
				assert.Equal(t, date(time.March), b.History[1].Date)
				return nil
			})

		report, err := service.Update(context.Background(), twitter)
		require.NoError(t, err)

		assert.Equal(t, 2, report.Actors)
		assert.Equal(t, 1, report.NewAccounts)
		assert.Equal(t, 4, report.SamplesAdded)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, "Perfil B", report.Failures[0].Actor)
		assert.Equal(t, "2018-02-01", report.Failures[0].Date)
	})

	t.Run("Canal novo do youtube recebe identificador pelo link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAccountRepository(ctrl)
		monitor := monitormocks.NewMockMonitorIntegrator(ctrl)
		service := NewService(repo, monitor, 2)

		link := "https://youtube.com/channel/UCnovo"

		monitor.EXPECT().Actors(gomock.Any(), domain.PlatformYoutube).Return([]string{"UCnovo"}, nil)
		monitor.EXPECT().Dates(gomock.Any(), domain.PlatformYoutube).Return([]time.Time{}, nil)
		repo.EXPECT().FindAll(gomock.Any(), youtube).Return(nil, nil)
		monitor.EXPECT().NewAccount(domain.PlatformYoutube, "UCnovo").
			Return(&domain.Account{Name: "UCnovo", Link: &link, History: []domain.Sample{}})
		repo.EXPECT().SaveAll(gomock.Any(), youtube, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p domain.Platform, accounts []*domain.Account) error {
				require.Len(t, accounts, 1)
				assert.Equal(t, "UCnovo", accounts[0].ExternalIDValue())
				return nil
			})

		report, err := service.Update(context.Background(), youtube)
		require.NoError(t, err)
		assert.Equal(t, 1, report.NewAccounts)
		assert.Empty(t, report.Failures)
	})

	t.Run("Plataforma sem monitor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(mocks.NewMockAccountRepository(ctrl), monitormocks.NewMockMonitorIntegrator(ctrl), 2)
		facebook, _ := domain.PlatformByName("facebook")

		_, err := service.Update(context.Background(), facebook)

		var updateErr *UpdateError
		require.ErrorAs(t, err, &updateErr)
		assert.ErrorIs(t, err, ErrNotUpdatable)
		assert.Equal(t, apiErrors.ErrUnknownPlatform, updateErr.Code)
	})

	t.Run("Falha ao listar atores interrompe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monitor := monitormocks.NewMockMonitorIntegrator(ctrl)
		service := NewService(mocks.NewMockAccountRepository(ctrl), monitor, 2)

		monitor.EXPECT().Actors(gomock.Any(), domain.PlatformTwitter).Return(nil, errors.New("connection refused"))

		_, err := service.Update(context.Background(), twitter)

		var updateErr *UpdateError
		require.ErrorAs(t, err, &updateErr)
		assert.ErrorIs(t, err, ErrMonitorFetch)
		assert.Equal(t, apiErrors.ErrMonitor, updateErr.Code)
	})

	t.Run("Falha ao listar datas interrompe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monitor := monitormocks.NewMockMonitorIntegrator(ctrl)
		service := NewService(mocks.NewMockAccountRepository(ctrl), monitor, 2)

		monitor.EXPECT().Actors(gomock.Any(), domain.PlatformTwitter).Return([]string{"A"}, nil)
		monitor.EXPECT().Dates(gomock.Any(), domain.PlatformTwitter).Return(nil, errors.New("timeout"))

		_, err := service.Update(context.Background(), twitter)
		assert.ErrorIs(t, err, ErrMonitorFetch)
	})

	t.Run("Falha ao salvar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAccountRepository(ctrl)
		monitor := monitormocks.NewMockMonitorIntegrator(ctrl)
		service := NewService(repo, monitor, 2)

		monitor.EXPECT().Actors(gomock.Any(), domain.PlatformTwitter).Return([]string{}, nil)
		monitor.EXPECT().Dates(gomock.Any(), domain.PlatformTwitter).Return([]time.Time{}, nil)
		repo.EXPECT().FindAll(gomock.Any(), twitter).Return(nil, nil)
		repo.EXPECT().SaveAll(gomock.Any(), twitter, gomock.Any()).Return(errors.New("timeout"))

		_, err := service.Update(context.Background(), twitter)

		var updateErr *UpdateError
		require.ErrorAs(t, err, &updateErr)
		assert.Equal(t, apiErrors.ErrImport, updateErr.Code)
	})
}

func TestService_Update_RepeatedActor(t *testing.T) {
	twitter, _ := domain.PlatformByName("twitter")

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)
	monitor := monitormocks.NewMockMonitorIntegrator(ctrl)
	service := NewService(repo, monitor, 4)

	stored := &domain.Account{Name: "Perfil A", History: []domain.Sample{}}

	monitor.EXPECT().Actors(gomock.Any(), domain.PlatformTwitter).Return([]string{"Perfil A", "Perfil A"}, nil)
	monitor.EXPECT().Dates(gomock.Any(), domain.PlatformTwitter).
		Return([]time.Time{date(time.January), date(time.February)}, nil)
	repo.EXPECT().FindAll(gomock.Any(), twitter).Return([]*domain.Account{stored}, nil)

	monitor.EXPECT().Sample(gomock.Any(), domain.PlatformTwitter, "Perfil A", date(time.January)).
		Return(countSample(date(time.January), 5), nil).Times(1)
	monitor.EXPECT().Sample(gomock.Any(), domain.PlatformTwitter, "Perfil A", date(time.February)).
		Return(countSample(date(time.February), 6), nil).Times(1)

	repo.EXPECT().SaveAll(gomock.Any(), twitter, gomock.Any()).
		DoAndReturn(func(ctx context.Context, p domain.Platform, accounts []*domain.Account) error {
			require.Len(t, accounts, 1)
			require.Len(t, accounts[0].History, 2)
			assert.Equal(t, date(time.January), accounts[0].History[0].Date)
			assert.Equal(t, date(time.February), accounts[0].History[1].Date)
			return nil
		})

	report, err := service.Update(context.Background(), twitter)
	require.NoError(t, err)

	assert.Equal(t, 2, report.SamplesAdded)
	assert.Equal(t, 1, report.SkippedActors)
}

func TestService_Update_YoutubeAccountWithoutLink(t *testing.T) {
	youtube, _ := domain.PlatformByName("youtube")

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)
	monitor := monitormocks.NewMockMonitorIntegrator(ctrl)
	service := NewService(repo, monitor, 2)

	link := "https://youtube.com/channel/canalcomlink"
	withLink := &domain.Account{Name: "canalcomlink", Link: &link, History: []domain.Sample{}}
	withoutLink := &domain.Account{Name: "Canal Sem Link", History: []domain.Sample{}}

	monitor.EXPECT().Actors(gomock.Any(), domain.PlatformYoutube).Return([]string{"canalcomlink", "Canal Sem Link"}, nil)
	monitor.EXPECT().Dates(gomock.Any(), domain.PlatformYoutube).Return([]time.Time{date(time.March)}, nil)
	repo.EXPECT().FindAll(gomock.Any(), youtube).Return([]*domain.Account{withLink, withoutLink}, nil)

	// nenhuma consulta para a conta sem link
	monitor.EXPECT().Sample(gomock.Any(), domain.PlatformYoutube, "canalcomlink", date(time.March)).
		Return(countSample(date(time.March), 50), nil)

	repo.EXPECT().SaveAll(gomock.Any(), youtube, gomock.Any()).
		DoAndReturn(func(ctx context.Context, p domain.Platform, accounts []*domain.Account) error {
			require.Len(t, accounts, 1)
			assert.Equal(t, "canalcomlink", accounts[0].Name)
			return nil
		})

	report, err := service.Update(context.Background(), youtube)
	require.NoError(t, err)

	assert.Equal(t, 1, report.SamplesAdded)
	assert.Equal(t, 1, report.SkippedActors)
	assert.Empty(t, withoutLink.History)
}

func TestService_Update_Canceled(t *testing.T) {
	twitter, _ := domain.PlatformByName("twitter")

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)
	monitor := monitormocks.NewMockMonitorIntegrator(ctrl)
	service := NewService(repo, monitor, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	monitor.EXPECT().Actors(gomock.Any(), domain.PlatformTwitter).Return([]string{"Perfil A"}, nil)
	monitor.EXPECT().Dates(gomock.Any(), domain.PlatformTwitter).
		Return([]time.Time{date(time.January), date(time.February), date(time.March)}, nil)
	repo.EXPECT().FindAll(gomock.Any(), twitter).Return([]*domain.Account{{Name: "Perfil A"}}, nil)
	// nem Sample nem SaveAll devem ser chamados

	report, err := service.Update(ctx, twitter)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrCanceled)
	var updateErr *UpdateError
	require.True(t, errors.As(err, &updateErr))
	assert.Equal(t, apiErrors.ErrInternalServer, updateErr.Code)
}
