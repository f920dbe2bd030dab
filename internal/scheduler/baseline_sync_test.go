package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	dashboardmocks "github.com/vfg2006/campaign-metrics-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func TestBaselineSyncService_SyncPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	mockBaselineRepo := mocks.NewMockBaselineRepository(ctrl)
	mockDashboard := dashboardmocks.NewMockDashboarder(ctrl)

	service := &BaselineSyncService{
		recordRepo:       mockRecordRepo,
		baselineRepo:     mockBaselineRepo,
		dashboardService: mockDashboard,
		now:              time.Now,
	}

	ctx := context.Background()
	february := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setup     func()
		wantSaved int
		wantErr   bool
	}{
		{
			name: "gera um snapshot por empresa e canal",
			setup: func() {
				mockRecordRepo.EXPECT().ListCompanyChannels(ctx).Return([]domain.CompanyChannel{
					{CompanyID: "empresa-1", Channel: domain.ChannelGoogle},
					{CompanyID: "empresa-2", Channel: domain.ChannelFacebook},
				}, nil)

				for _, pair := range []domain.CompanyChannel{
					{CompanyID: "empresa-1", Channel: domain.ChannelGoogle},
					{CompanyID: "empresa-2", Channel: domain.ChannelFacebook},
				} {
					filters := domain.DashboardFilters{Channel: pair.Channel, PeriodType: domain.PeriodMonth, Year: 2024, Month: 2}
					aggregate := domain.NewDashboardAggregate(filters)
					aggregate.Values[domain.MetricROI] = 140
					aggregate.Averages[domain.MetricROI] = 95

					mockDashboard.EXPECT().GetDashboard(ctx, pair.CompanyID, filters).Return(aggregate, nil)
				}

				mockBaselineRepo.EXPECT().
					SaveOrUpdate(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, snapshot *domain.BaselineSnapshot) error {
						assert.Equal(t, "02-2024", snapshot.Period)
						assert.Equal(t, 95.0, snapshot.Averages[domain.MetricROI])
						assert.Equal(t, 140.0, snapshot.Values[domain.MetricROI])
						return nil
					}).
					Times(2)
			},
			wantSaved: 2,
		},
		{
			name: "falha de um par não interrompe os demais",
			setup: func() {
				mockRecordRepo.EXPECT().ListCompanyChannels(ctx).Return([]domain.CompanyChannel{
					{CompanyID: "empresa-1", Channel: domain.ChannelGoogle},
					{CompanyID: "empresa-2", Channel: domain.ChannelInstagram},
				}, nil)

				mockDashboard.EXPECT().
					GetDashboard(ctx, "empresa-1", gomock.Any()).
					Return(nil, errors.New("banco indisponível"))
				mockDashboard.EXPECT().
					GetDashboard(ctx, "empresa-2", gomock.Any()).
					Return(domain.NewDashboardAggregate(domain.DashboardFilters{}), nil)
				mockBaselineRepo.EXPECT().SaveOrUpdate(ctx, gomock.Any()).Return(nil)
			},
			wantSaved: 1,
		},
		{
			name: "sem empresas",
			setup: func() {
				mockRecordRepo.EXPECT().ListCompanyChannels(ctx).Return(nil, nil)
			},
			wantSaved: 0,
		},
		{
			name: "erro ao listar empresas",
			setup: func() {
				mockRecordRepo.EXPECT().ListCompanyChannels(ctx).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			saved, err := service.SyncPeriod(ctx, february)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, saved)
		})
	}
}

func TestBaselineSyncService_SyncUsesPreviousMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	mockBaselineRepo := mocks.NewMockBaselineRepository(ctrl)
	mockDashboard := dashboardmocks.NewMockDashboarder(ctrl)

	service := &BaselineSyncService{
		recordRepo:       mockRecordRepo,
		baselineRepo:     mockBaselineRepo,
		dashboardService: mockDashboard,
		now:              func() time.Time { return time.Date(2024, time.January, 1, 5, 0, 0, 0, time.UTC) },
	}

	ctx := context.Background()
	mockRecordRepo.EXPECT().ListCompanyChannels(ctx).Return([]domain.CompanyChannel{{CompanyID: "empresa-1", Channel: domain.ChannelGoogle}}, nil)
	mockDashboard.EXPECT().
		GetDashboard(ctx, "empresa-1", domain.DashboardFilters{Channel: domain.ChannelGoogle, PeriodType: domain.PeriodMonth, Year: 2023, Month: 12}).
		Return(domain.NewDashboardAggregate(domain.DashboardFilters{}), nil)
	mockBaselineRepo.EXPECT().SaveOrUpdate(ctx, gomock.Any()).Return(nil)

	service.syncBaselines(ctx)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 1, status["last_sync_snapshots"])
}

func TestBaselineSyncService_SingleFlight(t *testing.T) {
	service := &BaselineSyncService{now: time.Now}
	service.syncRunning = true

	assert.False(t, service.TriggerManualSync())

	// execução concorrente é ignorada sem tocar nos repositórios
	service.syncBaselines(context.Background())
	assert.True(t, service.GetStatus()["sync_running"].(bool))
}

func TestBaselineSyncService_TriggerManualSyncTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	release := make(chan struct{})

	// a primeira execução fica presa na listagem até o teste liberar
	mockRecordRepo.EXPECT().ListCompanyChannels(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]domain.CompanyChannel, error) {
			<-release
			return nil, nil
		}).Times(1)

	service := &BaselineSyncService{
		recordRepo: mockRecordRepo,
		now:        time.Now,
	}

	assert.True(t, service.TriggerManualSync())
	// a marca já vale antes da goroutine começar
	assert.True(t, service.GetStatus()["sync_running"].(bool))
	assert.False(t, service.TriggerManualSync())

	close(release)

	assert.Eventually(t, func() bool {
		return !service.GetStatus()["sync_running"].(bool)
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, 0, service.GetStatus()["last_sync_snapshots"])
}
