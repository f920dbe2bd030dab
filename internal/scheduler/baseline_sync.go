package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

const maxConcurrentJobs = 3

// BaselineSyncConfig representa a configuração do agendador de snapshots
type BaselineSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// BaselineSyncService calcula, no início de cada mês, o dashboard do mês anterior
// de cada empresa e canal e grava os valores e médias como snapshot.
type BaselineSyncService struct {
	scheduler           *gocron.Scheduler
	config              BaselineSyncConfig
	recordRepo          repository.CampaignRecordRepository
	baselineRepo        repository.BaselineRepository
	dashboardService    dashboarding.Dashboarder
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSnapshots   int
}

func NewBaselineSyncService(
	recordRepo repository.CampaignRecordRepository,
	baselineRepo repository.BaselineRepository,
	dashboardService dashboarding.Dashboarder,
	appConfig *config.Config,
) *BaselineSyncService {
	syncConfig := BaselineSyncConfig{
		CronSchedule: appConfig.BaselineSync.CronSchedule,
		SyncEnabled:  appConfig.BaselineSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de médias carregada")

	return &BaselineSyncService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           syncConfig,
		recordRepo:       recordRepo,
		baselineRepo:     baselineRepo,
		dashboardService: dashboardService,
		now:              time.Now,
	}
}

// Start agenda a sincronização e para o agendador quando o contexto for cancelado
func (s *BaselineSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de médias desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de médias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncBaselines(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de médias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de médias")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a sincronização em background.
// Retorna false quando já existe uma execução em andamento.
func (s *BaselineSyncService) TriggerManualSync() bool {
	if !s.tryStartSync() {
		logrus.Info("Sincronização de médias já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de médias")
	go s.runSync(context.Background())
	return true
}

func (s *BaselineSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_snapshots":    s.lastSyncSnapshots,
	}
}

func (s *BaselineSyncService) syncBaselines(ctx context.Context) {
	if !s.tryStartSync() {
		logrus.Info("Sincronização de médias já em andamento, ignorando")
		return
	}

	s.runSync(ctx)
}

// tryStartSync marca a execução como iniciada; false quando outra já está em andamento
func (s *BaselineSyncService) tryStartSync() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

// runSync executa uma sincronização já marcada por tryStartSync e libera a marca ao final
func (s *BaselineSyncService) runSync(ctx context.Context) {
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	now := s.now()
	previousMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	saved, err := s.SyncPeriod(ctx, previousMonth)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização de médias")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSyncSnapshots = saved
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(now).String(),
		"period":    utils.Period(previousMonth),
		"snapshots": saved,
	}).Info("Sincronização de médias concluída")
}

// SyncPeriod grava o snapshot do mês informado para cada empresa x canal com registros.
// Falhas individuais são logadas e não interrompem os demais pares.
func (s *BaselineSyncService) SyncPeriod(ctx context.Context, month time.Time) (int, error) {
	pairs, err := s.recordRepo.ListCompanyChannels(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao listar empresas: %w", err)
	}

	if len(pairs) == 0 {
		logrus.Info("Nenhuma empresa com registros para sincronização de médias")
		return 0, nil
	}

	var (
		wg        sync.WaitGroup
		savedMu   sync.Mutex
		saved     int
		semaphore = make(chan struct{}, maxConcurrentJobs)
	)

	for _, pair := range pairs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(pair domain.CompanyChannel) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.syncPair(ctx, pair, month); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"company_id": pair.CompanyID,
					"channel":    pair.Channel,
					"period":     utils.Period(month),
				}).Error("Erro ao gerar snapshot de médias")
				return
			}

			savedMu.Lock()
			saved++
			savedMu.Unlock()
		}(pair)
	}

	wg.Wait()

	return saved, nil
}

func (s *BaselineSyncService) syncPair(ctx context.Context, pair domain.CompanyChannel, month time.Time) error {
	aggregate, err := s.dashboardService.GetDashboard(ctx, pair.CompanyID, domain.DashboardFilters{
		Channel:    pair.Channel,
		PeriodType: domain.PeriodMonth,
		Year:       month.Year(),
		Month:      int(month.Month()),
	})
	if err != nil {
		return fmt.Errorf("erro ao calcular dashboard: %w", err)
	}

	snapshot := &domain.BaselineSnapshot{
		CompanyID: pair.CompanyID,
		Channel:   pair.Channel,
		Period:    utils.Period(month),
		Averages:  aggregate.Averages,
		Values:    aggregate.Values,
	}

	if err := s.baselineRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	return nil
}
