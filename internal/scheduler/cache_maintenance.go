package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/grupo-onda/dashboard-api/internal/config"
	"github.com/grupo-onda/dashboard-api/internal/usecases/aggregating"
	"github.com/grupo-onda/dashboard-api/pkg/cache"
)

// CacheMaintenanceConfig representa a configuração dos jobs de manutenção
type CacheMaintenanceConfig struct {
	SweepIntervalMinutes int
	SweepEnabled         bool
	SheetRefreshCron     string
	SheetRefreshEnabled  bool
}

// CacheMaintenanceService agenda a varredura de entradas expiradas do cache e
// o aquecimento periódico da planilha remota.
type CacheMaintenanceService struct {
	scheduler *gocron.Scheduler
	config    CacheMaintenanceConfig
	cache     *cache.Cache
	sheets    aggregating.SheetFetcher
}

// NewCacheMaintenanceService cria o serviço de manutenção do cache
func NewCacheMaintenanceService(
	c *cache.Cache,
	sheets aggregating.SheetFetcher,
	appConfig *config.Config,
) *CacheMaintenanceService {
	maintenanceConfig := CacheMaintenanceConfig{
		SweepIntervalMinutes: appConfig.CacheSweep.IntervalMinutes,
		SweepEnabled:         appConfig.CacheSweep.Enabled,
		SheetRefreshCron:     appConfig.SheetRefresh.CronSchedule,
		SheetRefreshEnabled:  appConfig.SheetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"sweep_interval_minutes": maintenanceConfig.SweepIntervalMinutes,
		"sweep_enabled":          maintenanceConfig.SweepEnabled,
		"sheet_refresh_cron":     maintenanceConfig.SheetRefreshCron,
		"sheet_refresh_enabled":  maintenanceConfig.SheetRefreshEnabled,
	}).Info("Configuração da manutenção de cache carregada")

	return &CacheMaintenanceService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    maintenanceConfig,
		cache:     c,
		sheets:    sheets,
	}
}

// Start agenda os jobs habilitados e inicia o agendador
func (s *CacheMaintenanceService) Start(ctx context.Context) error {
	scheduled := false

	if s.config.SweepEnabled {
		interval := s.config.SweepIntervalMinutes
		if interval <= 0 {
			interval = 10
		}
		_, err := s.scheduler.Every(interval).Minutes().Do(func() {
			s.RunSweep()
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar a varredura do cache: %w", err)
		}
		scheduled = true
	} else {
		logrus.Info("Varredura do cache desabilitada por configuração")
	}

	if s.config.SheetRefreshEnabled && s.sheets != nil {
		_, err := s.scheduler.Cron(s.config.SheetRefreshCron).Do(func() {
			s.RunSheetRefresh(context.Background())
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar o refresh da planilha: %w", err)
		}
		scheduled = true
	}

	if !scheduled {
		return nil
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de manutenção de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSweep remove as entradas expiradas do cache imediatamente
func (s *CacheMaintenanceService) RunSweep() {
	removed := s.cache.ClearExpired()
	if removed > 0 {
		logrus.WithField("removed", removed).Info("Varredura do cache concluída")
	}
}

// RunSheetRefresh rebusca a planilha remota para manter a tabela aquecida
func (s *CacheMaintenanceService) RunSheetRefresh(ctx context.Context) {
	if s.sheets == nil {
		return
	}
	if err := s.sheets.Reload(ctx); err != nil {
		logrus.WithError(err).Warn("Erro no refresh agendado da planilha")
		return
	}
	logrus.Info("Refresh agendado da planilha concluído")
}

// Stop para o agendador imediatamente
func (s *CacheMaintenanceService) Stop() {
	s.scheduler.Stop()
}
