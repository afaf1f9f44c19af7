package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/config"
	"github.com/vfg2006/profitability-api/internal/usecases/backup"
)

const (
	backupFilePrefix = "backup-"
	backupFileLayout = "20060102-150405"
)

// BackupSyncConfig representa a configuração do agendador de snapshots
type BackupSyncConfig struct {
	CronSchedule string
	Directory    string
	Retain       int
	SyncEnabled  bool
}

// BackupSyncService grava periodicamente um snapshot completo do sistema em disco
type BackupSyncService struct {
	scheduler           *gocron.Scheduler
	config              BackupSyncConfig
	backupService       backup.Backuper
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastFile            string
	now                 func() time.Time
}

func NewBackupSyncService(backupService backup.Backuper, appConfig *config.Config) *BackupSyncService {
	syncConfig := BackupSyncConfig{
		CronSchedule: appConfig.BackupSync.CronSchedule,
		Directory:    appConfig.BackupSync.Directory,
		Retain:       appConfig.BackupSync.Retain,
		SyncEnabled:  appConfig.BackupSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"directory":     syncConfig.Directory,
		"retain":        syncConfig.Retain,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de backup carregada")

	return &BackupSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        syncConfig,
		backupService: backupService,
		now:           time.Now,
	}
}

// Start inicia o agendador
func (s *BackupSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Backup agendado desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de backup")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runBackup(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backup: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de backup")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *BackupSyncService) runBackup(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Backup já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	path, err := s.writeSnapshot(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar backup agendado")
		return
	}

	removed, err := s.prune()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao remover backups antigos")
	}

	s.syncMutex.Lock()
	s.lastFile = path
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"file":     path,
		"removed":  removed,
		"duration": time.Since(startTime).String(),
	}).Info("Backup agendado concluído")
}

func (s *BackupSyncService) writeSnapshot(ctx context.Context) (string, error) {
	snapshot, err := s.backupService.Export(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.config.Directory, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório de backup: %w", err)
	}

	name := backupFilePrefix + snapshot.Timestamp.Format(backupFileLayout) + ".json"
	path := filepath.Join(s.config.Directory, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("erro ao criar arquivo de backup: %w", err)
	}
	defer file.Close()

	if err := backup.Encode(file, snapshot); err != nil {
		return "", fmt.Errorf("erro ao serializar backup: %w", err)
	}

	return path, nil
}

// prune mantém apenas os snapshots mais recentes; Retain <= 0 mantém todos
func (s *BackupSyncService) prune() (int, error) {
	if s.config.Retain <= 0 {
		return 0, nil
	}

	files, err := s.listSnapshots()
	if err != nil {
		return 0, err
	}

	if len(files) <= s.config.Retain {
		return 0, nil
	}

	removed := 0
	for _, name := range files[:len(files)-s.config.Retain] {
		if err := os.Remove(filepath.Join(s.config.Directory, name)); err != nil {
			return removed, fmt.Errorf("erro ao remover %s: %w", name, err)
		}
		removed++
	}

	return removed, nil
}

// listSnapshots retorna os arquivos de backup do mais antigo para o mais recente
func (s *BackupSyncService) listSnapshots() ([]string, error) {
	items, err := os.ReadDir(s.config.Directory)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar diretório de backup: %w", err)
	}

	files := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		name := item.Name()
		if strings.HasPrefix(name, backupFilePrefix) && strings.HasSuffix(name, ".json") {
			files = append(files, name)
		}
	}

	sort.Strings(files)
	return files, nil
}

// TriggerManualSync executa o backup fora do agendamento
func (s *BackupSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Backup já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando backup manual")
	go s.runBackup(context.Background())
}

func (s *BackupSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"directory":              s.config.Directory,
		"retain":                 s.config.Retain,
		"running":                s.syncRunning,
		"last_file":              s.lastFile,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
