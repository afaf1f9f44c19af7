package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/config"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/internal/usecases/importing"
)

const defaultDebounce = 2 * time.Second

// ImportWatcher importa automaticamente as planilhas salvas no diretório monitorado
type ImportWatcher struct {
	importer     importing.Importer
	directory    string
	processedDir string
	debounce     time.Duration
	enabled      bool

	mu      sync.Mutex
	pending map[string]*time.Timer
	now     func() time.Time
}

func NewImportWatcher(importer importing.Importer, cfg config.ImportWatcher) *ImportWatcher {
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	processedDir := cfg.ProcessedDir
	if processedDir == "" {
		processedDir = filepath.Join(cfg.Directory, "processed")
	}

	return &ImportWatcher{
		importer:     importer,
		directory:    cfg.Directory,
		processedDir: processedDir,
		debounce:     debounce,
		enabled:      cfg.Enabled,
		pending:      make(map[string]*time.Timer),
		now:          time.Now,
	}
}

// Start monitora o diretório até o contexto ser cancelado
func (w *ImportWatcher) Start(ctx context.Context) error {
	if !w.enabled {
		logrus.Info("Importação automática desabilitada por configuração")
		return nil
	}

	if err := os.MkdirAll(w.directory, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de importação: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("erro ao criar watcher: %w", err)
	}

	if err := fsWatcher.Add(w.directory); err != nil {
		fsWatcher.Close()
		return fmt.Errorf("erro ao monitorar %s: %w", w.directory, err)
	}

	logrus.WithFields(logrus.Fields{
		"directory":     w.directory,
		"processed_dir": w.processedDir,
		"debounce":      w.debounce.String(),
	}).Info("Monitorando diretório de importação")

	go w.loop(ctx, fsWatcher)

	return nil
}

func (w *ImportWatcher) loop(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	defer fsWatcher.Close()

	for {
		select {
		case <-ctx.Done():
			w.stopPending()
			logrus.Info("Parando monitoramento do diretório de importação")
			return

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			// Editores costumam salvar criando um novo arquivo, então Create também conta
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.schedule(ctx, event.Name)

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Error("Erro no monitoramento do diretório de importação")
		}
	}
}

// schedule reinicia o debounce do arquivo; a importação só roda quando a escrita termina
func (w *ImportWatcher) schedule(ctx context.Context, path string) {
	if !isImportable(path) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}

	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		if _, err := w.ProcessFile(ctx, path); err != nil {
			logrus.WithError(err).WithField("file", path).Error("Erro na importação automática")
		}
	})
}

func (w *ImportWatcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}

// ProcessFile importa o arquivo e o move para o diretório de processados
func (w *ImportWatcher) ProcessFile(ctx context.Context, path string) (*domain.ImportResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao acessar arquivo: %w", err)
	}
	if info.IsDir() {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo: %w", err)
	}

	result, err := w.importer.Import(ctx, filepath.Base(path), file)
	file.Close()
	if err != nil {
		return nil, err
	}

	target, err := w.moveToProcessed(path)
	if err != nil {
		return result, err
	}

	logrus.WithFields(logrus.Fields{
		"file":          filepath.Base(path),
		"moved_to":      target,
		"imported":      result.Imported,
		"replaced":      result.Replaced,
		"skipped":       result.Skipped,
		"new_employees": len(result.NewEmployees),
		"new_clients":   len(result.NewClients),
	}).Info("Arquivo importado automaticamente")

	return result, nil
}

func (w *ImportWatcher) moveToProcessed(path string) (string, error) {
	if err := os.MkdirAll(w.processedDir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório de processados: %w", err)
	}

	target := filepath.Join(w.processedDir, w.now().Format("20060102-150405")+"-"+filepath.Base(path))
	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("erro ao mover arquivo processado: %w", err)
	}

	return target, nil
}

// isImportable ignora arquivos temporários e formatos não suportados
func isImportable(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~$") {
		return false
	}
	if filepath.Ext(name) == "" {
		return false
	}
	_, ok := importing.DetectFormat(name)
	return ok
}
