package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type entry struct {
	Timestamp string `json:"ts"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entity_id,omitempty"`
	Metadata  any    `json:"metadata,omitempty"`
}

// Logger grava eventos de auditoria como linhas JSON em um arquivo no
// diretório de dados.
type Logger struct {
	mu sync.Mutex
	w  io.Writer
}

func New(w io.Writer) *Logger {
	return &Logger{w: w}
}

// NewFile abre (ou cria) data_dir/audit.log em modo append.
func NewFile(dataDir string) (*Logger, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("audit: create data dir: %w", err)
	}

	f, err := os.OpenFile(
		filepath.Join(dataDir, "audit.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return nil, fmt.Errorf("audit: open log: %w", err)
	}
	return New(f), nil
}

func (l *Logger) Log(action, entity, entityID string, metadata any) error {
	e := entry{
		Timestamp: time.Now().Format(time.RFC3339),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metadata,
	}

	b, err := json.Marshal(e)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, err = l.w.Write(append(b, '\n'))
	return err
}
