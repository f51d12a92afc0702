// Package filestore хранит таблицу админов в одном JSON файле на диске.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
)

const fileMode = 0o600

type FileStore struct {
	path string
}

func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Load читает документ с диска. Отсутствующий файл и битый JSON трактуются как пустая
// таблица: доступность важнее сохранения ошибок чтения, испорченный документ будет
// молча заменен при следующем Save.
func (s *FileStore) Load(_ context.Context) (domain.Table, error) {
	data, readErr := os.ReadFile(s.path)
	if readErr != nil {
		if errors.Is(readErr, os.ErrNotExist) {
			return domain.Table{}, nil
		}
		return nil, fmt.Errorf("read store file: %s", readErr.Error())
	}

	var table domain.Table
	if jsonErr := json.Unmarshal(data, &table); jsonErr != nil {
		return domain.Table{}, nil
	}
	if table == nil {
		table = domain.Table{}
	}
	return table, nil
}

// Save атомарно заменяет документ: пишем во временный файл и переименовываем. Читатель
// в любой момент видит либо прошлую, либо новую версию, но не половину записи.
func (s *FileStore) Save(_ context.Context, table domain.Table) error {
	data, jsonErr := json.Marshal(table)
	if jsonErr != nil {
		return fmt.Errorf("marshal store document: %s", jsonErr.Error())
	}

	tmp := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if writeErr := os.WriteFile(tmp, data, fileMode); writeErr != nil {
		return fmt.Errorf("write store file: %s", writeErr.Error())
	}
	if renameErr := os.Rename(tmp, s.path); renameErr != nil {
		return fmt.Errorf("replace store file: %s", renameErr.Error())
	}
	return nil
}
