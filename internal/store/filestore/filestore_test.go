package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type FileStoreTestSuite struct {
	suite.Suite
	path  string
	store *FileStore
}

func TestFileStoreSuite(t *testing.T) {
	suite.Run(t, new(FileStoreTestSuite))
}

func (s *FileStoreTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "ledger.json")
	s.store = New(s.path)
}

func (s *FileStoreTestSuite) sampleTable() domain.Table {
	return domain.Table{
		"bob": {
			Username: "bob",
			Password: "bcrypt-hash",
			Name:     "Bob's Shop",
			Customers: []domain.Customer{{
				Mobile:     "9999999999",
				Name:       "A",
				PIN:        "1111",
				Points:     15,
				TotalSpent: decimal.NewFromInt(150),
				History: []domain.HistoryEntry{
					{Date: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), Bill: decimal.NewFromInt(150), Points: 15},
				},
			}},
		},
	}
}

// Отсутствующий файл — первый запуск, пустая таблица без ошибки.
func (s *FileStoreTestSuite) TestLoadMissingFile() {
	table, err := s.store.Load(s.T().Context())

	s.Require().NoError(err)
	s.NotNil(table)
	s.Empty(table)
}

func (s *FileStoreTestSuite) TestLoadCorruptFile() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0o600))

	table, err := s.store.Load(s.T().Context())

	s.Require().NoError(err)
	s.NotNil(table)
	s.Empty(table)
}

func (s *FileStoreTestSuite) TestSaveLoadRoundTrip() {
	saved := s.sampleTable()
	s.Require().NoError(s.store.Save(s.T().Context(), saved))

	loaded, loadErr := s.store.Load(s.T().Context())
	s.Require().NoError(loadErr)

	// Сравниваем через JSON: decimal после раунд-трипа структурно может отличаться.
	savedJSON, savedErr := json.Marshal(saved)
	s.Require().NoError(savedErr)
	loadedJSON, loadedErr := json.Marshal(loaded)
	s.Require().NoError(loadedErr)
	s.JSONEq(string(savedJSON), string(loadedJSON))
}

// Save(Load()) не меняет содержимое документа.
func (s *FileStoreTestSuite) TestResaveIsIdempotent() {
	s.Require().NoError(s.store.Save(s.T().Context(), s.sampleTable()))

	before, beforeErr := os.ReadFile(s.path)
	s.Require().NoError(beforeErr)

	loaded, loadErr := s.store.Load(s.T().Context())
	s.Require().NoError(loadErr)
	s.Require().NoError(s.store.Save(s.T().Context(), loaded))

	after, afterErr := os.ReadFile(s.path)
	s.Require().NoError(afterErr)
	s.JSONEq(string(before), string(after))
}

// После Save временных файлов не остается.
func (s *FileStoreTestSuite) TestSaveLeavesNoTempFiles() {
	s.Require().NoError(s.store.Save(s.T().Context(), s.sampleTable()))

	entries, readErr := os.ReadDir(filepath.Dir(s.path))
	s.Require().NoError(readErr)
	s.Len(entries, 1)
	s.Equal(filepath.Base(s.path), entries[0].Name())
}
