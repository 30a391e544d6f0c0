// Package storage реализует контракт «ключ-значение» для записи
// прогресса: load() -> запись|пусто и save(запись). Запись хранится
// одной строкой под фиксированным ключом и сериализуется в JSON.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finansy/backend/models"
)

// RecordKey — единственный ключ записи прогресса на устройстве.
// Совпадает с ключом localStorage веб-версии.
const RecordKey = "finansy-stats"

type Store interface {
	Load() (models.ProgressRecord, bool, error)
	Save(models.ProgressRecord) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load возвращает запись прогресса. Отсутствующая или нечитаемая
// строка трактуется как «пользователя ещё нет» — это штатный путь к
// первичной инициализации, а не ошибка.
func (s *GormStore) Load() (models.ProgressRecord, bool, error) {
	var snap models.ProgressSnapshot
	if err := s.db.Where("key = ?", RecordKey).First(&snap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProgressRecord{}, false, nil
		}
		return models.ProgressRecord{}, false, fmt.Errorf("load progress record: %w", err)
	}

	var rec models.ProgressRecord
	if err := json.Unmarshal([]byte(snap.Data), &rec); err != nil {
		// Испорченный снимок равнозначен отсутствию записи.
		return models.ProgressRecord{}, false, nil
	}
	// Поля, добавленные после сохранения снимка, получают значения по умолчанию.
	rec.EnsureCategoryScores()
	return rec, true, nil
}

func (s *GormStore) Save(rec models.ProgressRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode progress record: %w", err)
	}

	snap := models.ProgressSnapshot{Key: RecordKey, Data: string(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		return fmt.Errorf("save progress record: %w", err)
	}
	return nil
}
