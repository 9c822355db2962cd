package content

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNoDocument = errors.New("no content document saved yet")
	ErrNoBackup   = errors.New("no earlier revision to restore")
)

// Latest returns the head revision for a key.
func Latest(db *gorm.DB, key string) (Revision, error) {
	var rev Revision
	err := db.Where("key = ?", key).Order("version DESC").First(&rev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Revision{}, ErrNoDocument
	}
	return rev, err
}

// Save appends a new head revision; earlier versions stay around as backups.
func Save(db *gorm.DB, key string, doc json.RawMessage, author string) (Revision, error) {
	version := 1
	if head, err := Latest(db, key); err == nil {
		version = head.Version + 1
	} else if !errors.Is(err, ErrNoDocument) {
		return Revision{}, err
	}

	rev := Revision{Key: key, Version: version, Document: doc, Author: author}
	if err := db.Create(&rev).Error; err != nil {
		return Revision{}, err
	}
	return rev, nil
}

// Restore makes the previous revision the new head and returns the document it
// replaced, so the caller can still show (or re-save) what was just undone.
func Restore(db *gorm.DB, key, author string) (replaced Revision, head Revision, err error) {
	var last []Revision
	if err = db.Where("key = ?", key).Order("version DESC").Limit(2).Find(&last).Error; err != nil {
		return Revision{}, Revision{}, err
	}
	if len(last) < 2 {
		return Revision{}, Revision{}, ErrNoBackup
	}

	replaced = last[0]
	head, err = Save(db, key, last[1].Document, author)
	if err != nil {
		return Revision{}, Revision{}, err
	}
	return replaced, head, nil
}
