package content

import (
	"encoding/json"
	"time"
)

// DefaultKey is the single site document edited by the admin dashboard.
const DefaultKey = "site"

// Revision is one saved version of a content document. The head of a key is
// the row with the highest version; nothing is ever updated in place, which is
// what makes restore trivial.
type Revision struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Key      string `gorm:"not null;uniqueIndex:idx_content_revisions_key_version,priority:1" json:"key"`
	Version  int    `gorm:"not null;uniqueIndex:idx_content_revisions_key_version,priority:2" json:"version"`
	Document json.RawMessage `gorm:"type:jsonb;not null" json:"document"`
	Author   string          `json:"author"`

	CreatedAt time.Time `json:"created_at"`
}
