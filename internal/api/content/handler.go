package contentapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"tickets-app/database"
	"tickets-app/internal/domain/content"

	"github.com/gin-gonic/gin"
)

// GetContent returns the latest published site document. The landing page
// falls back to its built-in defaults on 404.
func GetContent(c *gin.Context) {
	rev, err := content.Latest(database.DB, content.DefaultKey)
	if errors.Is(err, content.ErrNoDocument) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No content published yet"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"version":    rev.Version,
		"document":   rev.Document,
		"updated_at": rev.CreatedAt,
	})
}

// SaveContent appends a new revision of the site document.
func SaveContent(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}
	if !json.Valid(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Document must be valid JSON"})
		return
	}

	rev, err := content.Save(database.DB, content.DefaultKey, raw, c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"version": rev.Version})
}

// ListRevisions returns recent revision metadata for the admin history view.
func ListRevisions(c *gin.Context) {
	var revs []content.Revision
	err := database.DB.
		Select("version", "author", "created_at").
		Where("key = ?", content.DefaultKey).
		Order("version DESC").
		Limit(20).
		Find(&revs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load revisions"})
		return
	}

	out := make([]gin.H, 0, len(revs))
	for _, r := range revs {
		out = append(out, gin.H{
			"version":    r.Version,
			"author":     r.Author,
			"created_at": r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// RestoreContent promotes the previous revision to head and returns the
// document that was replaced.
func RestoreContent(c *gin.Context) {
	replaced, head, err := content.Restore(database.DB, content.DefaultKey, c.GetString("email"))
	if errors.Is(err, content.ErrNoBackup) {
		c.JSON(http.StatusConflict, gin.H{"error": "No earlier revision to restore"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"version":  head.Version,
		"document": head.Document,
		"replaced": gin.H{
			"version":  replaced.Version,
			"document": replaced.Document,
		},
	})
}
