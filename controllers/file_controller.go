package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fixmycity/api-go/storage"
)

// FileController serves stored images back to the browser.
type FileController struct {
	Store storage.BlobStore
}

func NewFileController(store storage.BlobStore) *FileController {
	return &FileController{Store: store}
}

// GetUpload streams the blob for a key. Keys are unguessable, so the
// endpoint is public the same way the original uploads route was.
func (fc *FileController) GetUpload(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File key is required"})
		return
	}

	data, err := fc.Store.Retrieve(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load file"})
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
