package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-directory/internal/store"
)

// Health reports "degraded" while the in-memory list may be ahead of storage.
func Health(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.LastError(); err != nil {
			c.JSON(http.StatusOK, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "employees": s.Len()})
	}
}
