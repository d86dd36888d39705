package handlers

import (
	"net/http"

	"org-registry/internal/database"
	"org-registry/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func ListAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	database.DB.Preload("User").Order("created_at desc").Limit(200).Find(&logs)

	render(c, http.StatusOK, "audit_list.html", gin.H{
		"logs": logs,
	})
}

// auditLog records who did what, keyed by the session user. Anonymous
// requests (none reach the entity handlers in practice) are skipped.
func auditLog(c *gin.Context, entity string, entityID uint, action, details string) {
	sess := sessions.Default(c)
	if v := sess.Get("user_id"); v != nil {
		if uid, ok := v.(uint); ok {
			database.CreateAuditLog(uid, entity, entityID, action, details)
		}
	}
}
