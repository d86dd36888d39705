package database

import "org-registry/internal/models"

// CreateAuditLog appends one row to the audit trail. Best effort: a failed
// audit write never blocks the request that triggered it.
func CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
