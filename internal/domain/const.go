package domain

const (
	// Default destination constants
	DEFAULT_DESTINATION_PRIORITY = 0
	DEFAULT_ALBUM_SLUG           = "default"
	DEFAULT_ALBUM_TITLE          = "Album"

	// Audit log actions
	AUDIT_ACTION_EVENT_ACTIVATED     = "event_activated"
	AUDIT_ACTION_QUICK_START_APPLIED = "quick_start_applied"
	AUDIT_ACTION_DESTINATION_UPDATED = "destination_updated"
	AUDIT_ACTION_DESTINATION_DELETED = "destination_deleted"

	// System actor used for audit entries written by background processes
	SYSTEM_ACTOR = "system"
)
