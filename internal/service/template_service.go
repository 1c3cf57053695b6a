// internal/service/template_service.go
package service

import (
	"strings"
)

// Confirmation and audit messages. Placeholders are {name}.
const (
	LeadSavedTemplate       = "Lead information has been updated."
	LeadStatusTemplate      = "Lead status changed to {status}"
	RequestCompleteTemplate = "Service request {number} has been marked as completed successfully."
	AuditTemplate           = "{at} {fabricator} updated {kind} {record_id} -> {status}"
)

func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}

// humanStatus turns "in-progress" into "in progress".
func humanStatus(status string) string {
	return strings.ReplaceAll(status, "-", " ")
}
