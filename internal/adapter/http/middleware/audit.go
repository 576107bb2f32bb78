package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxKeyScope holds the owner scope of a derivation request for auditing.
const CtxKeyScope = "key_scope"

// AuditLog creates middleware that records audited actions after the
// handler completes. Only successful (2xx) responses are audited.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		action, resourceType, resourceID := mapPathToAction(c.Request.URL.Path, c.Request.Method)
		if action == "" {
			return
		}

		caller, _ := Caller(c)
		if action == domain.AuditActionDeriveKey {
			resourceID = c.GetString(CtxKeyScope)
		}
		if resourceID == "" {
			resourceID = caller.String()
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Caller:       caller,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

// mapPathToAction returns the audit action, resource type and, for claims, the owner.
func mapPathToAction(path, method string) (domain.AuditAction, string, string) {
	switch {
	case path == "/api/v1/wills" && method == http.MethodPost:
		return domain.AuditActionRegisterWill, "will", ""
	case path == "/api/v1/wills/heartbeat" && method == http.MethodPost:
		return domain.AuditActionHeartbeat, "will", ""
	case path == "/api/v1/wills/secret" && method == http.MethodPut:
		return domain.AuditActionUpdateSecret, "will", ""
	case path == "/api/v1/keys/derive" && method == http.MethodPost:
		return domain.AuditActionDeriveKey, "key", ""
	case method == http.MethodPost && strings.HasPrefix(path, "/api/v1/inheritances/") && strings.HasSuffix(path, "/claim"):
		owner := strings.TrimSuffix(strings.TrimPrefix(path, "/api/v1/inheritances/"), "/claim")
		if owner == "" || strings.Contains(owner, "/") {
			return "", "", ""
		}
		return domain.AuditActionClaim, "will", owner
	}
	return "", "", ""
}
