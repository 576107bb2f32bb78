package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditLog_ClaimSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)

	done := make(chan struct{})
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionClaim, log.Action)
			assert.Equal(t, "will", log.ResourceType)
			assert.Equal(t, "owner-aaaa", log.ResourceID)
			assert.Equal(t, domain.Identity("heir-bbbb"), log.Caller)
			close(done)
		},
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(CtxCaller, domain.Identity("heir-bbbb"))
		c.Next()
	})
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/inheritances/:owner/claim", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inheritances/owner-aaaa/claim", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("audit not called")
	}
}

func TestAuditLog_DeriveUsesScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(
		func(ctx context.Context, log *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionDeriveKey, log.Action)
			assert.Equal(t, "owner-aaaa", log.ResourceID)
		},
	)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/keys/derive", func(c *gin.Context) {
		c.Set(CtxCaller, domain.Identity("heir-bbbb"))
		c.Set(CtxKeyScope, "owner-aaaa")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/keys/derive", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_SkipsGET(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.GET("/api/v1/wills/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"heartbeat_interval": 60})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/wills/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_SkipsFailedRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/inheritances/:owner/claim", func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"error": "still alive"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/inheritances/owner-aaaa/claim", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMapPathToAction(t *testing.T) {
	tests := []struct {
		path     string
		method   string
		action   domain.AuditAction
		resource string
		id       string
	}{
		{"/api/v1/wills", "POST", domain.AuditActionRegisterWill, "will", ""},
		{"/api/v1/wills/heartbeat", "POST", domain.AuditActionHeartbeat, "will", ""},
		{"/api/v1/wills/secret", "PUT", domain.AuditActionUpdateSecret, "will", ""},
		{"/api/v1/inheritances/owner-1/claim", "POST", domain.AuditActionClaim, "will", "owner-1"},
		{"/api/v1/inheritances//claim", "POST", "", "", ""},
		{"/api/v1/inheritances/owner-1/settlements", "GET", "", "", ""},
		{"/api/v1/keys/derive", "POST", domain.AuditActionDeriveKey, "key", ""},
		{"/api/v1/wills", "GET", "", "", ""},
		{"/unknown", "POST", "", "", ""},
	}

	for _, tc := range tests {
		action, resource, id := mapPathToAction(tc.path, tc.method)
		assert.Equal(t, tc.action, action, "path=%s method=%s", tc.path, tc.method)
		assert.Equal(t, tc.resource, resource, "path=%s method=%s", tc.path, tc.method)
		assert.Equal(t, tc.id, id, "path=%s method=%s", tc.path, tc.method)
	}
}
