package handler

import (
	"inheritance-vault/internal/adapter/http/middleware"
	redisStore "inheritance-vault/internal/adapter/storage/redis"
	"inheritance-vault/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WillSvc        ports.WillService
	ClaimSvc       ports.ClaimService
	KeySvc         ports.KeyService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	MaxBodyBytes   int64              // 0 = 1 MB
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Every API route requires a caller identity.
	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))

	willHandler := NewWillHandler(deps.WillSvc)
	wills := v1.Group("/wills")
	{
		wills.POST("", rl("wills"), willHandler.RegisterWill)
		wills.POST("/heartbeat", rl("heartbeat"), willHandler.Heartbeat)
		wills.PUT("/secret", rl("wills"), willHandler.UpdateSecret)
		wills.GET("/status", rl("dashboard"), willHandler.GetStatus)
	}

	inheritanceHandler := NewInheritanceHandler(deps.WillSvc, deps.ClaimSvc)
	inheritances := v1.Group("/inheritances")
	{
		inheritances.GET("", rl("dashboard"), inheritanceHandler.List)
		inheritances.POST("/:owner/claim", rl("claim"), inheritanceHandler.Claim)
		inheritances.GET("/:owner/settlements", rl("dashboard"), inheritanceHandler.Settlements)
	}

	keyHandler := NewKeyHandler(deps.KeySvc)
	v1.POST("/keys/derive", rl("derive"), keyHandler.Derive)

	vault := v1.Group("/vault")
	{
		vault.GET("/address", rl("vault"), keyHandler.VaultAddress)
		vault.GET("/balance", rl("vault"), keyHandler.VaultBalance)
	}

	return r
}
