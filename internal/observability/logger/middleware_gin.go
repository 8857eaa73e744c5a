package logger

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gagnaveita/portvakt/internal/observability/reqctx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MiddlewareConfig configures the gin access-log middleware.
type MiddlewareConfig struct {
	Logger *zap.Logger
	// GenID supplies request ids; a random fallback is used when nil.
	GenID *snowflake.Node
	// SkipPaths lists routes that are not access-logged (request ids are
	// still assigned).
	SkipPaths []string
}

// GinMiddleware assigns every request an id, exposes it via X-Request-Id,
// and writes one access-log line per request.
func GinMiddleware(cfg MiddlewareConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.L()
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader("X-Request-Id"))
		if requestID == "" {
			requestID = newRequestID(cfg.GenID)
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Request = c.Request.WithContext(reqctx.WithRequestID(c.Request.Context(), requestID))

		start := time.Now()
		c.Next()

		if _, skipped := skip[c.FullPath()]; skipped {
			return
		}

		log.Info("http request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func newRequestID(node *snowflake.Node) string {
	if node != nil {
		return node.Generate().String()
	}
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(buf)
}
