package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/pathviz/cache"
)

// pinger is implemented by stores with a remote backend.
type pinger interface {
	Ping(ctx context.Context) error
}

type healthController struct {
	store cache.Store
}

// Register implements Controller.
func (hc *healthController) Register(route *gin.RouterGroup) {
	route.GET("/healthz", hc.health)
}

func (hc *healthController) health(ctx *gin.Context) {
	if p, ok := hc.store.(pinger); ok {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), time.Second)
		defer cancel()
		if err := p.Ping(pingCtx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
