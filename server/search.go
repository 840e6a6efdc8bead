package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/pathviz/cache"
	"github.com/katalvlaran/pathviz/ctxlog"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// errTooLarge is returned when a layout exceeds the configured cell limit.
var errTooLarge = errors.New("server: grid too large")

type searchController struct {
	store       cache.Store
	maxCells    int
	streamDelay time.Duration
}

// Register implements Controller.
func (sc *searchController) Register(route *gin.RouterGroup) {
	route.GET("/algorithms", sc.algorithms)
	searchGroup := route.Group("/search")
	{
		searchGroup.POST("", sc.search)
		searchGroup.POST("/stream", sc.stream)
	}
}

func (sc *searchController) algorithms(ctx *gin.Context) {
	algos := search.Algorithms()
	infos := make([]search.Info, len(algos))
	for i, a := range algos {
		infos[i] = a.Info()
	}
	ctx.JSON(http.StatusOK, infos)
}

// parsed is a validated search request.
type parsed struct {
	algo        search.Algorithm
	g           *grid.Grid
	start, goal grid.Cell
}

// bind decodes and validates the request body. On failure it writes the
// error response and returns false.
func (sc *searchController) bind(ctx *gin.Context) (SearchRequest, parsed, bool) {
	if sc.maxCells > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, sc.bodyLimit())
	}
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: body exceeds %d bytes", errTooLarge, tooLarge.Limit)
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return request, parsed{}, false
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, parsed{}, false
	}

	algo, err := search.ParseAlgorithm(request.Algorithm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, parsed{}, false
	}
	if cells := len(request.Layout) * len([]rune(request.Layout[0])); sc.maxCells > 0 && cells > sc.maxCells {
		err = fmt.Errorf("%w: %d cells, limit %d", errTooLarge, cells, sc.maxCells)
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return request, parsed{}, false
	}
	g, start, goal, err := grid.Parse(request.Layout)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, parsed{}, false
	}

	return request, parsed{algo: algo, g: g, start: start, goal: goal}, true
}

// bodyLimit bounds a request body: one byte per cell, quoting and separators
// per row in the worst case of one-cell rows, plus room for the other fields.
func (sc *searchController) bodyLimit() int64 {
	return int64(sc.maxCells)*4 + 4096
}

func (sc *searchController) search(ctx *gin.Context) {
	_, p, ok := sc.bind(ctx)
	if !ok {
		return
	}
	reqCtx := ctx.Request.Context()
	logger := ctxlog.FromContext(reqCtx)

	key := cache.Key(p.algo, p.g, p.start, p.goal)
	res, cached, err := cache.GetOrCompute(reqCtx, sc.store, key, func(c context.Context) (*search.Result, error) {
		return search.Run(c, p.g, p.start, p.goal, p.algo)
	})
	if err != nil {
		logger.Error("search failed", "algorithm", p.algo, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	logger.Info("search served", "algorithm", p.algo, "found", res.Found,
		"visited", len(res.Visited), "cached", cached)

	ctx.JSON(http.StatusOK, &SearchResponse{
		RunID:     ctx.GetString(runIDKey),
		Algorithm: res.Algorithm,
		Found:     res.Found,
		Path:      pairs(res.Path),
		Visited:   pairs(res.Visited),
		PathEdges: res.Path.Edges(),
		Cached:    cached,
	})
}

// stream runs the search live and emits one SSE event per visited cell. The
// request context cancels the run when the client goes away.
func (sc *searchController) stream(ctx *gin.Context) {
	request, p, ok := sc.bind(ctx)
	if !ok {
		return
	}
	delay := sc.streamDelay
	if request.Delay != "" {
		d, err := search.ParseDelay(request.Delay)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		delay = d
	}

	reqCtx := ctx.Request.Context()
	logger := ctxlog.FromContext(reqCtx)
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	res, err := search.Run(reqCtx, p.g, p.start, p.goal, p.algo,
		search.WithDelay(delay),
		search.WithOnVisit(func(ev search.Event) error {
			ctx.SSEvent(string(ev.Phase), VisitedEvent{Step: ev.Step, Row: ev.Cell.Row, Col: ev.Cell.Col})
			ctx.Writer.Flush()
			return nil
		}),
	)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logger.Info("stream cancelled by client", "algorithm", p.algo, "visited", len(res.Visited))
			return
		}
		logger.Error("stream failed", "algorithm", p.algo, "error", err)
		ctx.SSEvent("error", gin.H{"error": err.Error()})
		ctx.Writer.Flush()
		return
	}

	ctx.SSEvent(string(search.PhasePath), PathEvent{Found: res.Found, Path: pairs(res.Path), PathEdges: res.Path.Edges()})
	ctx.SSEvent("done", DoneEvent{RunID: ctx.GetString(runIDKey), Visited: len(res.Visited)})
	ctx.Writer.Flush()
	logger.Info("stream finished", "algorithm", p.algo, "found", res.Found, "visited", len(res.Visited))
}
