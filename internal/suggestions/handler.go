package suggestions

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mailcue-backend/internal/shared/metrics"
	"mailcue-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the suggestions service and the catalogs.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches suggestion and catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/suggestions", h.suggest)
	rg.GET("/actions", h.listActions)
	rg.GET("/actions/:id", h.getAction)
	rg.GET("/compound-actions", h.listCompoundActions)
	rg.GET("/compound-actions/stats", h.compoundStats)
}

// RegisterDevRoutes attaches dev-only inspection routes.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.GET("/detection-rules", h.listDetectionRules)
}

func (h *Handler) listDetectionRules(c *gin.Context) {
	respond.OK(c, gin.H{"rules": h.Svc.Registry.RuleViews()})
}

func (h *Handler) suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Entities == nil {
		req.Entities = map[string]any{}
	}

	start := time.Now()
	result := h.Svc.Suggest(req.IntentID, req.Entities)
	metrics.ObserveSuggestDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	c.Set("intentId", req.IntentID)
	c.Set("suggestionCount", len(result.Suggestions))

	respond.OK(c, SuggestResponse{
		RequestID:   uuid.NewString(),
		IntentID:    req.IntentID,
		Suggestions: result.Suggestions,
		Fallback:    result.Fallback,
	})
}

func (h *Handler) listActions(c *gin.Context) {
	cat := h.Svc.Engine.Catalog()
	if intent := c.Query("intent"); intent != "" {
		respond.OK(c, gin.H{"actions": cat.ByIntent(intent)})
		return
	}
	respond.OK(c, gin.H{"actions": cat.All()})
}

func (h *Handler) getAction(c *gin.Context) {
	def, ok := h.Svc.Engine.Catalog().Get(c.Param("id"))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "action not found", nil)
		return
	}
	respond.OK(c, def)
}

func (h *Handler) listCompoundActions(c *gin.Context) {
	respond.OK(c, gin.H{"compoundActions": h.Svc.Registry.All()})
}

func (h *Handler) compoundStats(c *gin.Context) {
	respond.OK(c, h.Svc.Registry.Count())
}
