package http

import (
	"os"

	_ "dfwportal/docs"

	"dfwportal/internal/api/http/logger"
	nsxhandler "dfwportal/internal/api/http/nsx"
	rulehandler "dfwportal/internal/api/http/rule"
	wshandler "dfwportal/internal/api/http/websocket"
	"dfwportal/internal/core/push"
	"dfwportal/internal/core/rule"
	"dfwportal/internal/events"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// @title DFW Request Portal API
// @version 1.0
// @description Firewall rule request portal for NSX-T distributed firewall
// @BasePath /
// @schemes http

type RouterDeps struct {
	RuleService rule.RuleServiceHandler
	PushService push.PushServiceHandler
	Hub         *events.Hub
	AuditLog    logger.Logger
}

func NewApiRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	auditLog := deps.AuditLog
	if auditLog == nil {
		auditLog = logger.JsonLineLogger{Out: os.Stdout}
	}
	node, _ := os.Hostname()

	ruleHandler := rulehandler.NewRequestHandler(deps.RuleService)
	nsxHandler := nsxhandler.NewRequestHandler(deps.PushService, deps.RuleService)
	eventsHandler := wshandler.NewRequestHandler(deps.Hub)

	// middleware
	r.Use(middleware.RequestID)
	r.Use(logger.LoggerMiddleware(auditLog, "dfwportal", node))
	r.Use(middleware.Recoverer)

	// == swagger ==
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// == v1 ==
	// == rules ==
	r.Get("/v1/rules", ruleHandler.GetRuleList)             // list rules
	r.Post("/v1/rules", ruleHandler.CreateRule)             // create rule
	r.Get("/v1/rules/{ruleId}", ruleHandler.GetRule)        // get rule
	r.Put("/v1/rules/{ruleId}", ruleHandler.UpdateRule)     // update rule
	r.Patch("/v1/rules/{ruleId}/status", ruleHandler.UpdateRuleStatus) // approve / reject
	r.Delete("/v1/rules/{ruleId}", ruleHandler.DeleteRule)  // delete rule

	// == nsx ==
	r.Get("/v1/nsx/test-connection", nsxHandler.TestConnection) // manager reachability
	r.Get("/v1/nsx/sections", nsxHandler.GetSectionList)        // list sections
	r.Get("/v1/nsx/pending-push", nsxHandler.GetPendingPush)    // rules awaiting push
	r.Post("/v1/nsx/push-rules", nsxHandler.PushRules)          // push all eligible
	r.Post("/v1/nsx/push-selected", nsxHandler.PushSelected)    // push selected
	r.Get("/v1/nsx/push-history", nsxHandler.GetPushHistory)    // pushed rules

	// == websocket ==
	r.Get("/v1/ws/events", eventsHandler.ServeHTTP) // push event stream

	return r
}
