package nsx

import (
	"net/http"

	"dfwportal/internal/api/http/logger"
	apimodel "dfwportal/internal/api/http/utils"
	"dfwportal/internal/core/push"
	"dfwportal/internal/core/rule"
)

func NewRequestHandler(pushService push.PushServiceHandler, ruleService rule.RuleServiceHandler) *RequestHandler {
	return &RequestHandler{
		pushServiceHandler: pushService,
		ruleServiceHandler: ruleService,
	}
}

type RequestHandler struct {
	pushServiceHandler push.PushServiceHandler
	ruleServiceHandler rule.RuleServiceHandler
}

// TestConnection godoc
// @Summary test manager connection
// @Description check reachability and version of the configured NSX manager
// @Tags NSX
// @Produce json
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/nsx/test-connection [get]
func (h *RequestHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	// service: test connection
	status := h.pushServiceHandler.TestConnection(r.Context())

	if !status.Success {
		logger.SetReason(r.Context(), status.Message)
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "connection tested", status)
}

// GetSectionList godoc
// @Summary list firewall sections
// @Description list firewall sections known to the NSX manager
// @Tags NSX
// @Produce json
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/nsx/sections [get]
func (h *RequestHandler) GetSectionList(w http.ResponseWriter, r *http.Request) {
	// service: list sections
	sections, err := h.pushServiceHandler.ListSections(r.Context())
	if err != nil {
		apimodel.RespondFail(w, http.StatusBadGateway, "manager request failed: "+err.Error(), nil)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "get list success", sections)
}

// GetPendingPush godoc
// @Summary list rules awaiting push
// @Description list approved rules that have not been pushed yet
// @Tags NSX
// @Produce json
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/nsx/pending-push [get]
func (h *RequestHandler) GetPendingPush(w http.ResponseWriter, r *http.Request) {
	// service: pending push
	ruleList, err := h.ruleServiceHandler.PendingPush()
	if err != nil {
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "get list success", ruleList)
}

// PushRules godoc
// @Summary push all eligible rules
// @Description push every approved, unpushed rule to the NSX manager
// @Tags NSX
// @Produce json
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/nsx/push-rules [post]
func (h *RequestHandler) PushRules(w http.ResponseWriter, r *http.Request) {
	// service: push all
	result, err := h.pushServiceHandler.PushAll(r.Context())
	if err != nil {
		logger.SetReason(r.Context(), err.Error())
		apimodel.RespondFail(w, http.StatusBadGateway, "push failed: "+err.Error(), nil)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{
		SectionId: result.SectionId,
		Pushed:    len(result.Success),
		Failed:    len(result.Failed),
	})

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "push completed", result)
}

// PushSelected godoc
// @Summary push selected rules
// @Description push the requested rules; ineligible ids are reported as skipped
// @Tags NSX
// @Accept json
// @Produce json
// @Param request body PushSelectedRequest true "rule ids"
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/nsx/push-selected [post]
func (h *RequestHandler) PushSelected(w http.ResponseWriter, r *http.Request) {
	// decode request
	var req PushSelectedRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), req)
		return
	}
	if len(req.RuleIds) == 0 {
		apimodel.RespondFail(w, http.StatusBadRequest, "missing rule ids", req)
		return
	}

	// service: push selected
	result, err := h.pushServiceHandler.PushSelected(r.Context(), req.RuleIds)
	if err != nil {
		logger.SetReason(r.Context(), err.Error())
		apimodel.RespondFail(w, http.StatusBadGateway, "push failed: "+err.Error(), nil)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{
		SectionId: result.SectionId,
		Pushed:    len(result.Success),
		Failed:    len(result.Failed),
	})

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "push completed", result)
}

// GetPushHistory godoc
// @Summary get push history
// @Description list recently pushed rules, newest first
// @Tags NSX
// @Produce json
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/nsx/push-history [get]
func (h *RequestHandler) GetPushHistory(w http.ResponseWriter, r *http.Request) {
	// service: push history
	ruleList, err := h.ruleServiceHandler.PushHistory()
	if err != nil {
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "get list success", ruleList)
}
