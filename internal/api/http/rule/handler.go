package rule

import (
	"errors"
	"net/http"

	"dfwportal/internal/api/http/logger"
	apimodel "dfwportal/internal/api/http/utils"
	"dfwportal/internal/core/rule"

	"github.com/go-chi/chi/v5"
)

func NewRequestHandler(service rule.RuleServiceHandler) *RequestHandler {
	return &RequestHandler{
		ruleServiceHandler: service,
	}
}

type RequestHandler struct {
	ruleServiceHandler rule.RuleServiceHandler
}

// CreateRule godoc
// @Summary Create a firewall rule request
// @Description register a new firewall rule request in pending state
// @Tags Rules
// @Accept json
// @Produce json
// @Param request body CreateRuleRequest true "rule parameter"
// @Success 201 {object} apimodel.ApiResponse
// @Router /v1/rules [post]
func (h *RequestHandler) CreateRule(w http.ResponseWriter, r *http.Request) {
	// decode request
	var req CreateRuleRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), req)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{
		RuleName:    req.RuleName,
		Source:      req.SourceIp,
		Destination: req.DestinationIp,
		Port:        req.Port,
		Protocol:    req.Protocol,
		Direction:   req.Direction,
		RuleAction:  req.Action,
	})

	// service: create rule
	ruleId, err := h.ruleServiceHandler.Create(
		rule.ServiceCreateModel{
			RuleName:      req.RuleName,
			Description:   req.Description,
			SourceIp:      req.SourceIp,
			DestinationIp: req.DestinationIp,
			Port:          req.Port,
			Protocol:      req.Protocol,
			Direction:     req.Direction,
			Action:        req.Action,
			Service:       req.Service,
			Priority:      req.Priority,
		},
	)
	if err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "service failed: "+err.Error(), req)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusCreated, "rule created", CreateRuleResponse{Id: ruleId})
}

// GetRuleList godoc
// @Summary get rule list
// @Description list rule requests, optionally filtered by status or a search term
// @Tags Rules
// @Produce json
// @Param status query string false "Rule status"
// @Param search query string false "Search term"
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/rules [get]
func (h *RequestHandler) GetRuleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// service: get list
	ruleList, err := h.ruleServiceHandler.List(
		rule.ServiceListModel{
			Status: query.Get("status"),
			Search: query.Get("search"),
		},
	)
	if err != nil {
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "get list success", ruleList)
}

// GetRule godoc
// @Summary get a rule
// @Description get a single rule request
// @Tags Rules
// @Produce json
// @Param ruleId path string true "Rule ID"
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/rules/{ruleId} [get]
func (h *RequestHandler) GetRule(w http.ResponseWriter, r *http.Request) {
	ruleId := chi.URLParam(r, "ruleId")
	if ruleId == "" {
		apimodel.RespondFail(w, http.StatusBadRequest, "missing rule Id", nil)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{
		RuleId: ruleId,
	})

	// service: get rule
	info, err := h.ruleServiceHandler.Get(ruleId)
	if err != nil {
		if errors.Is(err, rule.ErrNotFound) {
			apimodel.RespondFail(w, http.StatusNotFound, "rule not found", nil)
			return
		}
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "get rule success", info)
}

// UpdateRule godoc
// @Summary update a rule
// @Description update an existing rule request before it is pushed
// @Tags Rules
// @Accept json
// @Produce json
// @Param ruleId path string true "Rule ID"
// @Param request body UpdateRuleRequest true "rule parameter"
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/rules/{ruleId} [put]
func (h *RequestHandler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	ruleId := chi.URLParam(r, "ruleId")
	if ruleId == "" {
		apimodel.RespondFail(w, http.StatusBadRequest, "missing rule Id", nil)
		return
	}

	// decode request
	var req UpdateRuleRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), req)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{
		RuleId:      ruleId,
		RuleName:    req.RuleName,
		Source:      req.SourceIp,
		Destination: req.DestinationIp,
		Port:        req.Port,
		Protocol:    req.Protocol,
		Direction:   req.Direction,
		RuleAction:  req.Action,
	})

	// service: update rule
	err := h.ruleServiceHandler.Update(
		rule.ServiceUpdateModel{
			Id:            ruleId,
			RuleName:      req.RuleName,
			Description:   req.Description,
			SourceIp:      req.SourceIp,
			DestinationIp: req.DestinationIp,
			Port:          req.Port,
			Protocol:      req.Protocol,
			Direction:     req.Direction,
			Action:        req.Action,
			Service:       req.Service,
			Priority:      req.Priority,
		},
	)
	if err != nil {
		if errors.Is(err, rule.ErrNotFound) {
			apimodel.RespondFail(w, http.StatusNotFound, "rule not found", nil)
			return
		}
		apimodel.RespondFail(w, http.StatusBadRequest, "service failed: "+err.Error(), req)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "rule updated", UpdateRuleResponse{Id: ruleId})
}

// UpdateRuleStatus godoc
// @Summary change rule status
// @Description approve or reject a rule request
// @Tags Rules
// @Accept json
// @Produce json
// @Param ruleId path string true "Rule ID"
// @Param request body UpdateStatusRequest true "status"
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/rules/{ruleId}/status [patch]
func (h *RequestHandler) UpdateRuleStatus(w http.ResponseWriter, r *http.Request) {
	ruleId := chi.URLParam(r, "ruleId")
	if ruleId == "" {
		apimodel.RespondFail(w, http.StatusBadRequest, "missing rule Id", nil)
		return
	}

	// decode request
	var req UpdateStatusRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), req)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{
		RuleId: ruleId,
		Status: req.Status,
	})

	// service: update status
	if err := h.ruleServiceHandler.UpdateStatus(ruleId, req.Status); err != nil {
		if errors.Is(err, rule.ErrNotFound) {
			apimodel.RespondFail(w, http.StatusNotFound, "rule not found", nil)
			return
		}
		apimodel.RespondFail(w, http.StatusBadRequest, "service failed: "+err.Error(), req)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "status updated", UpdateStatusResponse{Id: ruleId, Status: req.Status})
}

// DeleteRule godoc
// @Summary delete a rule
// @Description delete an existing rule request
// @Tags Rules
// @Param ruleId path string true "Rule ID"
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/rules/{ruleId} [delete]
func (h *RequestHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	ruleId := chi.URLParam(r, "ruleId")
	if ruleId == "" {
		apimodel.RespondFail(w, http.StatusBadRequest, "missing rule Id", nil)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{
		RuleId: ruleId,
	})

	// service: delete rule
	if err := h.ruleServiceHandler.Remove(ruleId); err != nil {
		if errors.Is(err, rule.ErrNotFound) {
			apimodel.RespondFail(w, http.StatusNotFound, "rule not found", nil)
			return
		}
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "rule deleted", DeleteRuleResponse{Id: ruleId})
}
