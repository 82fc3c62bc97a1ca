package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/retours-express/returns-platform/internal/api/metrics"
	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

// ReturnHandler handles HTTP requests for return request operations.
type ReturnHandler struct {
	service ports.ReturnService
}

func NewReturnHandler(service ports.ReturnService) *ReturnHandler {
	return &ReturnHandler{service: service}
}

// Create handles POST /v1/returns.
//
// @Summary      Create a new return request
// @Tags         returns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReturnRequest  true  "Return request draft"
// @Success      201   {object}  returnResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/returns [post]
func (h *ReturnHandler) Create(c echo.Context) error {
	var req createReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, email, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.service.CreateReturn(c.Request().Context(), ports.CreateReturnInput{
		OrderID:     req.OrderID,
		ClientEmail: email,
		Reason:      domain.ReturnReason(req.Reason),
		ReturnMode:  domain.ReturnMode(req.ReturnMode),
		Description: req.Description,
		ProofImage:  req.ProofImage,
		RequestDate: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	metrics.ReturnsCreatedTotal.WithLabelValues(string(result.Reason)).Inc()
	return c.JSON(http.StatusCreated, toReturnResponse(result))
}

// Get handles GET /v1/returns/:id.
//
// @Summary      Get a return request by id
// @Tags         returns
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Return request id (e.g. RET-001)"
// @Success      200  {object}  returnResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/returns/{id} [get]
func (h *ReturnHandler) Get(c echo.Context) error {
	role, email, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.service.GetReturn(c.Request().Context(), c.Param("id"), role, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReturnResponse(result))
}

// List handles GET /v1/returns. Clients only ever see their own returns;
// admins see everything, optionally narrowed by status and search.
//
// @Summary      List return requests
// @Tags         returns
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status (or 'all')"
// @Param        search  query     string  false  "Substring match on id or client email"
// @Success      200     {object}  listReturnsResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/returns [get]
func (h *ReturnHandler) List(c echo.Context) error {
	role, email, err := ctxClaims(c)
	if err != nil {
		return err
	}

	results, err := h.service.ListReturns(c.Request().Context(), ports.ListReturnsInput{
		Role:        role,
		ClientEmail: email,
		Status:      c.QueryParam("status"),
		Search:      c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(results))
}

// Transition handles PATCH /v1/returns/:id/status. Admin only (enforced
// by the role middleware on the route).
//
// @Summary      Advance a return request to a new status
// @Tags         returns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Return request id"
// @Param        body  body      transitionRequest  true  "Target status"
// @Success      200   {object}  returnResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/returns/{id}/status [patch]
func (h *ReturnHandler) Transition(c echo.Context) error {
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.TransitionStatus(c.Request().Context(), c.Param("id"), domain.ReturnStatus(req.Status), time.Now().UTC())
	if err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(result.Status)).Inc()
	return c.JSON(http.StatusOK, toReturnResponse(result))
}

// Rate handles POST /v1/returns/:id/satisfaction. Only the owner of a
// resolved request can rate it, and only once.
//
// @Summary      Rate a resolved return request
// @Tags         returns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Return request id"
// @Param        body  body      rateReturnRequest  true  "Satisfaction score (1-5)"
// @Success      204   "rating recorded"
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/returns/{id}/satisfaction [post]
func (h *ReturnHandler) Rate(c echo.Context) error {
	var req rateReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, email, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.RateReturn(c.Request().Context(), c.Param("id"), email, req.Score); err != nil {
		return err
	}

	metrics.SatisfactionRatingsTotal.WithLabelValues(strconv.Itoa(req.Score)).Inc()
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /v1/dashboard/stats. Admin only.
//
// @Summary      Dashboard KPI snapshot
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardStatsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/dashboard/stats [get]
func (h *ReturnHandler) Stats(c echo.Context) error {
	stats, err := h.service.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(stats))
}
