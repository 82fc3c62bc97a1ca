package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

type stubReturnService struct {
	createFn     func(ctx context.Context, in ports.CreateReturnInput) (*domain.ReturnRequest, error)
	getFn        func(ctx context.Context, id, role, clientEmail string) (*domain.ReturnRequest, error)
	listFn       func(ctx context.Context, in ports.ListReturnsInput) ([]*domain.ReturnRequest, error)
	transitionFn func(ctx context.Context, id string, status domain.ReturnStatus, at time.Time) (*domain.ReturnRequest, error)
	rateFn       func(ctx context.Context, id, clientEmail string, score int) error
	statsFn      func(ctx context.Context) (*ports.DashboardStats, error)
}

func (s *stubReturnService) CreateReturn(ctx context.Context, in ports.CreateReturnInput) (*domain.ReturnRequest, error) {
	return s.createFn(ctx, in)
}

func (s *stubReturnService) GetReturn(ctx context.Context, id, role, clientEmail string) (*domain.ReturnRequest, error) {
	return s.getFn(ctx, id, role, clientEmail)
}

func (s *stubReturnService) ListReturns(ctx context.Context, in ports.ListReturnsInput) ([]*domain.ReturnRequest, error) {
	return s.listFn(ctx, in)
}

func (s *stubReturnService) TransitionStatus(ctx context.Context, id string, status domain.ReturnStatus, at time.Time) (*domain.ReturnRequest, error) {
	return s.transitionFn(ctx, id, status, at)
}

func (s *stubReturnService) RateReturn(ctx context.Context, id, clientEmail string, score int) error {
	return s.rateFn(ctx, id, clientEmail, score)
}

func (s *stubReturnService) DashboardStats(ctx context.Context) (*ports.DashboardStats, error) {
	return s.statsFn(ctx)
}

func sampleStoredReturn() *domain.ReturnRequest {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.ReturnRequest{
		ID:          "RET-001",
		OrderID:     "CMD-1",
		ClientEmail: "client@example.com",
		RequestDate: now,
		Reason:      domain.ReasonDefective,
		ReturnMode:  domain.ModeHomePickup,
		Status:      domain.StatusCreated,
		Timeline:    []domain.TimelineEntry{{Status: domain.StatusCreated, Date: now}},
	}
}

func newAuthedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, role, email string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("role", role)
	c.Set("email", email)
	return c
}

func TestReturnHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubReturnService{
		createFn: func(ctx context.Context, in ports.CreateReturnInput) (*domain.ReturnRequest, error) {
			// The owner comes from the token, never the payload.
			if in.ClientEmail != "client@example.com" {
				t.Fatalf("expected owner from claims, got %q", in.ClientEmail)
			}
			if in.Reason != domain.ReasonDefective || in.ProofImage == "" {
				t.Fatalf("unexpected input: %+v", in)
			}
			r := sampleStoredReturn()
			r.ProofImage = in.ProofImage
			return r, nil
		},
	}
	handler := NewReturnHandler(stub)

	body := strings.NewReader(`{"order_id":"CMD-1","reason":"defective","return_mode":"home_pickup","proof_image":"uploads/p.jpg"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/returns", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, domain.RoleClient, "client@example.com")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "RET-001" || resp["status"] != "created" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["status_label"] != "Créé" || resp["reason_label"] != "Défectueux" {
		t.Fatalf("expected French labels, got %+v", resp)
	}
}

func TestReturnHandler_Create_UnknownReason(t *testing.T) {
	e := newTestEcho()
	stub := &stubReturnService{
		createFn: func(ctx context.Context, in ports.CreateReturnInput) (*domain.ReturnRequest, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReturnHandler(stub)

	body := strings.NewReader(`{"order_id":"CMD-1","reason":"because","return_mode":"home_pickup"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/returns", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, domain.RoleClient, "client@example.com")

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestReturnHandler_Create_MissingClaims(t *testing.T) {
	e := newTestEcho()
	stub := &stubReturnService{
		createFn: func(ctx context.Context, in ports.CreateReturnInput) (*domain.ReturnRequest, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReturnHandler(stub)

	body := strings.NewReader(`{"order_id":"CMD-1","reason":"recycling","return_mode":"home_pickup"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/returns", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec) // no claims set

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestReturnHandler_Get_PassesClaims(t *testing.T) {
	e := newTestEcho()
	stub := &stubReturnService{
		getFn: func(ctx context.Context, id, role, clientEmail string) (*domain.ReturnRequest, error) {
			if id != "RET-001" || role != domain.RoleClient || clientEmail != "client@example.com" {
				t.Fatalf("unexpected args: %s %s %s", id, role, clientEmail)
			}
			return sampleStoredReturn(), nil
		},
	}
	handler := NewReturnHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/returns/RET-001", nil)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, domain.RoleClient, "client@example.com")
	c.SetParamNames("id")
	c.SetParamValues("RET-001")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReturnHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubReturnService{
		getFn: func(ctx context.Context, id, role, clientEmail string) (*domain.ReturnRequest, error) {
			return nil, domain.ErrReturnNotFound
		},
	}
	handler := NewReturnHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/returns/RET-404", nil)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, domain.RoleAdmin, "")
	c.SetParamNames("id")
	c.SetParamValues("RET-404")

	if err := handler.Get(c); !errors.Is(err, domain.ErrReturnNotFound) {
		t.Fatalf("expected ErrReturnNotFound, got %v", err)
	}
}

func TestReturnHandler_List_ForwardsFilters(t *testing.T) {
	e := newTestEcho()
	stub := &stubReturnService{
		listFn: func(ctx context.Context, in ports.ListReturnsInput) ([]*domain.ReturnRequest, error) {
			if in.Status != "validated" || in.Search != "RET-0" {
				t.Fatalf("filters not forwarded: %+v", in)
			}
			if in.Role != domain.RoleAdmin {
				t.Fatalf("role not forwarded: %+v", in)
			}
			return []*domain.ReturnRequest{sampleStoredReturn()}, nil
		},
	}
	handler := NewReturnHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/returns?status=validated&search=RET-0", nil)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, domain.RoleAdmin, "admin@example.com")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", resp["count"])
	}
}

func TestReturnHandler_Transition(t *testing.T) {
	e := newTestEcho()
	stub := &stubReturnService{
		transitionFn: func(ctx context.Context, id string, status domain.ReturnStatus, at time.Time) (*domain.ReturnRequest, error) {
			if id != "RET-001" || status != domain.StatusValidated {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			r := sampleStoredReturn()
			r.Status = domain.StatusValidated
			r.Progress = 20
			return r, nil
		},
	}
	handler := NewReturnHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/v1/returns/RET-001/status", strings.NewReader(`{"status":"validated"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, domain.RoleAdmin, "admin@example.com")
	c.SetParamNames("id")
	c.SetParamValues("RET-001")

	if err := handler.Transition(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReturnHandler_Transition_RejectsUnknownStatus(t *testing.T) {
	e := newTestEcho()
	stub := &stubReturnService{
		transitionFn: func(ctx context.Context, id string, status domain.ReturnStatus, at time.Time) (*domain.ReturnRequest, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReturnHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/v1/returns/RET-001/status", strings.NewReader(`{"status":"teleported"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, domain.RoleAdmin, "admin@example.com")
	c.SetParamNames("id")
	c.SetParamValues("RET-001")

	err := handler.Transition(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestReturnHandler_Rate(t *testing.T) {
	e := newTestEcho()
	stub := &stubReturnService{
		rateFn: func(ctx context.Context, id, clientEmail string, score int) error {
			if id != "RET-001" || clientEmail != "client@example.com" || score != 4 {
				t.Fatalf("unexpected args: %s %s %d", id, clientEmail, score)
			}
			return nil
		},
	}
	handler := NewReturnHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/returns/RET-001/satisfaction", strings.NewReader(`{"score":4}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, domain.RoleClient, "client@example.com")
	c.SetParamNames("id")
	c.SetParamValues("RET-001")

	if err := handler.Rate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestReturnHandler_Rate_ScoreOutOfRange(t *testing.T) {
	e := newTestEcho()
	stub := &stubReturnService{
		rateFn: func(ctx context.Context, id, clientEmail string, score int) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewReturnHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/returns/RET-001/satisfaction", strings.NewReader(`{"score":9}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, domain.RoleClient, "client@example.com")
	c.SetParamNames("id")
	c.SetParamValues("RET-001")

	err := handler.Rate(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestReturnHandler_Stats(t *testing.T) {
	e := newTestEcho()
	stub := &stubReturnService{
		statsFn: func(ctx context.Context) (*ports.DashboardStats, error) {
			return &ports.DashboardStats{
				Pending:             2,
				Processed:           1,
				AverageSatisfaction: 4.5,
				ReasonBreakdown: map[domain.ReturnReason]int{
					domain.ReasonDefective: 3,
				},
			}, nil
		},
	}
	handler := NewReturnHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, domain.RoleAdmin, "admin@example.com")

	if err := handler.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["pending"] != float64(2) || resp["processed"] != float64(1) || resp["average_satisfaction"] != 4.5 {
		t.Fatalf("unexpected stats payload: %+v", resp)
	}
	breakdown, ok := resp["reason_breakdown"].(map[string]any)
	if !ok || breakdown["defective"] != float64(3) {
		t.Fatalf("unexpected breakdown: %+v", resp["reason_breakdown"])
	}
}
