package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/http/handlers/mocks"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/pricing"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"areas":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.POST("/v1/quotes", h.CreateQuote)

		now := time.Now().UTC()
		uc.EXPECT().CreateDraft(gomock.Any(), "c-1", gomock.Any()).Return(entities.Quote{
			ID:           "q-1",
			ContractorID: "c-1",
			CustomerName: "Dana Whitfield",
			Status:       entities.QuoteStatusDraft,
			CreatedAt:    now,
			UpdatedAt:    now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"customer_name":"Dana Whitfield"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" || body["status"] != "draft" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_CalculateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	calcBody := `{"pricing_scheme_id":"ps-1","areas":[{"name":"Living Room","labor_items":[{"category_name":"Walls","measurement_unit":"sqft","selected":true,"dimensions":{"length":20,"width":12,"height":10}}]}]}`

	t.Run("success returns breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.POST("/v1/quotes/calculate", h.CalculateQuote)

		uc.EXPECT().Calculate(gomock.Any(), "c-1", gomock.Any()).Return(entities.QuoteBreakdown{
			LaborTotal: 1000,
			Total:      2049.3,
			Deposit:    614.79,
			Balance:    1434.51,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/calculate", bytes.NewBufferString(calcBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != 2049.3 {
			t.Fatalf("unexpected total in body: %s", w.Body.String())
		}
	})

	t.Run("scheme id from route wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.POST("/v1/pricing-schemes/:id/calculate", h.CalculateQuote)

		uc.EXPECT().Calculate(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, q entities.Quote) (entities.QuoteBreakdown, error) {
				if q.PricingSchemeID != "ps-route" {
					t.Fatalf("expected route scheme id, got %q", q.PricingSchemeID)
				}
				return entities.QuoteBreakdown{}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing-schemes/ps-route/calculate", bytes.NewBufferString(calcBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("validation error names offending areas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.POST("/v1/quotes/calculate", h.CalculateQuote)

		uc.EXPECT().Calculate(gomock.Any(), "c-1", gomock.Any()).Return(entities.QuoteBreakdown{}, &pricing.ValidationError{Areas: []string{"Garage"}})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/calculate", bytes.NewBufferString(calcBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		details, _ := body["details"].([]any)
		if len(details) != 1 || details[0] != "Garage" {
			t.Fatalf("expected Garage in details, got %s", w.Body.String())
		}
	})

	t.Run("scheme not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.POST("/v1/quotes/calculate", h.CalculateQuote)

		uc.EXPECT().Calculate(gomock.Any(), "c-1", gomock.Any()).Return(entities.QuoteBreakdown{}, usecase.ErrQuoteSchemeNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/calculate", bytes.NewBufferString(`{"areas":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_RecalculateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns quote with breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.POST("/v1/quotes/:id/recalculate", h.RecalculateQuote)

		uc.EXPECT().RecalculateTotals(gomock.Any(), "c-1", "q-1").Return(entities.Quote{
			ID:        "q-1",
			Status:    entities.QuoteStatusDraft,
			Breakdown: &entities.QuoteBreakdown{Total: 2049.3},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/recalculate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("quote missing at write time maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.POST("/v1/quotes/:id/recalculate", h.RecalculateQuote)

		uc.EXPECT().RecalculateTotals(gomock.Any(), "c-1", "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/recalculate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateQuoteStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.PATCH("/v1/quotes/:id/status", h.UpdateQuoteStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"paused"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("disallowed transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.PATCH("/v1/quotes/:id/status", h.UpdateQuoteStatus)

		uc.EXPECT().Transition(gomock.Any(), "c-1", "q-1", entities.QuoteStatusAccepted).Return(entities.Quote{}, usecase.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"accepted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("send success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.PATCH("/v1/quotes/:id/status", h.UpdateQuoteStatus)

		uc.EXPECT().Transition(gomock.Any(), "c-1", "q-1", entities.QuoteStatusSent).Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"sent"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "sent" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuoteProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders stored breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.GET("/v1/quotes/:id/proposal", h.GetQuoteProposal)

		uc.EXPECT().GetByID(gomock.Any(), "c-1", "q-1").Return(entities.Quote{
			ID:           "q-1",
			CustomerName: "Dana Whitfield",
			Breakdown:    &entities.QuoteBreakdown{Total: 2049.3, Deposit: 614.79, Balance: 1434.51},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/proposal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected pdf content type, got %q", ct)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected pdf body")
		}
	})

	t.Run("prices drafts without a snapshot on the fly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.GET("/v1/quotes/:id/proposal", h.GetQuoteProposal)

		draft := entities.Quote{ID: "q-1", CustomerName: "Dana Whitfield", PricingSchemeID: "ps-1"}
		uc.EXPECT().GetByID(gomock.Any(), "c-1", "q-1").Return(draft, nil)
		uc.EXPECT().Calculate(gomock.Any(), "c-1", draft).Return(entities.QuoteBreakdown{Total: 100}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/proposal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := testRouter("c-1")
		r.GET("/v1/quotes/:id/proposal", h.GetQuoteProposal)

		uc.EXPECT().GetByID(gomock.Any(), "c-1", "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/missing/proposal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrInvalidQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrSchemeNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrQuoteSchemeNotConfigured); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotEditable); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuoteError(usecase.ErrInvalidStatusTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
