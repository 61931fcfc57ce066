package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"Gin_postgres_library_management/engine"
)

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		kind engine.Kind
		want int
	}{
		{engine.KindNotFound, http.StatusNotFound},
		{engine.KindValidation, http.StatusBadRequest},
		{engine.KindStockUnavailable, http.StatusBadRequest},
		{engine.KindDebtLimitExceeded, http.StatusBadRequest},
		{engine.KindAlreadyReturned, http.StatusBadRequest},
		{engine.KindHasActiveLoan, http.StatusBadRequest},
		{engine.KindHasOutstandingDebt, http.StatusBadRequest},
		{engine.KindStorage, http.StatusInternalServerError},
		{engine.KindUpstream, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, statusForKind(tt.kind))
		})
	}
}

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "domain_error", err: engine.E(engine.KindStockUnavailable, "book not available"), wantStatus: 400},
		{name: "engine_not_found", err: engine.E(engine.KindNotFound, "book not found"), wantStatus: 404},
		{name: "raw_record_not_found", err: gorm.ErrRecordNotFound, wantStatus: 404},
		{name: "duplicate_key", err: gorm.ErrDuplicatedKey, wantStatus: 400},
		{name: "anything_else", err: assert.AnError, wantStatus: 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			writeError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}
