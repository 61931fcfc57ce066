package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func jsonCtx(t *testing.T, body string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = params
	return c, w
}

// Over-long fields must be rejected as 400 before the store is touched;
// the zero-value Srv would panic if a handler got past validation.

func TestCreateBook_FieldBounds(t *testing.T) {
	bc := NewBookController(&Srv{})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name: "title_over_200",
			body: fmt.Sprintf(`{"title":%q,"author":"A","isbn":"9780000000001"}`,
				strings.Repeat("t", 300)),
			field: "title",
		},
		{
			name: "author_over_500",
			body: fmt.Sprintf(`{"title":"T","author":%q,"isbn":"9780000000001"}`,
				strings.Repeat("a", 600)),
			field: "author",
		},
		{
			name: "publisher_over_200",
			body: fmt.Sprintf(`{"title":"T","author":"A","isbn":"9780000000001","publisher":%q}`,
				strings.Repeat("p", 250)),
			field: "publisher",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := jsonCtx(t, tt.body, nil)
			bc.CreateBook(c)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.field)
		})
	}
}

func TestUpdateBook_FieldBounds(t *testing.T) {
	bc := NewBookController(&Srv{})

	c, w := jsonCtx(t, fmt.Sprintf(`{"publisher":%q}`, strings.Repeat("p", 250)),
		gin.Params{{Key: "id", Value: "1"}})
	bc.UpdateBook(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "publisher")
}

func TestCreateMember_FieldBounds(t *testing.T) {
	mc := NewMemberController(&Srv{})

	c, w := jsonCtx(t, fmt.Sprintf(`{"name":%q,"email":"x@example.com"}`,
		strings.Repeat("n", 150)), nil)
	mc.CreateMember(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name")
}

func TestUpdateMember_FieldBounds(t *testing.T) {
	mc := NewMemberController(&Srv{})

	c, w := jsonCtx(t, fmt.Sprintf(`{"email":%q}`,
		strings.Repeat("e", 121)+"@example.com"),
		gin.Params{{Key: "id", Value: "1"}})
	mc.UpdateMember(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}
