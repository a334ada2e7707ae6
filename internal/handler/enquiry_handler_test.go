package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BossEnterprises/chataru_api/internal/models"
)

func newEnquiryRouter(store *fakeEnquiryStore) *gin.Engine {
	h := NewEnquiryHandler(store)
	r := gin.New()
	r.POST("/api/enquiry", h.Create)
	r.GET("/api/admin/enquiries", h.List)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateEnquiryStoresRow(t *testing.T) {
	store := &fakeEnquiryStore{}
	r := newEnquiryRouter(store)

	w := postJSON(r, "/api/enquiry", `{
		"name": "Ravi",
		"email": "ravi@example.com",
		"phone": "+91 12345",
		"message": "Interested in bulk order",
		"sourcePage": "/catalog"
	}`)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"success": true, "message": "Enquiry received"}`, w.Body.String())

	require.Len(t, store.enquiries, 1)
	e := store.enquiries[0]
	assert.Equal(t, "Ravi", e.Name)
	assert.Equal(t, "ravi@example.com", e.Email)
	assert.Equal(t, "+91 12345", e.Phone)
	assert.Equal(t, "Interested in bulk order", e.Message)
	assert.Equal(t, "/catalog", e.SourcePage)
}

func TestCreateEnquiryDefaultsOptionalFields(t *testing.T) {
	store := &fakeEnquiryStore{}
	r := newEnquiryRouter(store)

	w := postJSON(r, "/api/enquiry", `{"name": "A", "email": "a@b.c", "message": "hello"}`)

	assert.Equal(t, 200, w.Code)
	require.Len(t, store.enquiries, 1)
	assert.Equal(t, "", store.enquiries[0].Phone)
	assert.Equal(t, "", store.enquiries[0].SourcePage)
}

func TestCreateEnquiryValidation(t *testing.T) {
	cases := []struct {
		label string
		body  string
	}{
		{"missing name", `{"email": "a@b.c", "message": "hi"}`},
		{"missing email", `{"name": "A", "message": "hi"}`},
		{"missing message", `{"name": "A", "email": "a@b.c"}`},
		{"empty message", `{"name": "A", "email": "a@b.c", "message": ""}`},
		{"not json", `name=A`},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			store := &fakeEnquiryStore{}
			r := newEnquiryRouter(store)

			w := postJSON(r, "/api/enquiry", tc.body)

			assert.Equal(t, 400, w.Code)
			assert.Empty(t, store.enquiries, "no row may be stored on validation failure")
		})
	}
}

func TestCreateEnquiryStoreFailure(t *testing.T) {
	store := &fakeEnquiryStore{insertErr: errors.New("connection refused")}
	r := newEnquiryRouter(store)

	w := postJSON(r, "/api/enquiry", `{"name": "A", "email": "a@b.c", "message": "hi"}`)

	assert.Equal(t, 500, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused", "internal detail must not leak")
}

func TestListEnquiriesPreservesOrder(t *testing.T) {
	store := &fakeEnquiryStore{enquiries: []models.Enquiry{
		{ID: 3, Name: "C", CreatedAt: time.Unix(3, 0)},
		{ID: 2, Name: "B", CreatedAt: time.Unix(2, 0)},
		{ID: 1, Name: "A", CreatedAt: time.Unix(1, 0)},
	}}
	r := newEnquiryRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/enquiries", nil))

	assert.Equal(t, 200, w.Code)
	var got []models.Enquiry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestListEnquiriesEmptyIsArray(t *testing.T) {
	r := newEnquiryRouter(&fakeEnquiryStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/enquiries", nil))

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
