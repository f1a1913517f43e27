package invoices

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/invoices", NewHandler(nil, svc).MountRoutes)
	return r
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func seededRepo() *stubRepo {
	repo := newStubRepo(apple)
	repo.put(Invoice{ID: 1, CompCode: "apple", Amt: 100, AddDate: repo.today})
	return repo
}

func TestListInvoices(t *testing.T) {
	rec := serve(t, newTestRouter(NewService(seededRepo(), nil, nil)), http.MethodGet, "/invoices", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoices":[{
		"id":1,"comp_code":"apple","amt":100,"paid":false,
		"add_date":"2024-03-01T00:00:00Z","paid_date":null
	}]}`, rec.Body.String())
}

func TestGetInvoiceEmbedsCompany(t *testing.T) {
	rec := serve(t, newTestRouter(NewService(seededRepo(), nil, nil)), http.MethodGet, "/invoices/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoice":{
		"id":1,"amt":100,"paid":false,
		"add_date":"2024-03-01T00:00:00Z","paid_date":null,
		"company":{"code":"apple","name":"Apple Computer","description":"Maker of OSX."}
	}}`, rec.Body.String())
}

func TestGetInvoiceErrors(t *testing.T) {
	router := newTestRouter(NewService(seededRepo(), nil, nil))

	rec := serve(t, router, http.MethodGet, "/invoices/0", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Invoice with id '0' could not be found","status":404}}`, rec.Body.String())

	rec = serve(t, router, http.MethodGet, "/invoices/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Invoice id 'abc' is not a number","status":400}}`, rec.Body.String())
}

func TestCreateInvoice(t *testing.T) {
	router := newTestRouter(NewService(seededRepo(), nil, nil))

	rec := serve(t, router, http.MethodPost, "/invoices", `{"comp_code":"apple","amt":250.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"invoice":{
		"id":2,"comp_code":"apple","amt":250.5,"paid":false,
		"add_date":"2024-03-01T00:00:00Z","paid_date":null
	}}`, rec.Body.String())
}

func TestCreateInvoiceBadRequests(t *testing.T) {
	router := newTestRouter(NewService(seededRepo(), nil, nil))

	for _, body := range []string{"", `{"amt":10}`, `{"comp_code":"apple"}`, `{"comp_code":"apple","amt":-1}`, `{"comp_code":`} {
		rec := serve(t, router, http.MethodPost, "/invoices", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"error":{"message":"Missing required information for invoice","status":400}}`, rec.Body.String(), body)
	}

	rec := serve(t, router, http.MethodPost, "/invoices", `{"comp_code":"nope","amt":10}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateInvoiceStampsPaidDate(t *testing.T) {
	svc := NewService(seededRepo(), nil, nil)
	svc.now = fixedClock(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))
	router := newTestRouter(svc)

	rec := serve(t, router, http.MethodPut, "/invoices/1", `{"amt":100,"paid":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoice":{
		"id":1,"comp_code":"apple","amt":100,"paid":true,
		"add_date":"2024-03-01T00:00:00Z","paid_date":"2024-03-09T00:00:00Z"
	}}`, rec.Body.String())

	rec = serve(t, router, http.MethodPut, "/invoices/1", `{"amt":100,"paid":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"paid_date":null`)
}

func TestUpdateInvoiceErrors(t *testing.T) {
	router := newTestRouter(NewService(seededRepo(), nil, nil))

	rec := serve(t, router, http.MethodPut, "/invoices/1", `{"amt":100}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, http.MethodPut, "/invoices/99", `{"amt":100,"paid":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Invoice with id '99' could not be found","status":404}}`, rec.Body.String())
}

func TestDeleteInvoiceHandler(t *testing.T) {
	router := newTestRouter(NewService(seededRepo(), nil, nil))

	rec := serve(t, router, http.MethodDelete, "/invoices/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, rec.Body.String())

	rec = serve(t, router, http.MethodDelete, "/invoices/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvoiceStoreFailureIsOpaque(t *testing.T) {
	repo := seededRepo()
	repo.err = errors.New("pq: relation does not exist")
	rec := serve(t, newTestRouter(NewService(repo, nil, nil)), http.MethodGet, "/invoices", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal Server Error","status":500}}`, rec.Body.String())
}
