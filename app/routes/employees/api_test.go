package employees

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestListAPI(t *testing.T) {
	app, store, _ := newTestApp(t)
	seedEmployee(t, store, "john.doe@example.com")
	seedEmployee(t, store, "jane@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/employees/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	payload := decodeJSON(t, resp)
	assert.Equal(t, float64(2), payload["count"])
}

func TestGetAPI(t *testing.T) {
	app, store, _ := newTestApp(t)
	seedEmployee(t, store, "john.doe@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/employees/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	payload := decodeJSON(t, resp)
	employee := payload["employee"].(map[string]interface{})
	assert.Equal(t, "john.doe@example.com", employee["email"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/employees/42", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCreateAPI(t *testing.T) {
	app, store, _ := newTestApp(t)

	req := multipartRequest(t, http.MethodPost, "/api/employees/", validFields("api@example.com"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.Len(t, store.employees, 1)
}

func TestCreateAPIValidationErrors(t *testing.T) {
	app, store, _ := newTestApp(t)

	fields := validFields("api@example.com")
	fields["DOJ"] = "1989-12-31" // before DOB
	req := multipartRequest(t, http.MethodPost, "/api/employees/", fields)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)

	payload := decodeJSON(t, resp)
	errs := payload["errors"].(map[string]interface{})
	assert.Contains(t, errs, "DOJ")
	assert.Empty(t, store.employees)
}

func TestUpdateAPI(t *testing.T) {
	app, store, _ := newTestApp(t)
	seedEmployee(t, store, "john.doe@example.com")

	fields := validFields("john.doe@example.com")
	fields["FirstName"] = "Johnny"
	req := multipartRequest(t, http.MethodPut, "/api/employees/1", fields)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Johnny", store.employees[1].FirstName)
}

func TestUpdateAPIMismatchedID(t *testing.T) {
	app, store, _ := newTestApp(t)
	seedEmployee(t, store, "john.doe@example.com")

	fields := validFields("john.doe@example.com")
	fields["Id"] = "2"
	req := multipartRequest(t, http.MethodPut, "/api/employees/1", fields)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestUpdateAPIMissingRecord(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := multipartRequest(t, http.MethodPut, "/api/employees/42", validFields("ghost@example.com"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDeleteAPI(t *testing.T) {
	app, store, _ := newTestApp(t)
	seedEmployee(t, store, "john.doe@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/employees/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, store.employees)

	// Missing ids are a silent no-op.
	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/employees/42", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
