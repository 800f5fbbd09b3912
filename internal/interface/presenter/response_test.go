package presenter_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxank4/website-llct-sub003/internal/interface/presenter"
)

func TestOK_WrapsDataInEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := presenter.OK(c, map[string]string{"locale": "vi"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"locale": "vi"}, body["data"])

	meta, ok := body["meta"]
	require.True(t, ok, "meta key must be present")
	assert.Nil(t, meta)
}
