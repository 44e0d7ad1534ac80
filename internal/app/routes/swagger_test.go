package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uninits/backend/internal/app/routes"
)

func TestSetupSwaggerServesDocJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupSwagger(router)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uniNITS Backend API")
	assert.Contains(t, w.Body.String(), "/attendance/update")
}
