package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/booklist/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestError(t *testing.T) {
	t.Run("业务错误映射状态码", func(t *testing.T) {
		c, w := newContext()
		Error(c, apperrors.New(apperrors.ErrCodeBookNotFound, "Livre introuvable"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Livre introuvable", body["error"])
		assert.NotContains(t, body, "details")
	})

	t.Run("存储故障返回details", func(t *testing.T) {
		c, w := newContext()
		Error(c, apperrors.WrapCode(errors.New("timeout"), apperrors.ErrCodeStorageError, "Erreur lors de l'upload du fichier"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, "timeout", body["details"])
	})

	t.Run("普通错误隐藏内部信息", func(t *testing.T) {
		c, w := newContext()
		Error(c, errors.New("secret internal state"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret")
		assert.Len(t, c.Errors, 1)
	})
}

func TestSuccessHelpers(t *testing.T) {
	c, w := newContext()
	Created(c, gin.H{"id": 11})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(11), decode(t, w)["id"])

	c, w = newContext()
	Message(c, "ok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["message"])
}
