package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeJSON())
	r.Any("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", b)
	})
	return r
}

func TestSanitizeJSON_StripsMarkup(t *testing.T) {
	r := echoRouter()

	body := `{"content":"<script>alert(1)</script>Hello <b>there</b>","booking_id":12345678901,"tags":["<i>x</i>","plain"]}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"content":"Hello there","booking_id":12345678901,"tags":["x","plain"]}`, w.Body.String())
}

func TestSanitizeJSON_KeepsPlainText(t *testing.T) {
	r := echoRouter()

	req := httptest.NewRequest(http.MethodPatch, "/echo", strings.NewReader(`{"comment":"Tom's & Jerry's"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.JSONEq(t, `{"comment":"Tom's & Jerry's"}`, w.Body.String())
}

func TestSanitizeJSON_RejectsMalformed(t *testing.T) {
	r := echoRouter()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"content":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeJSON_IgnoresReads(t *testing.T) {
	r := echoRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSanitizeJSON_KeepsTextAroundBrackets(t *testing.T) {
	r := echoRouter()

	body := `{"comment":"Loved it <3 & would rebook","content":"price < 50 & time > 2h","note":"<3 & more"}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, body, w.Body.String())
}

func TestSanitizeJSON_EscapedMarkupStaysStripped(t *testing.T) {
	r := echoRouter()

	body := `{"content":"<b>&lt;script&gt;alert(1)&lt;/script&gt;</b>ok"}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"content":"ok"}`, w.Body.String())
}
