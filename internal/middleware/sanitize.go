package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"marketplace/internal/pkg/response"
)

// SanitizeJSON strips markup from every string of a JSON object body on
// write requests. Text around the markup is kept verbatim, so "<3 & more"
// survives unchanged.
func SanitizeJSON() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}
		if c.Request.Body == nil || !strings.HasPrefix(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.CustomError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid body")
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.UseNumber()
		var body any
		if err := dec.Decode(&body); err != nil {
			response.CustomError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Malformed JSON")
			return
		}

		clean, _ := json.Marshal(sanitizeValue(policy, body))
		c.Request.Body = io.NopCloser(bytes.NewReader(clean))
		c.Request.ContentLength = int64(len(clean))

		c.Next()
	}
}

func sanitizeValue(policy *bluemonday.Policy, v any) any {
	switch t := v.(type) {
	case string:
		return stripMarkup(policy, t)
	case map[string]any:
		for k, item := range t {
			t[k] = sanitizeValue(policy, item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = sanitizeValue(policy, item)
		}
		return t
	}
	return v
}

// stripMarkup removes tags and returns plain text. Sanitize escapes the text
// it keeps, so the result is unescaped and cleaned again until stable; escaped
// markup such as "&lt;b&gt;" cannot come back as a tag.
func stripMarkup(policy *bluemonday.Policy, s string) string {
	for i := 0; i < 4 && strings.ContainsAny(s, "<>"); i++ {
		clean := html.UnescapeString(policy.Sanitize(s))
		if clean == s {
			break
		}
		s = clean
	}
	return s
}
