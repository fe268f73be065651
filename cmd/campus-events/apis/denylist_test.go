package apis

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-events-backend/cmd/campus-events/profanity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newUploadContext(t *testing.T, field, content string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if field != "" {
		part, err := writer.CreateFormFile(field, "denylist.csv")
		assert.NoError(t, err)
		_, err = part.Write([]byte(content))
		assert.NoError(t, err)
	}
	writer.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/denylist", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestDenylistAPI_Upload(t *testing.T) {
	holder := profanity.NewHolder(profanity.Denylist{"spam"})
	c, rec := newUploadContext(t, "csvfile", "word\nScam\nfraud\nscam")

	err := NewDenylistAPI(holder).uploadDenylist(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"words":2`)
	assert.Equal(t, profanity.Denylist{"scam", "fraud"}, holder.Snapshot())
}

func TestDenylistAPI_Upload_MissingFile(t *testing.T) {
	holder := profanity.NewHolder(profanity.Denylist{"spam"})
	c, rec := newUploadContext(t, "", "")

	err := NewDenylistAPI(holder).uploadDenylist(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, profanity.Denylist{"spam"}, holder.Snapshot())
}

func TestDenylistAPI_Upload_InvalidCSV(t *testing.T) {
	holder := profanity.NewHolder(profanity.Denylist{"spam"})
	c, rec := newUploadContext(t, "csvfile", "word\n\"unclosed")

	err := NewDenylistAPI(holder).uploadDenylist(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, profanity.Denylist{"spam"}, holder.Snapshot())
}

func TestDenylistAPI_Get(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := NewDenylistAPI(profanity.NewHolder(profanity.Denylist{"spam", "scam"})).getDenylist(c)

	assert.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"data":["spam","scam"]`)
}
