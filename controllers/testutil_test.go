package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/config"
	"github.com/satyarajasree/digital-marketing-backend/database"
	"github.com/satyarajasree/digital-marketing-backend/models"
	"github.com/satyarajasree/digital-marketing-backend/routes"
	"github.com/satyarajasree/digital-marketing-backend/services"
	"github.com/satyarajasree/digital-marketing-backend/utils"
)

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []sentEmail
	fail bool
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

type envelope struct {
	Success bool              `json:"success"`
	Result  json.RawMessage   `json:"result"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	mailer *fakeMailer
	cfg    *config.Config
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	utils.SetDB(db)

	cfg := &config.Config{
		ContactEmail: "team@example.com",
		FromEmail:    "noreply@example.com",
		UploadDir:    t.TempDir(),
	}
	mailer := &fakeMailer{}
	return &testEnv{
		router: routes.SetupRouter(cfg, mailer),
		db:     db,
		mailer: mailer,
		cfg:    cfg,
	}
}

func (e *testEnv) get(t *testing.T, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	e.router.ServeHTTP(w, req)
	return w, decodeEnvelope(t, w)
}

func (e *testEnv) postJSON(t *testing.T, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	e.router.ServeHTTP(w, req)
	return w, decodeEnvelope(t, w)
}

func (e *testEnv) postMultipart(t *testing.T, path string, fields map[string]string, withResume bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if withResume {
		fw, err := mw.CreateFormFile("resume", "resume.pdf")
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4 resume contents"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	e.router.ServeHTTP(w, req)
	return w, decodeEnvelope(t, w)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (e *testEnv) defaultAuthor(t *testing.T) models.Author {
	t.Helper()
	var author models.Author
	require.NoError(t, e.db.First(&author).Error)
	return author
}

func (e *testEnv) content() *services.ContentService {
	return services.NewContentService(e.db)
}

func (e *testEnv) savePost(t *testing.T, post *models.BlogPost) *models.BlogPost {
	t.Helper()
	require.NoError(t, e.content().SavePost(post))
	return post
}

func (e *testEnv) saveCategory(t *testing.T, category *models.Category) *models.Category {
	t.Helper()
	require.NoError(t, e.content().SaveCategory(category))
	return category
}

func (e *testEnv) saveTag(t *testing.T, tag *models.Tag) *models.Tag {
	t.Helper()
	require.NoError(t, e.content().SaveTag(tag))
	return tag
}
