package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"jobboard-http-service/config"
	"jobboard-http-service/models"
	"jobboard-http-service/routes"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestServer wires the full router against a fresh in-memory database
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.AdminUser{},
		&models.Session{},
		&models.JobPosting{},
		&models.Interview{},
		&models.ShortlistCandidate{},
		&models.AdminReport{},
		&models.ActivityLog{},
		&models.Content{},
	); err != nil {
		t.Fatalf("automigration failed: %v", err)
	}

	cfg := &config.Config{
		JWTSecretKey: "test-secret",
		UploadDir:    "uploads",
	}

	return routes.SetupRouter(db, cfg, nil), db
}

// doJSON performs a request with an optional JSON body and returns the
// recorder plus the decoded response object
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		// Array responses will not decode into a map; callers that expect
		// arrays decode the body themselves
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}
