package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campus-events-backend/cmd/campus-events/apis"
	"campus-events-backend/cmd/campus-events/profanity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockServer(t *testing.T) (*httptest.Server, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	e := newServer(EnvCfg{JWTSecret: "secret", LogLevel: "off"}, db, time.UTC, profanity.Denylist{"spam"})
	srv := httptest.NewServer(e)
	t.Cleanup(func() {
		srv.Close()
		sqlDB.Close()
	})
	return srv, mock
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, apis.Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestServer_RouteGuards(t *testing.T) {
	srv, mock := newMockServer(t)

	tests := []struct {
		name     string
		method   string
		path     string
		role     string
		auth     bool
		expected int
	}{
		{name: "create needs token", method: http.MethodPost, path: "/api/v1/event", expected: http.StatusUnauthorized},
		{name: "policy read needs token", method: http.MethodGet, path: "/api/v1/policy", expected: http.StatusUnauthorized},
		{name: "policy write needs admin", method: http.MethodPut, path: "/api/v1/policy", auth: true, role: apis.RoleModerator, expected: http.StatusForbidden},
		{name: "moderation needs moderator", method: http.MethodGet, path: "/api/v1/moderation/events", auth: true, expected: http.StatusForbidden},
		{name: "denylist needs admin", method: http.MethodPost, path: "/api/v1/admin/denylist", auth: true, role: apis.RoleModerator, expected: http.StatusForbidden},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nope", expected: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader("{}"))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			if tt.auth {
				req.Header.Set("Authorization", tokenFor(t, tt.role))
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tt.expected, resp.StatusCode)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServer_ListEvents(t *testing.T) {
	srv, mock := newMockServer(t)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE status = \$1`).
		WithArgs("approved").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "status"}).
			AddRow("event-1", "Open Night", "approved"))

	resp, err := http.Get(srv.URL + "/api/v1/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
