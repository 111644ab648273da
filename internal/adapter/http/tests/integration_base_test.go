//go:build integration
// +build integration

package tests

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	authadapter "github.com/iain-kirkham/Mental-Health-App/internal/adapter/auth"
	dbadapter "github.com/iain-kirkham/Mental-Health-App/internal/adapter/db"
	httpadapter "github.com/iain-kirkham/Mental-Health-App/internal/adapter/http"
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/handlers"
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/middleware"
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/validation"
	appservice "github.com/iain-kirkham/Mental-Health-App/internal/app/service"
	"github.com/iain-kirkham/Mental-Health-App/pkg/translator"
)

// userHeader lets a test pick the caller; the real API derives it from the
// bearer token.
const userHeader = "X-Test-User"

type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	testDBName string
	router     *gin.Engine
}

func (s *IntegrationSuiteBase) SetupSuite() {
	host := envOrDefault("MYSQL_HOST", "127.0.0.1")
	port := envOrDefault("MYSQL_PORT", "3306")
	rootUser := envOrDefault("MYSQL_ROOT_USER", "root")
	rootPassword := envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "mental_planner")+"_test")
	params := envOrDefault("MYSQL_PARAMS", "parseTime=true&loc=UTC&multiStatements=true")

	adminDB, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, "", params))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	s.Require().NoError(err)

	db, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, database, params))
	s.Require().NoError(err)
	s.DB = db
	s.testDBName = database

	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})
	validation.RegisterJSONTagNames()
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}

	// Drop test database to keep local environment clean after integration runs.
	if s.adminDB != nil && s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
	}

	if s.adminDB != nil {
		s.Require().NoError(s.adminDB.Close())
	}
}

// SetupTest rebuilds the schema from the embedded migrations and a router
// wired to real repositories.
func (s *IntegrationSuiteBase) SetupTest() {
	_, err := s.DB.Exec(`
DROP TABLE IF EXISTS sub_tasks;
DROP TABLE IF EXISTS tasks;
DROP TABLE IF EXISTS pomodoro_sessions;
DROP TABLE IF EXISTS mood_entries;
DROP TABLE IF EXISTS schema_migrations;
`)
	s.Require().NoError(err)
	s.Require().NoError(dbadapter.Migrate(s.DB))

	resolver := authadapter.NewContextResolver()
	router := gin.New()
	router.Use(middleware.LanguageMiddleware())
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:       handlers.NewHealthHandler(s.DB),
		MoodEntry:    handlers.NewMoodEntryHandler(appservice.NewMoodEntryService(dbadapter.NewMoodEntryRepository(s.DB), resolver)),
		FocusSession: handlers.NewFocusSessionHandler(appservice.NewFocusSessionService(dbadapter.NewFocusSessionRepository(s.DB), resolver)),
		Task:         handlers.NewTaskHandler(appservice.NewTaskService(dbadapter.NewTaskRepository(s.DB))),
	}, testIdentity())

	s.router = router
}

// Request sends body as JSON on behalf of user. An empty user sends the
// request unauthenticated.
func (s *IntegrationSuiteBase) Request(method, target, user, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set(userHeader, user)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// testIdentity stands in for the JWT middleware and binds the subject named
// by userHeader to the request.
func testIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if subject := c.GetHeader(userHeader); subject != "" {
			ctx := authadapter.WithIdentity(c.Request.Context(), authadapter.Identity{Subject: subject})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func projectRoot() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func mysqlDSN(user, password, host, port, database, params string) string {
	if database == "" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/?%s", user, password, host, port, params)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
