package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"trekkit/internal/model"
	"trekkit/internal/pkg/jwtutil"
	"trekkit/internal/repository"
)

const testSecret = "middleware-test-secret"

func newTestUserRepo(t *testing.T) (*repository.UserRepository, *model.User) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user := &model.User{
		LoginID:      "walker1",
		PasswordHash: "irrelevant",
		Nickname:     "walker",
		Email:        "walker1@example.com",
		Role:         model.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return repository.NewUserRepository(db), user
}

func newTestRouter(repo *repository.UserRepository, exempt []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Authenticate(testSecret, exempt, repo))

	whoami := func(c *gin.Context) {
		v, ok := c.Get(ContextUserKey)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, v.(*model.User).Nickname)
	}
	router.GET("/open", whoami)
	router.GET("/oauth/login", whoami)
	router.GET("/protected", RequireAuth(), whoami)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticateSetsPrincipal(t *testing.T) {
	repo, user := newTestUserRepo(t)
	router := newTestRouter(repo, nil)

	token, err := jwtutil.GenerateToken(testSecret, time.Hour, user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Client-Type", "web")

	rec := serve(router, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "walker" {
		t.Errorf("principal = %q, want %q", got, "walker")
	}
}

func TestAuthenticateReadsCookie(t *testing.T) {
	repo, user := newTestUserRepo(t)
	router := newTestRouter(repo, nil)

	token, err := jwtutil.GenerateToken(testSecret, time.Hour, user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	req.Header.Set("X-Client-Type", "app")

	rec := serve(router, req)
	if got := rec.Body.String(); got != "walker" {
		t.Errorf("principal = %q, want %q", got, "walker")
	}
}

func TestAuthenticateTolerance(t *testing.T) {
	repo, user := newTestUserRepo(t)
	router := newTestRouter(repo, nil)

	valid, err := jwtutil.GenerateToken(testSecret, time.Hour, user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	expired, err := jwtutil.GenerateToken(testSecret, -time.Minute, user.ID)
	if err != nil {
		t.Fatalf("generate expired token: %v", err)
	}
	wrongKey, err := jwtutil.GenerateToken("other-secret", time.Hour, user.ID)
	if err != nil {
		t.Fatalf("generate foreign token: %v", err)
	}
	ghost, err := jwtutil.GenerateToken(testSecret, time.Hour, user.ID+1000)
	if err != nil {
		t.Fatalf("generate ghost token: %v", err)
	}

	tests := []struct {
		name       string
		token      string
		clientType string
	}{
		{"no token", "", "web"},
		{"missing client type", valid, ""},
		{"expired token", expired, "web"},
		{"wrong secret", wrongKey, "web"},
		{"garbage token", "not-a-jwt", "web"},
		{"unknown user", ghost, "web"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/open", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			if tt.clientType != "" {
				req.Header.Set("X-Client-Type", tt.clientType)
			}

			rec := serve(router, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (middleware must not abort)", rec.Code)
			}
			if got := rec.Body.String(); got != "anonymous" {
				t.Errorf("principal = %q, want anonymous", got)
			}
		})
	}
}

func TestAuthenticateSkipsExemptPrefixes(t *testing.T) {
	repo, user := newTestUserRepo(t)
	router := newTestRouter(repo, []string{"/oauth/"})

	token, err := jwtutil.GenerateToken(testSecret, time.Hour, user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/oauth/login", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Client-Type", "web")

	rec := serve(router, req)
	if got := rec.Body.String(); got != "anonymous" {
		t.Errorf("principal on exempt path = %q, want anonymous", got)
	}
}

func TestRequireAuth(t *testing.T) {
	repo, user := newTestUserRepo(t)
	router := newTestRouter(repo, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := serve(router, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", rec.Code)
	}

	token, err := jwtutil.GenerateToken(testSecret, time.Hour, user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Client-Type", "web")

	rec = serve(router, req)
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", rec.Code)
	}
}
