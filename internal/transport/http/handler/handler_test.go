package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"trekkit/internal/app"
	"trekkit/internal/model"
	"trekkit/internal/pkg/jwtutil"
	"trekkit/internal/platform/rabbitmq"
	"trekkit/internal/repository"
	"trekkit/internal/transport/http/middleware"
)

const handlerTestSecret = "handler-test-secret"

type handlerEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func newHandlerEnv(t *testing.T) *handlerEnv {
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

	if err := db.AutoMigrate(
		&model.User{},
		&model.EmailVerification{},
		&model.Question{},
		&model.Answer{},
		&model.QuestionLike{},
		&model.AnswerLike{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	authService := app.NewAuthService(userRepo, verificationRepo, nopMail{}, handlerTestSecret, time.Hour)
	verificationService := app.NewVerificationService(verificationRepo, nopMail{}, 5*time.Minute)
	qnaService := app.NewQnaService(
		db,
		repository.NewQuestionRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewLikeRepository(db),
	)

	authHandler := NewAuthHandler(authService, verificationService)
	qnaHandler := NewQnaHandler(qnaService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Authenticate(handlerTestSecret, nil, userRepo))

	router.POST("/login/dologin", authHandler.Login)

	qna := router.Group("/api/qna")
	{
		qna.GET("/questions", qnaHandler.ListQuestions)
		qna.GET("/questions/:id", qnaHandler.GetQuestion)

		authed := qna.Group("", middleware.RequireAuth())
		{
			authed.POST("/questions", qnaHandler.CreateQuestion)
			authed.POST("/questions/:id/answers", qnaHandler.CreateAnswer)
			authed.POST("/questions/:id/like", qnaHandler.ToggleQuestionLike)
			authed.POST("/questions/:id/accept-answer/:aid", qnaHandler.AcceptAnswer)
		}
	}

	return &handlerEnv{db: db, router: router}
}

func (e *handlerEnv) seedUser(t *testing.T, loginID, password, nickname string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		LoginID:      loginID,
		PasswordHash: string(hash),
		Nickname:     nickname,
		Email:        loginID + "@example.com",
		Role:         model.RoleUser,
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (e *handlerEnv) tokenFor(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := jwtutil.GenerateToken(handlerTestSecret, time.Hour, user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func (e *handlerEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("X-Client-Type", "web")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Code    int            `json:"code"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return envelope.Data
}

type nopMail struct{}

func (nopMail) Publish(_ context.Context, _ rabbitmq.MailJob) error { return nil }

func TestLoginEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	env.seedUser(t, "trailfan", "correct-horse1", "trailfan")

	rec := env.do(t, http.MethodPost, "/login/dologin", "",
		`{"userid":"trailfan","password":"correct-horse1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	data := decodeEnvelope(t, rec)
	token, _ := data["token"].(string)
	if token == "" {
		t.Error("response carries no token")
	}
	if data["nickname"] != "trailfan" {
		t.Errorf("nickname = %v, want trailfan", data["nickname"])
	}
	if _, ok := data["profile"]; !ok {
		t.Error("response missing profile field")
	}

	claims, err := jwtutil.ParseToken(handlerTestSecret, token)
	if err != nil {
		t.Fatalf("returned token does not parse: %v", err)
	}
	if claims.UserID == 0 {
		t.Error("token carries no user id")
	}

	rec = env.do(t, http.MethodPost, "/login/dologin", "",
		`{"userid":"trailfan","password":"wrong-password1"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"token"`) {
		t.Error("failed login must not return a token")
	}
}

func TestAcceptAnswerEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	author := env.seedUser(t, "asker01", "password-one1", "asker")
	answerer := env.seedUser(t, "helper01", "password-two2", "helper")
	stranger := env.seedUser(t, "lurker01", "password-thr3", "lurker")

	authorToken := env.tokenFor(t, author)
	answererToken := env.tokenFor(t, answerer)
	strangerToken := env.tokenFor(t, stranger)

	rec := env.do(t, http.MethodPost, "/api/qna/questions", authorToken,
		`{"title":"Which trail to Cheonwangbong?","content":"Planning a sunrise hike."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create question status = %d, body %s", rec.Code, rec.Body.String())
	}
	questionID := uint(decodeEnvelope(t, rec)["id"].(float64))

	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/qna/questions/%d/answers", questionID), answererToken,
		`{"content":"Take the Baemsagol course, it opens at 3am in summer."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create answer status = %d, body %s", rec.Code, rec.Body.String())
	}
	answerID := uint(decodeEnvelope(t, rec)["id"].(float64))

	acceptPath := fmt.Sprintf("/api/qna/questions/%d/accept-answer/%d", questionID, answerID)

	rec = env.do(t, http.MethodPost, acceptPath, strangerToken, "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("stranger accept status = %d, want 403", rec.Code)
	}

	var question model.Question
	if err := env.db.First(&question, questionID).Error; err != nil {
		t.Fatalf("reload question: %v", err)
	}
	if question.Solved {
		t.Error("question marked solved after forbidden accept")
	}

	rec = env.do(t, http.MethodPost, acceptPath, authorToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("author accept status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	if err := env.db.First(&question, questionID).Error; err != nil {
		t.Fatalf("reload question: %v", err)
	}
	if !question.Solved {
		t.Error("question not marked solved")
	}
	var answer model.Answer
	if err := env.db.First(&answer, answerID).Error; err != nil {
		t.Fatalf("reload answer: %v", err)
	}
	if !answer.Accepted {
		t.Error("answer not marked accepted")
	}

	rec = env.do(t, http.MethodPost, acceptPath, "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous accept status = %d, want 401", rec.Code)
	}
}

func TestToggleLikeEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	author := env.seedUser(t, "asker02", "password-one1", "asker2")
	liker := env.seedUser(t, "liker02", "password-two2", "liker2")

	authorToken := env.tokenFor(t, author)
	likerToken := env.tokenFor(t, liker)

	rec := env.do(t, http.MethodPost, "/api/qna/questions", authorToken,
		`{"title":"Crampons in late March?","content":"North face of Seoraksan."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create question status = %d", rec.Code)
	}
	questionID := uint(decodeEnvelope(t, rec)["id"].(float64))

	likePath := fmt.Sprintf("/api/qna/questions/%d/like", questionID)

	rec = env.do(t, http.MethodPost, likePath, likerToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("first toggle status = %d", rec.Code)
	}
	data := decodeEnvelope(t, rec)
	if data["liked"] != true || data["likeCount"].(float64) != 1 {
		t.Errorf("first toggle = %v, want liked=true likeCount=1", data)
	}

	rec = env.do(t, http.MethodPost, likePath, likerToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("second toggle status = %d", rec.Code)
	}
	data = decodeEnvelope(t, rec)
	if data["liked"] != false || data["likeCount"].(float64) != 0 {
		t.Errorf("second toggle = %v, want liked=false likeCount=0", data)
	}
}
