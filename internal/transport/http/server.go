package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "trekkit/internal/app"
	"trekkit/internal/bootstrap"
	"trekkit/internal/cache"
	"trekkit/internal/geo"
	"trekkit/internal/platform/rabbitmq"
	"trekkit/internal/repository"
	"trekkit/internal/transport/http/handler"
	"trekkit/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	cfg := app.Config

	userRepo := repository.NewUserRepository(app.MySQL)
	verificationRepo := repository.NewVerificationRepository(app.MySQL)
	mountainRepo := repository.NewMountainRepository(app.MySQL)
	bookmarkRepo := repository.NewBookmarkRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)
	commentRepo := repository.NewCommentRepository(app.MySQL)
	questionRepo := repository.NewQuestionRepository(app.MySQL)
	answerRepo := repository.NewAnswerRepository(app.MySQL)
	likeRepo := repository.NewLikeRepository(app.MySQL)
	noticeRepo := repository.NewNoticeRepository(app.MySQL)
	stepRepo := repository.NewStepRepository(app.MySQL)
	pointRepo := repository.NewPointRepository(app.MySQL)
	themeRepo := repository.NewThemeRepository(app.MySQL)

	mailPublisher := rabbitmq.NewMailPublisher(app.MQConn, cfg.RabbitMQ.MailQueue)
	mountainCache := cache.NewMountainCache(app.Redis, time.Duration(cfg.Redis.MountainTTLSeconds)*time.Second)
	geoClient := geo.NewClient(cfg.Geo.CourseAPIBaseURL, cfg.Geo.CourseAPIKey, time.Duration(cfg.Geo.TimeoutSeconds)*time.Second)

	verificationService := appsvc.NewVerificationService(
		verificationRepo,
		mailPublisher,
		time.Duration(cfg.Auth.CodeExpireMin)*time.Minute,
	)
	authService := appsvc.NewAuthService(
		userRepo,
		verificationRepo,
		mailPublisher,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.JWTExpireDay)*24*time.Hour,
	)
	mountainService := appsvc.NewMountainService(mountainRepo, mountainCache)
	bookmarkService := appsvc.NewBookmarkService(bookmarkRepo, mountainRepo)
	postService := appsvc.NewPostService(app.MySQL, postRepo)
	commentService := appsvc.NewCommentService(app.MySQL, commentRepo, postRepo)
	qnaService := appsvc.NewQnaService(app.MySQL, questionRepo, answerRepo, likeRepo)
	noticeService := appsvc.NewNoticeService(noticeRepo)
	stepService := appsvc.NewStepService(stepRepo)
	pointService := appsvc.NewPointService(app.MySQL, pointRepo)
	themeService := appsvc.NewThemeService(themeRepo)

	authHandler := handler.NewAuthHandler(authService, verificationService)
	profileHandler := handler.NewProfileHandler(authService, cfg.Upload)
	mountainHandler := handler.NewMountainHandler(mountainService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	postHandler := handler.NewPostHandler(postService, cfg.Upload)
	commentHandler := handler.NewCommentHandler(commentService)
	qnaHandler := handler.NewQnaHandler(qnaService)
	noticeHandler := handler.NewNoticeHandler(noticeService)
	stepHandler := handler.NewStepHandler(stepService)
	pointHandler := handler.NewPointHandler(pointService)
	themeHandler := handler.NewThemeHandler(themeService)
	courseHandler := handler.NewCourseHandler(geoClient)
	healthHandler := handler.NewHealthHandler(cfg.App.Name, app.StartedAt)

	router.Use(middleware.Authenticate(cfg.Auth.JWTSecret, cfg.ExemptPrefixList(), userRepo))

	router.GET("/healthz", healthHandler.Check)
	router.Static(cfg.Upload.URLPrefix, cfg.Upload.Dir)

	signup := router.Group("/signup")
	signup.POST("/register", authHandler.Register)
	signup.GET("/checkid", authHandler.CheckLoginID)
	signup.GET("/checknickname", authHandler.CheckNickname)
	signup.GET("/checkemail", authHandler.CheckEmail)
	signup.POST("/sendemail", authHandler.SendEmail)
	signup.POST("/verifyemail", authHandler.VerifyEmail)

	router.POST("/login/dologin", authHandler.Login)

	find := router.Group("/find")
	find.POST("/id", authHandler.FindID)
	find.POST("/password", authHandler.FindPassword)

	modify := router.Group("/modify", middleware.RequireAuth())
	modify.PUT("/profile", profileHandler.Update)
	modify.POST("/profileimage", profileHandler.UploadImage)
	modify.DELETE("/account", profileHandler.DeleteAccount)

	router.GET("/mountains", mountainHandler.List)
	router.GET("/mountains/:id", mountainHandler.Get)
	router.GET("/mountaincourse", mountainHandler.ListCourses)
	router.GET("/mountainimage", mountainHandler.ListImages)

	bookmarks := router.Group("/mtbookmark", middleware.RequireAuth())
	bookmarks.POST("/add", bookmarkHandler.Add)
	bookmarks.DELETE("/delete/:mountainId", bookmarkHandler.Remove)
	bookmarks.GET("/list", bookmarkHandler.List)
	bookmarks.GET("/check", bookmarkHandler.Check)

	posts := router.Group("/api/posts")
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", middleware.RequireAuth(), postHandler.Create)
	posts.PUT("/:id", middleware.RequireAuth(), postHandler.Update)
	posts.DELETE("/:id", middleware.RequireAuth(), postHandler.Delete)
	posts.POST("/image", middleware.RequireAuth(), postHandler.UploadImage)

	comments := router.Group("/api/comments")
	comments.GET("", commentHandler.ListByPost)
	comments.POST("", middleware.RequireAuth(), commentHandler.Create)
	comments.PUT("/:id", middleware.RequireAuth(), commentHandler.Update)
	comments.DELETE("/:id", middleware.RequireAuth(), commentHandler.Delete)

	qna := router.Group("/api/qna")
	qna.GET("/questions", qnaHandler.ListQuestions)
	qna.GET("/questions/:id", qnaHandler.GetQuestion)
	qna.POST("/questions", middleware.RequireAuth(), qnaHandler.CreateQuestion)
	qna.PUT("/questions/:id", middleware.RequireAuth(), qnaHandler.UpdateQuestion)
	qna.DELETE("/questions/:id", middleware.RequireAuth(), qnaHandler.DeleteQuestion)
	qna.GET("/questions/:id/answers", qnaHandler.ListAnswers)
	qna.POST("/questions/:id/answers", middleware.RequireAuth(), qnaHandler.CreateAnswer)
	qna.PUT("/answers/:id", middleware.RequireAuth(), qnaHandler.UpdateAnswer)
	qna.DELETE("/answers/:id", middleware.RequireAuth(), qnaHandler.DeleteAnswer)
	qna.POST("/questions/:id/like", middleware.RequireAuth(), qnaHandler.ToggleQuestionLike)
	qna.POST("/answers/:id/like", middleware.RequireAuth(), qnaHandler.ToggleAnswerLike)
	qna.POST("/questions/:id/accept-answer/:aid", middleware.RequireAuth(), qnaHandler.AcceptAnswer)

	notices := router.Group("/api/notices")
	notices.GET("", noticeHandler.List)
	notices.GET("/:id", noticeHandler.Get)
	notices.POST("", middleware.RequireAuth(), noticeHandler.Create)
	notices.PUT("/:id", middleware.RequireAuth(), noticeHandler.Update)
	notices.DELETE("/:id", middleware.RequireAuth(), noticeHandler.Delete)

	steps := router.Group("/step", middleware.RequireAuth())
	steps.POST("/save", stepHandler.Save)
	steps.GET("/list", stepHandler.ListRange)

	pay := router.Group("/pay", middleware.RequireAuth())
	pay.POST("/add", pointHandler.Credit)
	pay.GET("/history", pointHandler.History)

	router.GET("/theme", themeHandler.List)
	router.GET("/theme/:id", themeHandler.Get)

	router.GET("/hiking-course", courseHandler.Lookup)

	return router
}
