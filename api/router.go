// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"docutext/pdf-api/db"
	"docutext/pdf-api/middleware"
	"docutext/pdf-api/security"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	Tokens *security.TokenService
}

func NewRouter() (*API, error) {
	makeLogger()

	a := &API{
		Argon: security.NewArgonHash(),
		Tokens: security.NewTokenService(
			[]byte(viper.GetString("jwt.secret")),
			time.Duration(viper.GetInt("jwt.ttl_minutes"))*time.Minute,
		),
	}

	db, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = db

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:   []string{"Content-Length"},
			MaxAge:          12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("username"); v != "" {
					fields = append(fields, zap.String("username", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.MaxMultipartMemory = 5 << 20

	jwt := middleware.NewJWTMiddleware(db, a.Tokens)
	maxUploadSize := viper.GetInt64("upload.max_size")

	// GET /funcionando		-> Used to check if the API is alive
	router.GET("/funcionando", a.Health)

	auth := router.Group("/auth", middleware.BodySizeLimiter(1<<20))
	{
		// POST /auth/registrar 	-> Registers a new user
		auth.POST("/registrar", a.AuthRegister)

		// POST /auth/login 		-> Logs in a user and returns a bearer token
		auth.POST("/login", a.AuthLogin)

		// GET /auth/me			-> Returns the logged in user
		auth.GET("/me", jwt, a.AuthMe)
	}

	docs := router.Group("/documentos", jwt)
	{
		// POST /documentos/upload	-> Uploads a PDF and stores its extracted text
		docs.POST("/upload", middleware.BodySizeLimiter(maxUploadSize), a.DocUpload)

		// GET /documentos/		-> Lists the caller's documents
		docs.GET("/", a.DocList)

		// GET /documentos/:id		-> Returns one document with its full text
		docs.GET("/:id", a.DocFetch)

		// PUT /documentos/:id		-> Partially updates a document
		docs.PUT("/:id", a.DocEdit)

		// DELETE /documentos/:id	-> Deletes a document owned by the caller
		docs.DELETE("/:id", a.DocDelete)
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()

	var level zapcore.Level
	if err := level.Set(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
