// Package routesはroutingを行います。
package routes

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-inmem-todo/backend/internal/handlers"
	"go-inmem-todo/backend/internal/services"
)

// CORSConfig はすべてのオリジン、メソッド、ヘッダーを許可するCORS設定を返します。
func CORSConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(todoService *services.TodoService, logger *log.Logger) *gin.Engine {
	r := gin.New()
	// ロガーを最外側に置き、Recoveryで500になったリクエストとCORSで中断されたプリフライトも記録する
	r.Use(RequestLogger(logger))
	r.Use(gin.Recovery())

	// CORS対策
	r.Use(cors.New(CORSConfig()))

	todoHandler := handlers.NewTodoHandler(todoService)

	r.GET("/todos", todoHandler.GetTodosHandler)
	r.POST("/todos", todoHandler.CreateTodoHandler)
	r.PUT("/todos/:id", todoHandler.ToggleTodoHandler)
	r.DELETE("/todos/:id", todoHandler.DeleteTodoHandler)

	return r
}
