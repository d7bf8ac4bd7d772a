package stub

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Handler 实现生成服务的 HTTP 契约，返回固定模板的网站代码
// 只用于本地联调，没有真实的生成逻辑
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes sets up the API endpoints.
func RegisterRoutes(router *gin.Engine, h *Handler) {
	router.POST("/generate/", h.Generate)

	// Basic health endpoint to check if the service is running
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Generate 接收 multipart 表单的 prompt 字段，返回 {"code": ...}
func (h *Handler) Generate(c *gin.Context) {
	prompt := c.PostForm("prompt")
	if strings.TrimSpace(prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "prompt 不能为空"})
		return
	}

	requestID := uuid.NewString()
	logrus.WithField("request_id", requestID).
		WithField("prompt_len", len(prompt)).
		Info("stub 收到生成请求")

	c.JSON(http.StatusOK, gin.H{
		"code":       renderStubSite(prompt),
		"request_id": requestID,
	})
}

// renderStubSite 生成一个把提示词嵌进页面的占位网站
func renderStubSite(prompt string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="zh">
<head>
  <meta charset="utf-8">
  <title>Sitee Stub</title>
</head>
<body>
  <main>
    <h1>占位页面</h1>
    <p>提示词: %s</p>
  </main>
  <footer>Made with love by sitee</footer>
</body>
</html>
`, html.EscapeString(prompt))
}
