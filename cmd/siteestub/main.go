package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Zacy-Sokach/Sitee/internal/stub"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// siteestub 是本地联调用的生成服务替身
// 实现和线上生成服务相同的 HTTP 契约，但只返回占位网站
func main() {
	addr := flag.String("addr", ":8000", "监听地址")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	stub.RegisterRoutes(router, stub.NewHandler())

	logrus.WithField("addr", *addr).Info("siteestub 启动")
	if err := router.Run(*addr); err != nil {
		fmt.Printf("服务启动失败: %v\n", err)
		os.Exit(1)
	}
}
