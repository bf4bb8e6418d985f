package connection

import (
	"os"

	"taskly/controller/application"
	"taskly/controller/auth"
	"taskly/controller/dashboard"
	"taskly/controller/document"
	"taskly/controller/goal"
	"taskly/controller/stats"
	"taskly/controller/task"
	"taskly/controller/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	router := gin.Default()

	fb, err := FBConnection()
	if err != nil {
		logrus.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.SignInController(router, fb)
	auth.SignUpController(router, fb)
	auth.RefreshTokenController(router, fb)
	user.UserController(router, fb)
	task.TaskController(router, fb)
	goal.GoalController(router, fb)
	dashboard.DashboardController(router, fb)
	application.ApplicationController(router, fb)
	document.DocumentController(router, fb)
	stats.StatsController(router, fb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("taskly api listening")

	router.Run(":" + port)
}
