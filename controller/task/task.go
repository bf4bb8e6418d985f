package task

import (
	"context"
	"net/http"
	"time"

	"taskly/dto"
	"taskly/middleware"
	"taskly/model"
	"taskly/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TaskController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/task", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, firestoreClient)
		})
		routes.GET("", func(c *gin.Context) {
			ListTasks(c, firestoreClient)
		})
		routes.PUT("/:taskid", func(c *gin.Context) {
			UpdateTask(c, firestoreClient)
		})
		routes.DELETE("/:taskid", func(c *gin.Context) {
			DeleteTask(c, firestoreClient)
		})
	}
}

func CreateTask(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	var taskReq dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	_, err := services.GetUserDataByUserid(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	taskid := uuid.New().String()
	now := time.Now()

	// Form defaults: a new task starts today and is Not Started unless
	// the client says otherwise.
	startDate := taskReq.StartDate
	if startDate == "" {
		startDate = now.Format(model.DateLayout)
	}
	statusValue := model.TaskStatus(taskReq.Status)
	if statusValue == "" {
		statusValue = model.StatusNotStarted
	}

	newtask := model.Task{
		TaskID:          taskid,
		DashboardID:     taskReq.DashboardID,
		Title:           taskReq.Title,
		Description:     taskReq.Description,
		StartDate:       startDate,
		EndDate:         taskReq.EndDate,
		DateCompleted:   taskReq.DateCompleted,
		DurationMinutes: taskReq.DurationMinutes,
		Difficulty:      model.Difficulty(taskReq.Difficulty),
		Status:          statusValue,
		SkillsAcquired:  taskReq.SkillsAcquired,
		KeyChallenges:   taskReq.KeyChallenges,
		KeyTakeaways:    taskReq.KeyTakeaways,
		CreatedBy:       userId,
		UpdatedAt:       now,
	}

	_, err = firestoreClient.Collection("Tasks").Doc(taskid).Set(ctx, newtask)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"taskID":  taskid,
	})
}

func ListTasks(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	var listReq dto.ListTasksRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	ctx := context.Background()
	tasks, err := services.GetTasksByUser(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	tasks = services.FilterTasks(tasks, listReq.Search, model.Difficulty(listReq.Difficulty))
	if tasks == nil {
		tasks = []model.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

func UpdateTask(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("taskid")

	var updateReq dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updateMap := make(map[string]interface{})
	if updateReq.Title != nil {
		updateMap["title"] = *updateReq.Title
	}
	if updateReq.Description != nil {
		updateMap["description"] = *updateReq.Description
	}
	if updateReq.StartDate != nil {
		updateMap["startdate"] = *updateReq.StartDate
	}
	if updateReq.EndDate != nil {
		updateMap["enddate"] = *updateReq.EndDate
	}
	if updateReq.DateCompleted != nil {
		updateMap["datecompleted"] = *updateReq.DateCompleted
	}
	if updateReq.DurationMinutes != nil {
		updateMap["durationminutes"] = *updateReq.DurationMinutes
	}
	if updateReq.Difficulty != nil {
		updateMap["difficulty"] = *updateReq.Difficulty
	}
	if updateReq.Status != nil {
		updateMap["status"] = *updateReq.Status
	}
	if updateReq.SkillsAcquired != nil {
		updateMap["skillsacquired"] = *updateReq.SkillsAcquired
	}
	if updateReq.KeyChallenges != nil {
		updateMap["keychallenges"] = *updateReq.KeyChallenges
	}
	if updateReq.KeyTakeaways != nil {
		updateMap["keytakeaways"] = *updateReq.KeyTakeaways
	}
	if len(updateMap) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}
	updateMap["updatedat"] = time.Now()

	ctx := context.Background()
	docRef := firestoreClient.Collection("Tasks").Doc(taskId)
	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		return
	}

	var existing model.Task
	if err := docSnap.DataTo(&existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse task data"})
		return
	}
	if existing.CreatedBy != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Task does not belong to user"})
		return
	}

	var updates []firestore.Update
	for field, value := range updateMap {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}
	if _, err := docRef.Update(ctx, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"taskID":  taskId,
	})
}

func DeleteTask(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("taskid")

	ctx := context.Background()
	docRef := firestoreClient.Collection("Tasks").Doc(taskId)
	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		return
	}

	var existing model.Task
	if err := docSnap.DataTo(&existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse task data"})
		return
	}
	if existing.CreatedBy != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Task does not belong to user"})
		return
	}

	if _, err := docRef.Delete(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
