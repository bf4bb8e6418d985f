package goal

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

func GoalController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/goal", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateGoal(c, firestoreClient)
		})
		routes.GET("", func(c *gin.Context) {
			ListGoals(c, firestoreClient)
		})
		routes.PUT("/:goalid", func(c *gin.Context) {
			UpdateGoal(c, firestoreClient)
		})
		routes.DELETE("/:goalid", func(c *gin.Context) {
			DeleteGoal(c, firestoreClient)
		})
	}
}

func CreateGoal(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	var goalReq dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&goalReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	goalid := uuid.New().String()

	// current_value always starts at zero; it is derived from tasks on
	// the next stats fetch and never accepted from the client.
	newGoal := model.Goal{
		GoalID:       goalid,
		Title:        goalReq.Title,
		Category:     model.GoalCategory(goalReq.Category),
		Period:       model.GoalPeriod(goalReq.Period),
		TargetValue:  goalReq.TargetValue,
		CurrentValue: 0,
		StartDate:    goalReq.StartDate,
		EndDate:      goalReq.EndDate,
		LastUpdated:  time.Now(),
		CreatedBy:    userId,
	}

	if _, err := firestoreClient.Collection("Goals").Doc(goalid).Set(ctx, newGoal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Goal created successfully",
		"goalID":  goalid,
	})
}

func ListGoals(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	period := model.GoalPeriod(c.Query("period"))

	ctx := context.Background()
	goals, err := services.GetGoalsByUser(ctx, firestoreClient, userId, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}

	responses := make([]dto.GoalProgressResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, dto.NewGoalProgressResponse(g))
	}

	c.JSON(http.StatusOK, responses)
}

func UpdateGoal(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	goalId := c.Param("goalid")

	var updateReq dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updateMap := make(map[string]interface{})
	if updateReq.Title != nil {
		updateMap["title"] = *updateReq.Title
	}
	if updateReq.Category != nil {
		updateMap["category"] = *updateReq.Category
	}
	if updateReq.Period != nil {
		updateMap["period"] = *updateReq.Period
	}
	if updateReq.TargetValue != nil {
		updateMap["targetvalue"] = *updateReq.TargetValue
	}
	if updateReq.StartDate != nil {
		updateMap["startdate"] = *updateReq.StartDate
	}
	if updateReq.EndDate != nil {
		updateMap["enddate"] = *updateReq.EndDate
	}
	if len(updateMap) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}
	updateMap["lastupdated"] = time.Now()

	ctx := context.Background()
	docRef := firestoreClient.Collection("Goals").Doc(goalId)
	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goal"})
		return
	}

	var existing model.Goal
	if err := docSnap.DataTo(&existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse goal data"})
		return
	}
	if existing.CreatedBy != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Goal does not belong to user"})
		return
	}

	var updates []firestore.Update
	for field, value := range updateMap {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}
	if _, err := docRef.Update(ctx, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Goal updated successfully",
		"goalID":  goalId,
	})
}

func DeleteGoal(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	goalId := c.Param("goalid")

	ctx := context.Background()
	docRef := firestoreClient.Collection("Goals").Doc(goalId)
	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goal"})
		return
	}

	var existing model.Goal
	if err := docSnap.DataTo(&existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse goal data"})
		return
	}
	if existing.CreatedBy != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Goal does not belong to user"})
		return
	}

	if _, err := docRef.Delete(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
