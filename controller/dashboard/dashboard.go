package dashboard

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
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func DashboardController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/dashboard", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateDashboard(c, firestoreClient)
		})
		routes.GET("", func(c *gin.Context) {
			ListDashboards(c, firestoreClient)
		})
		routes.PUT("/:dashboardid", func(c *gin.Context) {
			UpdateDashboard(c, firestoreClient)
		})
		routes.DELETE("/:dashboardid", func(c *gin.Context) {
			DeleteDashboard(c, firestoreClient)
		})
	}
}

func CreateDashboard(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	var dashReq dto.CreateDashboardRequest
	if err := c.ShouldBindJSON(&dashReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	_, err := services.GetUserDataByUserid(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	dashboardid := uuid.New().String()

	newDashboard := model.Dashboard{
		DashboardID: dashboardid,
		Name:        dashReq.Name,
		Company:     dashReq.Company,
		Description: dashReq.Description,
		CreatedBy:   userId,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if _, err := firestoreClient.Collection("Dashboards").Doc(dashboardid).Set(ctx, newDashboard); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dashboard"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"dashboardId": dashboardid,
		"message":     "Dashboard created successfully",
	})
}

func ListDashboards(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	iter := firestoreClient.Collection("Dashboards").
		Where("createdby", "==", userId).
		Documents(ctx)

	dashboards := []model.Dashboard{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboards"})
			return
		}

		var d model.Dashboard
		if err := doc.DataTo(&d); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse dashboard data"})
			return
		}
		dashboards = append(dashboards, d)
	}

	c.JSON(http.StatusOK, dashboards)
}

func UpdateDashboard(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	dashboardId := c.Param("dashboardid")

	var updateReq dto.UpdateDashboardRequest
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updateMap := make(map[string]interface{})
	if updateReq.Name != nil {
		updateMap["name"] = *updateReq.Name
	}
	if updateReq.Company != nil {
		updateMap["company"] = *updateReq.Company
	}
	if updateReq.Description != nil {
		updateMap["description"] = *updateReq.Description
	}
	if len(updateMap) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}
	updateMap["updatedat"] = time.Now()

	ctx := context.Background()
	docRef := firestoreClient.Collection("Dashboards").Doc(dashboardId)
	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dashboard not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}

	var existing model.Dashboard
	if err := docSnap.DataTo(&existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse dashboard data"})
		return
	}
	if existing.CreatedBy != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Dashboard does not belong to user"})
		return
	}

	var updates []firestore.Update
	for field, value := range updateMap {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}
	if _, err := docRef.Update(ctx, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Dashboard updated successfully",
		"dashboardId": dashboardId,
	})
}

func DeleteDashboard(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	dashboardId := c.Param("dashboardid")

	ctx := context.Background()
	docRef := firestoreClient.Collection("Dashboards").Doc(dashboardId)
	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dashboard not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}

	var existing model.Dashboard
	if err := docSnap.DataTo(&existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse dashboard data"})
		return
	}
	if existing.CreatedBy != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Dashboard does not belong to user"})
		return
	}

	if _, err := docRef.Delete(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dashboard deleted successfully"})
}
