package application

import (
	"context"
	"net/http"
	"time"

	"taskly/dto"
	"taskly/middleware"
	"taskly/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func ApplicationController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/application", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateApplication(c, firestoreClient)
		})
		routes.GET("", func(c *gin.Context) {
			ListApplications(c, firestoreClient)
		})
		routes.PUT("/:applicationid", func(c *gin.Context) {
			UpdateApplication(c, firestoreClient)
		})
		routes.DELETE("/:applicationid", func(c *gin.Context) {
			DeleteApplication(c, firestoreClient)
		})
	}
}

func CreateApplication(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	var appReq dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&appReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	applicationid := uuid.New().String()
	now := time.Now()

	statusValue := model.ApplicationStatus(appReq.Status)
	if statusValue == "" {
		statusValue = model.ApplicationApplied
	}
	appliedDate := appReq.AppliedDate
	if appliedDate == "" {
		appliedDate = now.Format(model.DateLayout)
	}

	newApplication := model.Application{
		ApplicationID: applicationid,
		DashboardID:   appReq.DashboardID,
		Company:       appReq.Company,
		Position:      appReq.Position,
		Status:        statusValue,
		AppliedDate:   appliedDate,
		PostingURL:    appReq.PostingURL,
		Notes:         appReq.Notes,
		CreatedBy:     userId,
		UpdatedAt:     now,
	}

	if _, err := firestoreClient.Collection("Applications").Doc(applicationid).Set(ctx, newApplication); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Application created successfully",
		"applicationID": applicationid,
	})
}

func ListApplications(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	iter := firestoreClient.Collection("Applications").
		Where("createdby", "==", userId).
		Documents(ctx)

	applications := []model.Application{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
			return
		}

		var a model.Application
		if err := doc.DataTo(&a); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse application data"})
			return
		}
		applications = append(applications, a)
	}

	c.JSON(http.StatusOK, applications)
}

func UpdateApplication(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	applicationId := c.Param("applicationid")

	var updateReq dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updateMap := make(map[string]interface{})
	if updateReq.Company != nil {
		updateMap["company"] = *updateReq.Company
	}
	if updateReq.Position != nil {
		updateMap["position"] = *updateReq.Position
	}
	if updateReq.Status != nil {
		updateMap["status"] = *updateReq.Status
	}
	if updateReq.AppliedDate != nil {
		updateMap["applieddate"] = *updateReq.AppliedDate
	}
	if updateReq.PostingURL != nil {
		updateMap["postingurl"] = *updateReq.PostingURL
	}
	if updateReq.Notes != nil {
		updateMap["notes"] = *updateReq.Notes
	}
	if len(updateMap) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}
	updateMap["updatedat"] = time.Now()

	ctx := context.Background()
	docRef := firestoreClient.Collection("Applications").Doc(applicationId)
	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch application"})
		return
	}

	var existing model.Application
	if err := docSnap.DataTo(&existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse application data"})
		return
	}
	if existing.CreatedBy != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Application does not belong to user"})
		return
	}

	var updates []firestore.Update
	for field, value := range updateMap {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}
	if _, err := docRef.Update(ctx, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Application updated successfully",
		"applicationID": applicationId,
	})
}

func DeleteApplication(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	applicationId := c.Param("applicationid")

	ctx := context.Background()
	docRef := firestoreClient.Collection("Applications").Doc(applicationId)
	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch application"})
		return
	}

	var existing model.Application
	if err := docSnap.DataTo(&existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse application data"})
		return
	}
	if existing.CreatedBy != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Application does not belong to user"})
		return
	}

	if _, err := docRef.Delete(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
