package user

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"taskly/dto"
	"taskly/middleware"
	"taskly/model"
	"taskly/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func UserController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/user", middleware.AccessTokenMiddleware())
	{
		routes.GET("/profile", func(c *gin.Context) {
			GetProfile(c, firestoreClient)
		})
		routes.PUT("/profile", func(c *gin.Context) {
			UpdateProfileUser(c, firestoreClient)
		})
		routes.DELETE("/account", func(c *gin.Context) {
			DeleteUser(c, firestoreClient)
		})
	}
}

func GetProfile(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	docSnap, err := services.GetUserDataByUserid(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	var user model.User
	if err := docSnap.DataTo(&user); err != nil {
		c.JSON(500, gin.H{"error": "Failed to parse user data"})
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Profile:   user.Profile,
		Role:      user.Role,
		IsActive:  user.Active,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}

func UpdateProfileUser(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	var updateProfile dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&updateProfile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if updateProfile.Name == "" && updateProfile.Password == "" && updateProfile.Profile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}

	if updateProfile.Name != "" {
		updateProfile.Name = strings.TrimSpace(updateProfile.Name)
		if len(updateProfile.Name) < 2 || len(updateProfile.Name) > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be between 2 and 100 characters"})
			return
		}
	}

	if updateProfile.Profile != "" {
		updateProfile.Profile = strings.TrimSpace(updateProfile.Profile)
		if len(updateProfile.Profile) > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Profile description must not exceed 500 characters"})
			return
		}
	}

	ctx := context.Background()
	userDocRef := firestoreClient.Collection("Users").Doc(userId)

	updateMap := make(map[string]interface{})
	if updateProfile.Name != "" {
		updateMap["name"] = updateProfile.Name
	}
	if updateProfile.Profile != "" {
		updateMap["profile"] = updateProfile.Profile
	}
	if updateProfile.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(updateProfile.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
			return
		}
		updateMap["password"] = string(hashedPassword)
	}

	err := firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		userDoc, err := tx.Get(userDocRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.New("user not found")
			}
			return errors.New("failed to retrieve user")
		}
		if !userDoc.Exists() {
			return errors.New("user not found")
		}

		var updates []firestore.Update
		for field, value := range updateMap {
			updates = append(updates, firestore.Update{
				Path:  field,
				Value: value,
			})
		}
		return tx.Update(userDocRef, updates)
	})

	if err != nil {
		switch err.Error() {
		case "user not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case "failed to retrieve user":
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"userid":  userId,
	})
}

func DeleteUser(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	// Soft delete: the account is marked banned/removed rather than
	// erasing the document, so owned records keep a resolvable owner.
	ctx := context.Background()
	_, err := firestoreClient.Collection("Users").Doc(userId).Update(ctx, []firestore.Update{
		{Path: "active", Value: "2"},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	// Revoke the refresh token so the session cannot be renewed.
	firestoreClient.Collection("refreshTokens").Doc(userId).Update(ctx, []firestore.Update{
		{Path: "Revoked", Value: true},
	})

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
