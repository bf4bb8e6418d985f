package document

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

// Documents here are metadata records only; the blobs live in the
// platform's object storage and clients upload there directly.
func DocumentController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/document", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateDocument(c, firestoreClient)
		})
		routes.GET("", func(c *gin.Context) {
			ListDocuments(c, firestoreClient)
		})
		routes.DELETE("/:documentid", func(c *gin.Context) {
			DeleteDocument(c, firestoreClient)
		})
	}
}

func CreateDocument(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	var docReq dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&docReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	documentid := uuid.New().String()

	newDocument := model.Document{
		DocumentID:  documentid,
		Name:        docReq.Name,
		ContentType: docReq.ContentType,
		SizeBytes:   docReq.SizeBytes,
		StorageURL:  docReq.StorageURL,
		CreatedBy:   userId,
		UploadedAt:  time.Now(),
	}

	if _, err := firestoreClient.Collection("Documents").Doc(documentid).Set(ctx, newDocument); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Document created successfully",
		"documentID": documentid,
	})
}

func ListDocuments(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	iter := firestoreClient.Collection("Documents").
		Where("createdby", "==", userId).
		Documents(ctx)

	documents := []model.Document{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
			return
		}

		var d model.Document
		if err := doc.DataTo(&d); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse document data"})
			return
		}
		documents = append(documents, d)
	}

	c.JSON(http.StatusOK, documents)
}

func DeleteDocument(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	documentId := c.Param("documentid")

	ctx := context.Background()
	docRef := firestoreClient.Collection("Documents").Doc(documentId)
	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document"})
		return
	}

	var existing model.Document
	if err := docSnap.DataTo(&existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse document data"})
		return
	}
	if existing.CreatedBy != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Document does not belong to user"})
		return
	}

	if _, err := docRef.Delete(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
