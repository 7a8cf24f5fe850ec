package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devikasuresh/go-stories/models"
)

// context5 is the short per-request DB deadline used across the catalog
// handlers.
func context5(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 5*time.Second)
}

// StoryController serves the catalog's story collection.
type StoryController struct {
	db *mongo.Database
}

func NewStoryController(db *mongo.Database) *StoryController {
	return &StoryController{db: db}
}

// CreateStoryInput is the request body for adding a story to a category
type CreateStoryInput struct {
	Name   string  `json:"name"`
	Image  string  `json:"image,omitempty"`
	Rating float64 `json:"rating,omitempty"`
}

// Create adds a new story under the category in the path.
func (sc *StoryController) Create(c *gin.Context) {
	categoryID, err := primitive.ObjectIDFromHex(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
		return
	}

	ctx, cancel := context5(c)
	defer cancel()

	var category models.Category
	err = sc.db.Collection("categories").FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	if err != nil {
		log.Printf("find category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	var input CreateStoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Story name is required"})
		return
	}
	if input.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
		return
	}

	story := models.Story{
		ID:         primitive.NewObjectID(),
		Name:       input.Name,
		Image:      input.Image,
		Rating:     input.Rating,
		CategoryID: categoryID,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := sc.db.Collection("stories").InsertOne(ctx, story); err != nil {
		log.Printf("create story: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Story added successfully",
		"data":    story,
	})
}

// List returns every story in the catalog.
func (sc *StoryController) List(c *gin.Context) {
	ctx, cancel := context5(c)
	defer cancel()

	cursor, err := sc.db.Collection("stories").Find(ctx, bson.M{})
	if err != nil {
		log.Printf("list stories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	defer cursor.Close(ctx)

	stories := []models.Story{}
	if err := cursor.All(ctx, &stories); err != nil {
		log.Printf("decode stories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if len(stories) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No stories found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": stories})
}
