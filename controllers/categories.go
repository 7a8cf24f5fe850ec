package controllers

import (
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

// CategoryController serves the catalog's category collection. This is
// plain data-access glue behind the access guard; all state-transition
// logic lives in the auth service.
type CategoryController struct {
	db *mongo.Database
}

func NewCategoryController(db *mongo.Database) *CategoryController {
	return &CategoryController{db: db}
}

// CreateCategoryInput is the request body for creating a category
type CreateCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// List returns all categories.
func (cc *CategoryController) List(c *gin.Context) {
	ctx, cancel := context5(c)
	defer cancel()

	cursor, err := cc.db.Collection("categories").Find(ctx, bson.M{})
	if err != nil {
		log.Printf("list categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		log.Printf("decode categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Create adds a new category.
func (cc *CategoryController) Create(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}
	if input.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
		return
	}

	category := models.Category{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   time.Now().UTC(),
	}

	ctx, cancel := context5(c)
	defer cancel()

	if _, err := cc.db.Collection("categories").InsertOne(ctx, category); err != nil {
		log.Printf("create category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"message":  "Category created successfully",
		"category": category,
	})
}

// ListStories returns all stories under a category.
func (cc *CategoryController) ListStories(c *gin.Context) {
	categoryID, err := primitive.ObjectIDFromHex(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
		return
	}

	ctx, cancel := context5(c)
	defer cancel()

	var category models.Category
	err = cc.db.Collection("categories").FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	if err != nil {
		log.Printf("find category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	cursor, err := cc.db.Collection("stories").Find(ctx, bson.M{"category": categoryID})
	if err != nil {
		log.Printf("find stories: %v", err)
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
		c.JSON(http.StatusNotFound, gin.H{"message": "No stories found for this category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": stories})
}
