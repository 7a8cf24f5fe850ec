package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devikasuresh/go-stories/middleware"
	"github.com/devikasuresh/go-stories/store"
)

// UserController serves user records to authenticated callers. Password
// hashes and OTP fields never appear in responses (excluded by the model's
// JSON tags).
type UserController struct {
	users store.UserStore
}

func NewUserController(users store.UserStore) *UserController {
	return &UserController{users: users}
}

// List returns all user records.
func (u *UserController) List(c *gin.Context) {
	users, err := u.users.List(c.Request.Context())
	if err != nil {
		log.Printf("list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Profile returns the authenticated caller's record.
func (u *UserController) Profile(c *gin.Context) {
	id := c.GetString(middleware.CtxUserID)
	user, err := u.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}
