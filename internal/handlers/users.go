package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zapshift/zapshift-backend/internal/models"
	"github.com/zapshift/zapshift-backend/internal/stores"
)

// UserStore is the user collection access the handlers need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
}

// CreateUser creates an account for an email if none exists. Duplicate
// creation is a no-op that reports the existing account.
func CreateUser(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required,email"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		existing, err := users.FindByEmail(c.Request.Context(), input.Email)
		if err != nil && !errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if existing != nil {
			c.JSON(http.StatusOK, gin.H{
				"message":  "user already exists",
				"inserted": false,
			})
			return
		}

		user := models.User{
			Email:     input.Email,
			Role:      "user",
			CreatedAt: time.Now().UTC(),
		}

		id, err := users.Create(c.Request.Context(), &user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"insertedId": id.Hex(),
			"inserted":   true,
		})
	}
}
