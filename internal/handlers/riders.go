package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zapshift/zapshift-backend/internal/models"
)

// RiderStore is the rider collection access the handlers need.
type RiderStore interface {
	Create(ctx context.Context, rider *models.Rider) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.Rider, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RiderStatus) (int64, error)
}

// CreateRider records a rider application. Applications always start
// pending, regardless of any status the caller sends.
func CreateRider(riders RiderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name                string `json:"name" binding:"required"`
			Email               string `json:"email" binding:"required,email"`
			Phone               string `json:"phone"`
			Region              string `json:"region"`
			District            string `json:"district"`
			VehicleModel        string `json:"vehicleModel"`
			VehicleRegistration string `json:"vehicleRegistration"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rider := models.Rider{
			Name:                input.Name,
			Email:               input.Email,
			Phone:               input.Phone,
			Region:              input.Region,
			District:            input.District,
			VehicleModel:        input.VehicleModel,
			VehicleRegistration: input.VehicleRegistration,
			ApplicationStatus:   models.RiderStatusPending,
			CreatedAt:           time.Now().UTC(),
		}

		id, err := riders.Create(c.Request.Context(), &rider)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
	}
}

// GetRiders returns the unfiltered rider collection.
func GetRiders(riders RiderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := riders.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// UpdateRiderStatus sets a rider's application status. Values outside the
// known set are rejected at the boundary.
func UpdateRiderStatus(riders RiderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rider ID"})
			return
		}

		var input struct {
			Status string `json:"status" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := models.ParseRiderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		count, err := riders.UpdateStatus(c.Request.Context(), id, status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"modifiedCount": count})
	}
}
