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

// ParcelStore is the parcel collection access the handlers need.
type ParcelStore interface {
	List(ctx context.Context, senderEmail string) ([]models.Parcel, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error)
	Create(ctx context.Context, parcel *models.Parcel) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, trackingID string) (int64, error)
}

// GetParcels lists parcels, optionally filtered by ?email= on senderEmail.
func GetParcels(parcels ParcelStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")

		result, err := parcels.List(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GetParcel fetches one parcel by id. Absent documents map to 404.
func GetParcel(parcels ParcelStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parcel ID"})
			return
		}

		parcel, err := parcels.Get(c.Request.Context(), id)
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parcel not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, parcel)
	}
}

// CreateParcel persists a new parcel. The creation timestamp is stamped
// server-side; caller-supplied values for it are ignored.
func CreateParcel(parcels ParcelStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			SenderEmail string `json:"senderEmail" binding:"required,email"`
			ParcelName  string `json:"parcelName" binding:"required"`
			Cost        string `json:"cost" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		parcel := models.Parcel{
			SenderEmail:   input.SenderEmail,
			ParcelName:    input.ParcelName,
			Cost:          input.Cost,
			PaymentStatus: models.PaymentStatusUnpaid,
			CreatedAt:     time.Now().UTC(),
		}

		id, err := parcels.Create(c.Request.Context(), &parcel)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
	}
}

// DeleteParcel removes at most one parcel. Deleting an unknown id is not an
// error; the acknowledgment carries a zero count.
func DeleteParcel(parcels ParcelStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parcel ID"})
			return
		}

		count, err := parcels.Delete(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"deletedCount": count})
	}
}
