package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zapshift/zapshift-backend/internal/middleware"
	"github.com/zapshift/zapshift-backend/internal/models"
	"github.com/zapshift/zapshift-backend/internal/services"
	"github.com/zapshift/zapshift-backend/internal/stores"
	"github.com/zapshift/zapshift-backend/pkg/utils"
)

// Currency for all checkout sessions. Costs are decimal strings in major
// units of a two-decimal currency.
const checkoutCurrency = "usd"

// PaymentStore is the payment collection access the handlers need.
type PaymentStore interface {
	Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

// CheckoutProvider creates and retrieves hosted checkout sessions with the
// payment provider.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, req services.CheckoutRequest) (*services.CheckoutSession, error)
	RetrieveSession(ctx context.Context, id string) (*services.CheckoutSession, error)
}

// toMinorUnits converts a decimal cost string to integer minor units,
// assuming a two-decimal currency.
func toMinorUnits(cost string) (int64, error) {
	f, err := strconv.ParseFloat(cost, 64)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, errors.New("cost must be positive")
	}
	return int64(math.Round(f * 100)), nil
}

// CreateCheckoutSession requests a hosted checkout session and returns its
// URL. No local record is written; state lives with the provider until
// verification.
func CreateCheckoutSession(checkout CheckoutProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Cost        string `json:"cost" binding:"required"`
			ParcelName  string `json:"parcelName" binding:"required"`
			ParcelID    string `json:"parcelId" binding:"required"`
			SenderEmail string `json:"senderEmail" binding:"required,email"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		amount, err := toMinorUnits(input.Cost)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cost"})
			return
		}

		sess, err := checkout.CreateSession(c.Request.Context(), services.CheckoutRequest{
			Amount:        amount,
			Currency:      checkoutCurrency,
			ParcelID:      input.ParcelID,
			ParcelName:    input.ParcelName,
			CustomerEmail: input.SenderEmail,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": sess.URL})
	}
}

// VerifyPayment finalizes a checkout session. On the first verification of a
// paid session it records the payment and stamps the parcel with a tracking
// id; repeat calls for the same transaction return the already-processed
// branch without touching the store again.
func VerifyPayment(checkout CheckoutProvider, parcels ParcelStore, payments PaymentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id query parameter required"})
			return
		}

		sess, err := checkout.RetrieveSession(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if !sess.Paid() {
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"status":  sess.PaymentStatus,
			})
			return
		}

		transactionID := sess.PaymentIntentID
		if transactionID == "" {
			transactionID = sess.ID
		}

		parcelID, err := primitive.ObjectIDFromHex(sess.Metadata["parcelId"])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid parcel id in session metadata"})
			return
		}

		trackingID, err := utils.GenerateTrackingID()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		payment := models.Payment{
			TransactionID: transactionID,
			Amount:        sess.AmountTotal,
			Currency:      sess.Currency,
			CustomerEmail: sess.CustomerEmail,
			ParcelID:      parcelID.Hex(),
			ParcelName:    sess.Metadata["parcelName"],
			TrackingID:    trackingID,
			PaidAt:        time.Now().UTC(),
		}

		// Insert first: the unique transactionId index is the idempotency
		// guard, so the parcel is only stamped by the call that wins.
		insertedID, err := payments.Insert(c.Request.Context(), &payment)
		if errors.Is(err, stores.ErrDuplicateTransaction) {
			existing, err := payments.FindByTransactionID(c.Request.Context(), transactionID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"message":    "payment already processed",
				"trackingId": existing.TrackingID,
			})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		modified, err := parcels.MarkPaid(c.Request.Context(), parcelID, trackingID)
		if err != nil {
			logrus.WithError(err).WithField("parcelId", parcelID.Hex()).
				Error("payment recorded but parcel update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"trackingId":    trackingID,
			"insertedId":    insertedID.Hex(),
			"modifiedCount": modified,
		})
	}
}

// GetPayments lists the caller's own payment history, newest first. The
// email filter must match the verified identity.
func GetPayments(payments PaymentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		verified := c.GetString(middleware.EmailKey)

		if email == "" || email != verified {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}

		result, err := payments.ListByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
