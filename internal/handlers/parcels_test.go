package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zapshift/zapshift-backend/internal/models"
)

func TestCreateParcelStampsCreatedAt(t *testing.T) {
	var created models.Parcel
	insertedID := primitive.NewObjectID()

	store := &mockParcelStore{
		CreateFunc: func(ctx context.Context, parcel *models.Parcel) (primitive.ObjectID, error) {
			created = *parcel
			return insertedID, nil
		},
	}

	r := newTestRouter()
	r.POST("/parcels", CreateParcel(store))

	before := time.Now().UTC()
	w := performRequest(r, http.MethodPost, "/parcels", map[string]interface{}{
		"senderEmail": "a@x.com",
		"parcelName":  "Box",
		"cost":        "10",
		"createdAt":   "2000-01-01T00:00:00Z", // must be ignored
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, insertedID.Hex(), decodeBody(w)["insertedId"])

	assert.Equal(t, "a@x.com", created.SenderEmail)
	assert.Equal(t, "Box", created.ParcelName)
	assert.Equal(t, "10", created.Cost)
	assert.Equal(t, models.PaymentStatusUnpaid, created.PaymentStatus)
	assert.Nil(t, created.TrackingID)
	assert.False(t, created.CreatedAt.Before(before), "createdAt must be server-assigned")
}

func TestCreateParcelRejectsMissingFields(t *testing.T) {
	r := newTestRouter()
	r.POST("/parcels", CreateParcel(&mockParcelStore{}))

	w := performRequest(r, http.MethodPost, "/parcels", map[string]interface{}{
		"senderEmail": "a@x.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetParcelsPassesEmailFilter(t *testing.T) {
	var gotEmail string
	store := &mockParcelStore{
		ListFunc: func(ctx context.Context, senderEmail string) ([]models.Parcel, error) {
			gotEmail = senderEmail
			return []models.Parcel{{SenderEmail: senderEmail}}, nil
		},
	}

	r := newTestRouter()
	r.GET("/parcels", GetParcels(store))

	w := performRequest(r, http.MethodGet, "/parcels?email=a@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", gotEmail)

	w = performRequest(r, http.MethodGet, "/parcels", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", gotEmail, "no filter means all parcels")
}

func TestGetParcelMissingReturns404(t *testing.T) {
	r := newTestRouter()
	r.GET("/parcels/:id", GetParcel(&mockParcelStore{}))

	w := performRequest(r, http.MethodGet, "/parcels/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetParcelInvalidID(t *testing.T) {
	r := newTestRouter()
	r.GET("/parcels/:id", GetParcel(&mockParcelStore{}))

	w := performRequest(r, http.MethodGet, "/parcels/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetParcelFound(t *testing.T) {
	id := primitive.NewObjectID()
	store := &mockParcelStore{
		GetFunc: func(ctx context.Context, got primitive.ObjectID) (*models.Parcel, error) {
			return &models.Parcel{ID: got, ParcelName: "Box"}, nil
		},
	}

	r := newTestRouter()
	r.GET("/parcels/:id", GetParcel(store))

	w := performRequest(r, http.MethodGet, "/parcels/"+id.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Box", decodeBody(w)["parcelName"])
}

func TestDeleteParcelUnknownIDReturnsZeroCount(t *testing.T) {
	store := &mockParcelStore{
		DeleteFunc: func(ctx context.Context, id primitive.ObjectID) (int64, error) {
			return 0, nil
		},
	}

	r := newTestRouter()
	r.DELETE("/parcels/:id", DeleteParcel(store))

	w := performRequest(r, http.MethodDelete, "/parcels/"+primitive.NewObjectID().Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(w)["deletedCount"])
}
