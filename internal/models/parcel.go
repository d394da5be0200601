package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus is the payment state of a parcel.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Parcel is a shipment record. TrackingID stays nil until the first
// successful payment verification stamps it.
type Parcel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SenderEmail   string             `bson:"senderEmail" json:"senderEmail"`
	ParcelName    string             `bson:"parcelName" json:"parcelName"`
	Cost          string             `bson:"cost" json:"cost"`
	PaymentStatus PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	TrackingID    *string            `bson:"trackingId" json:"trackingId"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
