package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RiderStatus is the application state of a rider. Status updates are
// validated against this set at the API boundary.
type RiderStatus string

const (
	RiderStatusPending  RiderStatus = "pending"
	RiderStatusApproved RiderStatus = "approved"
	RiderStatusRejected RiderStatus = "rejected"
)

// ParseRiderStatus validates a caller-supplied status value.
func ParseRiderStatus(s string) (RiderStatus, error) {
	switch RiderStatus(s) {
	case RiderStatusPending, RiderStatusApproved, RiderStatusRejected:
		return RiderStatus(s), nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Rider is a delivery rider application. Applicant fields are persisted as
// submitted; new applications always start pending.
type Rider struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name                string             `bson:"name" json:"name"`
	Email               string             `bson:"email" json:"email"`
	Phone               string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Region              string             `bson:"region,omitempty" json:"region,omitempty"`
	District            string             `bson:"district,omitempty" json:"district,omitempty"`
	VehicleModel        string             `bson:"vehicleModel,omitempty" json:"vehicleModel,omitempty"`
	VehicleRegistration string             `bson:"vehicleRegistration,omitempty" json:"vehicleRegistration,omitempty"`
	ApplicationStatus   RiderStatus        `bson:"applicationStatus" json:"applicationStatus"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
}
