package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserCollection is the entity store collection for users.
const UserCollection = "users"

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	UserStatusActive            UserStatus = "Active"
	UserStatusInactive          UserStatus = "Inactive"
	UserStatusPendingValidation UserStatus = "PendingValidation"
)

// UserStatuses lists every recognised value.
func UserStatuses() []UserStatus {
	return []UserStatus{UserStatusActive, UserStatusInactive, UserStatusPendingValidation}
}

// Valid reports whether s is a member of the enumeration.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusPendingValidation:
		return true
	}
	return false
}

// User is an account holding credentials and references to exactly one
// Client and one Profile. Email is unique across the collection.
//
// The password is stored as given and never serialised outward.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password" json:"-" validate:"required"`
	Status    UserStatus         `bson:"status" json:"status" validate:"required,oneof=Active Inactive PendingValidation"`
	ClientID  primitive.ObjectID `bson:"clientId" json:"clientId" validate:"required"`
	ProfileID primitive.ObjectID `bson:"profileId" json:"profileId" validate:"required"`
}
