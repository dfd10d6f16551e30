package domain

import "time"

type Contact struct {
	FirstName   string    `json:"firstName" firestore:"firstName"`
	LastName    string    `json:"lastName,omitempty" firestore:"lastName,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty" firestore:"phoneNumber,omitempty"`
	Email       string    `json:"email,omitempty" firestore:"email,omitempty"`
	Address     string    `json:"address,omitempty" firestore:"address,omitempty"`
	UserID      string    `json:"userId" firestore:"userId"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
