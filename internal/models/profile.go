package models

import "time"

// UserProfile is the basic account card shown in the header menu:
// display name, phone, short bio and an optional avatar image.
type UserProfile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      *string   `json:"name"`
	Phone     *string   `json:"phone"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeekerProfile holds the job-seeker onboarding form, one row per user.
// All fields are free-form; numeric ones are nullable.
type SeekerProfile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	Phone           *string   `json:"phone"`
	Location        *string   `json:"location"`
	Title           *string   `json:"title"`
	YearsExperience *int      `json:"yearsExperience"`
	Skills          *string   `json:"skills"`
	Bio             *string   `json:"bio"`
	JobTypes        *string   `json:"jobTypes"`
	Industries      *string   `json:"industries"`
	Salary          *int      `json:"salary"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CompanyProfile holds the employer onboarding form, one row per user.
type CompanyProfile struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Name          *string   `json:"name"`
	Website       *string   `json:"website"`
	Industry      *string   `json:"industry"`
	Size          *string   `json:"size"`
	Founded       *int      `json:"founded"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Location      *string   `json:"location"`
	Address       *string   `json:"address"`
	Description   *string   `json:"description"`
	Mission       *string   `json:"mission"`
	Culture       *string   `json:"culture"`
	Benefits      *string   `json:"benefits"`
	LinkedIn      *string   `json:"linkedin"`
	Twitter       *string   `json:"twitter"`
	LicenseNumber *string   `json:"licenseNumber"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
