package model

import "time"

type User struct {
	ID           int       `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type AlumniRegistration struct {
	ID                 int       `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	PermanentAddress   string    `db:"permanent_address" json:"permanent_address"`
	PresentAddress     string    `db:"present_address" json:"present_address"`
	Gender             string    `db:"gender" json:"gender"`
	PermanentCountry   string    `db:"permanent_country" json:"permanent_country"`
	PermanentState     string    `db:"permanent_state" json:"permanent_state"`
	PermanentDistrict  string    `db:"permanent_district" json:"permanent_district"`
	PermanentCity      string    `db:"permanent_city" json:"permanent_city"`
	PresentCountry     string    `db:"present_country" json:"present_country"`
	PresentState       string    `db:"present_state" json:"present_state"`
	PresentDistrict    string    `db:"present_district" json:"present_district"`
	PresentCity        string    `db:"present_city" json:"present_city"`
	Standard           string    `db:"standard" json:"standard"`
	PassoutYear        string    `db:"passout_year" json:"passout_year"`
	DateOfBirth        string    `db:"date_of_birth" json:"date_of_birth"`
	CurrentDesignation string    `db:"current_designation" json:"current_designation"`
	PhotoPath          *string   `db:"photo_path" json:"photo_path"`
	MobileNumber       string    `db:"mobile_number" json:"mobile_number"`
	Email              string    `db:"email" json:"email"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// Payment keeps only the last four digits of the card number and no
// CVV. The raw values never leave the request handler.
type Payment struct {
	ID        int       `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     string    `db:"email" json:"email"`
	Standard  string    `db:"standard" json:"standard"`
	Fees      string    `db:"fees" json:"fees"`
	CardName  string    `db:"card_name" json:"card_name"`
	CardLast4 string    `db:"card_last4" json:"card_last4"`
	ExpMonth  string    `db:"exp_month" json:"exp_month"`
	ExpYear   string    `db:"exp_year" json:"exp_year"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
