package dto

import (
	"time"

	"github.com/wb-go/wbf/ginext"
)

const (
	FieldBadFormat     = "FIELD_BADFORMAT"
	FieldIncorrect     = "FIELD_INCORRECT"
	ServiceUnavailable = "SERVICE_UNAVAILABLE"
	InternalError      = "Service is currently unavailable. Please try again later."

	InvalidCredentials = "INVALID_CREDENTIALS"
	EmailTaken         = "EMAIL_TAKEN"
)

type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type SignupResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	UserName    string `json:"user_name"`
	RedirectURL string `json:"redirect_url"`
}

// AlumniRegistrationForm mirrors the multipart text fields of the
// registration page. The photo file travels separately.
type AlumniRegistrationForm struct {
	Name               string `form:"name" validate:"required,max=255"`
	PermanentAddress   string `form:"permanentAddress"`
	PresentAddress     string `form:"presentAddress"`
	Gender             string `form:"gender"`
	PermanentCountry   string `form:"permanentCountry"`
	PermanentState     string `form:"permanentState"`
	PermanentDistrict  string `form:"permanentDistrict"`
	PermanentCity      string `form:"permanentCity"`
	PresentCountry     string `form:"presentCountry"`
	PresentState       string `form:"presentState"`
	PresentDistrict    string `form:"presentDistrict"`
	PresentCity        string `form:"presentCity"`
	Standard           string `form:"standard"`
	PassoutYear        string `form:"passoutYear" validate:"omitempty,passoutyear"`
	DateOfBirth        string `form:"dateOfBirth"`
	CurrentDesignation string `form:"currentDesignation"`
	MobileNumber       string `form:"mobileNumber" validate:"omitempty,mobile"`
	Email              string `form:"email" validate:"required,email"`
}

type RegistrationResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type PaymentRequest struct {
	FullName   string `json:"fullName" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,email"`
	Standard   string `json:"standard"`
	Fees       string `json:"fees" validate:"required"`
	CardName   string `json:"cardName" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required,min=12,max=19"`
	ExpMonth   string `json:"expMonth" validate:"required"`
	ExpYear    string `json:"expYear" validate:"required"`
	CVV        string `json:"cvv" validate:"required,min=3,max=4"`
}

type PaymentResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// NotificationMessage is what the service publishes to RabbitMQ and
// the consumer worker turns into an email.
type NotificationMessage struct {
	Kind   string    `json:"kind"` // "welcome" or "registration"
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	SentAt time.Time `json:"sent_at"`
}

type Response struct {
	Status string `json:"status"`
	Error  *Error `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

type Error struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
}

func BadResponseError(c *ginext.Context, code, desc string) {
	c.JSON(400, Response{
		Status: "error",
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

func InternalServerError(c *ginext.Context) {
	c.JSON(500, Response{
		Status: "error",
		Error: &Error{
			Code: ServiceUnavailable,
			Desc: InternalError,
		},
	})
}

func InvalidCredentialsError(c *ginext.Context) {
	c.JSON(401, Response{
		Status: "error",
		Error: &Error{
			Code: InvalidCredentials,
			Desc: "Invalid email or password",
		},
	})
}

func EmailTakenError(c *ginext.Context) {
	c.JSON(409, Response{
		Status: "error",
		Error: &Error{
			Code: EmailTaken,
			Desc: "An account with this email already exists",
		},
	})
}

func SuccessResponse(c *ginext.Context, data any) {
	c.JSON(200, Response{
		Status: "ok",
		Data:   data,
	})
}

func SuccessCreatedResponse(c *ginext.Context, data any) {
	c.JSON(201, Response{
		Status: "ok",
		Data:   data,
	})
}
