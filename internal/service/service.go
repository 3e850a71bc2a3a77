package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"

	"alumniPortal/internal/dto"
	"alumniPortal/internal/hasher"
	"alumniPortal/internal/model"
	"alumniPortal/internal/repo"
	"alumniPortal/internal/uploads"
	"alumniPortal/pkg/validator"
)

type Service interface {
	Signup(ctx *ginext.Context)
	Login(ctx *ginext.Context)
	RegisterAlumni(ctx *ginext.Context)
	SavePayment(ctx *ginext.Context)
}

// Publisher is the slice of the rabbit client the service needs.
type Publisher interface {
	Publish(message []byte) error
}

type service struct {
	repo    repo.Repository
	log     *zerolog.Logger
	pub     Publisher
	uploads *uploads.Store
}

func NewService(repo repo.Repository, logger *zerolog.Logger, pub Publisher, store *uploads.Store) Service {
	return &service{
		repo:    repo,
		log:     logger,
		pub:     pub,
		uploads: store,
	}
}

func (s *service) Signup(ctx *ginext.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse signup request")
		dto.BadResponseError(ctx, dto.FieldBadFormat, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		s.log.Error().Msgf("signup validation failed: %v", verr)
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	hash, err := hasher.Hash(req.Password)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to hash password")
		dto.InternalServerError(ctx)
		return
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
	}

	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			dto.EmailTakenError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to create user in DB")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Int64("user_id", id).Str("email", user.Email).Msg("user signed up")

	s.notify("welcome", user.FirstName+" "+user.LastName, user.Email)

	dto.SuccessCreatedResponse(ctx, dto.SignupResponse{
		Message: "Signup successful",
	})
}

func (s *service) Login(ctx *ginext.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse login request")
		dto.BadResponseError(ctx, dto.FieldBadFormat, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	// Unknown email and wrong password must be indistinguishable to the
	// caller.
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if !errors.Is(err, repo.ErrUserNotFound) {
			s.log.Error().Err(err).Msg("failed to look up user")
			dto.InternalServerError(ctx)
			return
		}
		dto.InvalidCredentialsError(ctx)
		return
	}

	if !hasher.Verify(req.Password, user.PasswordHash) {
		dto.InvalidCredentialsError(ctx)
		return
	}

	s.log.Info().Int("user_id", user.ID).Msg("user logged in")

	dto.SuccessResponse(ctx, dto.LoginResponse{
		Message:     "Login successful",
		UserName:    user.FirstName + " " + user.LastName,
		RedirectURL: "/homepage",
	})
}

func (s *service) RegisterAlumni(ctx *ginext.Context) {
	var form dto.AlumniRegistrationForm
	if err := ctx.ShouldBind(&form); err != nil {
		s.log.Error().Err(err).Msg("failed to parse alumni registration form")
		dto.BadResponseError(ctx, dto.FieldBadFormat, "Invalid form data")
		return
	}

	if verr := validator.Validate(ctx, form); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	// The photo is optional; a missing file field is not an error.
	var photoPath *string
	if fh, err := ctx.FormFile("photo"); err == nil && fh != nil {
		path, err := s.uploads.Save(fh)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to store uploaded photo")
			dto.InternalServerError(ctx)
			return
		}
		photoPath = &path
	}

	reg := &model.AlumniRegistration{
		Name:               form.Name,
		PermanentAddress:   form.PermanentAddress,
		PresentAddress:     form.PresentAddress,
		Gender:             form.Gender,
		PermanentCountry:   form.PermanentCountry,
		PermanentState:     form.PermanentState,
		PermanentDistrict:  form.PermanentDistrict,
		PermanentCity:      form.PermanentCity,
		PresentCountry:     form.PresentCountry,
		PresentState:       form.PresentState,
		PresentDistrict:    form.PresentDistrict,
		PresentCity:        form.PresentCity,
		Standard:           form.Standard,
		PassoutYear:        form.PassoutYear,
		DateOfBirth:        form.DateOfBirth,
		CurrentDesignation: form.CurrentDesignation,
		PhotoPath:          photoPath,
		MobileNumber:       form.MobileNumber,
		Email:              normalizeEmail(form.Email),
	}

	id, err := s.repo.CreateAlumniRegistration(ctx, reg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create alumni registration in DB")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Int64("registration_id", id).Msg("alumni registration created")

	s.notify("registration", form.Name, reg.Email)

	dto.SuccessCreatedResponse(ctx, dto.RegistrationResponse{
		Message: "Alumni registration successful",
		ID:      id,
	})
}

func (s *service) SavePayment(ctx *ginext.Context) {
	var req dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse payment request")
		dto.BadResponseError(ctx, dto.FieldBadFormat, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	// Only the last four digits survive; the PAN and CVV stay in the
	// request.
	payment := &model.Payment{
		FullName:  req.FullName,
		Email:     normalizeEmail(req.Email),
		Standard:  req.Standard,
		Fees:      req.Fees,
		CardName:  req.CardName,
		CardLast4: cardLast4(req.CardNumber),
		ExpMonth:  req.ExpMonth,
		ExpYear:   req.ExpYear,
	}

	id, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create payment in DB")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Int64("payment_id", id).Msg("payment captured")

	dto.SuccessCreatedResponse(ctx, dto.PaymentResponse{
		Message: "Payment saved",
		ID:      id,
	})
}

// notify publishes a notification message best-effort. Mail delivery
// must never fail the request that triggered it.
func (s *service) notify(kind, name, email string) {
	msg := dto.NotificationMessage{
		Kind:   kind,
		Name:   name,
		Email:  email,
		SentAt: time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal notification message")
		return
	}
	if err := s.pub.Publish(payload); err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Msg("failed to publish notification message")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cardLast4(number string) string {
	digits := make([]rune, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return string(digits)
	}
	return string(digits[len(digits)-4:])
}
