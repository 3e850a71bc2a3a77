package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/dbpg"

	"alumniPortal/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

type Repository interface {
	CreateUser(ctx context.Context, u *model.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateAlumniRegistration(ctx context.Context, reg *model.AlumniRegistration) (int64, error)
	CreatePayment(ctx context.Context, p *model.Payment) (int64, error)
	MigrateUp(migrationsDir string) error
	MigrateDown(migrationsDir string) error
}

type repository struct {
	db  *dbpg.DB
	log *zerolog.Logger
}

func NewRepository(db *dbpg.DB, log *zerolog.Logger) (Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if err := db.Master.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return &repository{db: db, log: log}, nil
}

func (r *repository) MigrateUp(migrationsDir string) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.up.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		if _, err := r.db.ExecContext(context.Background(), string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
	}

	r.log.Info().Msgf("Migrations applied successfully from %s", migrationsDir)
	return nil
}

func (r *repository) MigrateDown(migrationsDir string) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.down.sql"))
	if err != nil {
		return fmt.Errorf("failed to read rollback files: %w", err)
	}

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read rollback file %s: %w", file, err)
		}

		if _, err := r.db.ExecContext(context.Background(), string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to rollback migration %s: %w", file, err)
		}
	}

	r.log.Info().Msgf("Migrations rolled back successfully from %s", migrationsDir)
	return nil
}

func (r *repository) CreateUser(ctx context.Context, u *model.User) (int64, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	row := r.db.QueryRowContext(ctx, query,
		u.FirstName, u.LastName, u.Email, u.PasswordHash,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	row := r.db.QueryRowContext(ctx, query, email)

	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

func (r *repository) CreateAlumniRegistration(ctx context.Context, reg *model.AlumniRegistration) (int64, error) {
	query := `
		INSERT INTO alumni_registration (
			name, permanent_address, present_address, gender,
			permanent_country, permanent_state, permanent_district, permanent_city,
			present_country, present_state, present_district, present_city,
			standard, passout_year, date_of_birth, current_designation,
			photo_path, mobile_number, email
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`

	var photo sql.NullString
	if reg.PhotoPath != nil && *reg.PhotoPath != "" {
		photo = sql.NullString{String: *reg.PhotoPath, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, query,
		reg.Name, reg.PermanentAddress, reg.PresentAddress, reg.Gender,
		reg.PermanentCountry, reg.PermanentState, reg.PermanentDistrict, reg.PermanentCity,
		reg.PresentCountry, reg.PresentState, reg.PresentDistrict, reg.PresentCity,
		reg.Standard, reg.PassoutYear, reg.DateOfBirth, reg.CurrentDesignation,
		photo, reg.MobileNumber, reg.Email,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert alumni registration: %w", err)
	}
	return id, nil
}

func (r *repository) CreatePayment(ctx context.Context, p *model.Payment) (int64, error) {
	query := `
		INSERT INTO payments (full_name, email, standard, fees, card_name, card_last4, exp_month, exp_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	row := r.db.QueryRowContext(ctx, query,
		p.FullName, p.Email, p.Standard, p.Fees, p.CardName, p.CardLast4, p.ExpMonth, p.ExpYear,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert payment: %w", err)
	}
	return id, nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation
// (code 23505), which on users can only be the email constraint.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
