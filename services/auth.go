package services

import (
	"database/sql"
	"fmt"

	"github.com/worstfriend/overseerr/database"
	"github.com/worstfriend/overseerr/models"
	"github.com/worstfriend/overseerr/permissions"

	"golang.org/x/crypto/bcrypt"
)

const userColumns = "id, username, email, password_hash, is_admin, permissions, created_at, updated_at"

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var perms int64
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsAdmin,
		&perms,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Permissions = permissions.Permission(perms)
	return &user, nil
}

func AuthenticateUser(username, password string) (*models.User, error) {
	user, err := scanUser(database.DB.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE username = $1",
		username,
	))

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("invalid credentials")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return user, nil
}

func RegisterUser(username, email, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// New accounts may report issues on their own media out of the box
	user, err := scanUser(database.DB.QueryRow(
		"INSERT INTO users (username, email, password_hash, permissions) VALUES ($1, $2, $3, $4) RETURNING "+userColumns,
		username, email, string(hashedPassword), int64(permissions.Request|permissions.CreateIssues),
	))

	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}

func GetUserByID(userID int64) (*models.User, error) {
	user, err := scanUser(database.DB.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE id = $1",
		userID,
	))

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return user, nil
}
