package services

import (
	"errors"
	"time"

	"github.com/bhavani-b03/Restaurant-app/config"
	"github.com/bhavani-b03/Restaurant-app/logger"
	"github.com/bhavani-b03/Restaurant-app/models"
	"github.com/bhavani-b03/Restaurant-app/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

// RegisterUser creates an account with a bcrypt-hashed password.
// ErrEmailTaken when the email is already registered. The unique index on
// email is the source of truth, so two concurrent registrations can't both
// slip past a pre-check.
func RegisterUser(email, password, fullName string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser verifies credentials and returns a signed JWT.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

// ChangePassword replaces an authenticated user's password after verifying
// the old one.
func ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(oldPassword, user.Password) {
		return ErrInvalidCredentials
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return config.DB.Save(user).Error
}

// StartPasswordReset stores a short-lived reset code for the account and
// emails it. A missing account is not an error, so the endpoint can't be used
// to probe which emails are registered.
func StartPasswordReset(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	user.ResetToken = utils.GenerateRandomToken(6)
	user.ResetTokenExp = time.Now().Add(resetTokenTTL)
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}

	if err := utils.SendResetEmail(user.Email, user.ResetToken); err != nil {
		logger.Error("Failed to send reset email", zap.Error(err))
	}
	return nil
}

// ResetPassword sets a new password for the account holding a valid,
// unexpired reset code, then invalidates the code.
func ResetPassword(token, newPassword string) error {
	if token == "" {
		return ErrInvalidResetToken
	}

	var user models.User
	if err := config.DB.Where("reset_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if time.Now().After(user.ResetTokenExp) {
		return ErrInvalidResetToken
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
