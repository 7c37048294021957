package services

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/cryptox"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/google/uuid"
)

const (
	minUserNameLength = 3
	minPasswordLength = 6
	maxProjectName    = 128
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}

// validatePin accepts exactly common.PinLength ASCII digits.
func validatePin(pin string) error {
	if len(pin) != common.PinLength {
		return validationError("PIN must be %d digits", common.PinLength)
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return validationError("PIN must be %d digits", common.PinLength)
		}
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return validationError("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", validationError("invalid email")
	}
	return email, nil
}

func validateUserName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < minUserNameLength {
		return "", validationError("username must be at least %d characters", minUserNameLength)
	}
	return name, nil
}

// hashPassword returns a fresh salt and the verifier of the password-derived key.
func hashPassword(password string) (salt, hash []byte) {
	salt = cryptox.NewSalt()
	key := cryptox.DeriveKey([]byte(password), salt)
	defer common.WipeByteArray(key)
	return salt, cryptox.MakeVerifier(key)
}

func checkPassword(account *models.Account, password string) bool {
	key := cryptox.DeriveKey([]byte(password), account.PasswordSalt)
	defer common.WipeByteArray(key)
	return cryptox.CheckVerifier(key, account.PasswordHash)
}

// pinMaterial derives the content key for pin under a fresh salt and returns
// salt, key and verifier. The caller owns and must wipe the key.
func pinMaterial(pin string) (salt, key, verifier []byte) {
	salt = cryptox.NewSalt()
	key = cryptox.DeriveKey([]byte(pin), salt)
	return salt, key, cryptox.MakeVerifier(key)
}

// unlockPin derives the content key from pin and checks it against the
// account verifier. On success the caller owns and must wipe the key.
func unlockPin(account *models.Account, pin string) ([]byte, error) {
	key := cryptox.DeriveKey([]byte(pin), account.PinSalt)
	if !cryptox.CheckVerifier(key, account.PinVerifier) {
		common.WipeByteArray(key)
		return nil, common.ErrInvalidPin
	}
	return key, nil
}

// validID reports whether id has the shape of a stored identifier. Anything
// else cannot exist and is reported as not found by callers.
func validID[T ~string](id T) bool {
	_, err := uuid.Parse(string(id))
	return err == nil
}

func validateProjectFields(name, color string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", validationError("project name is empty")
	}
	if utf8.RuneCountInString(name) > maxProjectName {
		return "", "", validationError("project name is longer than %d characters", maxProjectName)
	}
	if color == "" {
		color = models.DefaultProjectColor
	}
	if !colorPattern.MatchString(color) {
		return "", "", validationError("color must look like #RRGGBB")
	}
	return name, strings.ToLower(color), nil
}
