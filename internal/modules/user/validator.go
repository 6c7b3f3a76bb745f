package user

import (
	"fmt"
	"strings"
	"time"

	"filmorate/internal/domain"
)

func validateUser(user *domain.User) error {
	if strings.ContainsAny(user.Login, " \t") {
		return fmt.Errorf("логин не может содержать пробелы: %w", ErrValidation)
	}
	if user.Birthday.After(domain.Date{Time: time.Now()}) {
		return fmt.Errorf("дата рождения не может быть в будущем: %w", ErrValidation)
	}
	return nil
}
