package service

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/avc-dev/shortlink/internal/model"
)

const (
	MaxURLLength   = 2048
	MinAliasLength = 3
	MaxAliasLength = 50
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateURL проверяет, что адрес абсолютный http(s) с хостом
func ValidateURL(raw model.URL) error {
	s := string(raw)
	if s == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	if len(s) > MaxURLLength {
		return fmt.Errorf("%w: url exceeds %d characters", ErrInvalidInput, MaxURLLength)
	}

	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("%w: malformed url: %w", ErrInvalidInput, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("%w: url scheme must be http or https", ErrInvalidInput)
	}
	if u.Host == "" || u.Hostname() == "" {
		return fmt.Errorf("%w: url must have a host", ErrInvalidInput)
	}

	return nil
}

// ValidateAlias проверяет формат пользовательского кода
func ValidateAlias(alias model.Code) error {
	n := len(alias)
	if n < MinAliasLength || n > MaxAliasLength {
		return fmt.Errorf("%w: custom code must be %d-%d characters long", ErrInvalidInput, MinAliasLength, MaxAliasLength)
	}
	if !aliasPattern.MatchString(string(alias)) {
		return fmt.Errorf("%w: custom code may contain only letters, digits, '-' and '_'", ErrInvalidInput)
	}

	return nil
}

// plausibleCode отсекает заведомо несуществующие коды до обращения к хранилищу
func plausibleCode(code model.Code) bool {
	return code != "" && len(code) <= MaxAliasLength && aliasPattern.MatchString(string(code))
}
