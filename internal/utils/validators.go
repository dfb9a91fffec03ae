package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/sparkboard-dev/sparkboard/internal/errors"
)

type BoardNameValidator struct{}

func (e *BoardNameValidator) Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return &errors.ErrorWithStatusCode{Message: "Board name is required", StatusCode: 400}
	}
	if utf8.RuneCountInString(name) > 100 {
		return &errors.ErrorWithStatusCode{Message: "Board name is too long", StatusCode: 400}
	}
	return nil
}

type CaptionValidator struct{}

func (e *CaptionValidator) Caption(caption string) error {
	if utf8.RuneCountInString(caption) > 1_000 {
		return &errors.ErrorWithStatusCode{Message: "Caption is too long", StatusCode: 400}
	}
	return nil
}
