package utils

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/amirrdn/acounting-api/config"
	"github.com/bsm/redislock"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ttacon/libphonenumber"
)

var CountryCode = "ID"

func IsValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	regex := regexp.MustCompile(pattern)
	return regex.MatchString(email)
}

func ValidatePhoneNumber(phoneNumber, countryCode string) error {
	p, err := libphonenumber.Parse(phoneNumber, countryCode)
	if err != nil {
		return err
	}

	if !libphonenumber.IsValidNumber(p) {
		return fmt.Errorf("phone number is not valid")
	}

	return nil
}

func GenerateUniqueFilename() string {
	return uuid.New().String()
}

func ProcessValidationErrors(err error) map[string]string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}

	errorResponse := make(map[string]string)
	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}

	return errorResponse
}

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

// returns slice removing duplicate elements
func UniqueSlice[T comparable](slice []T) []T {
	inResult := make(map[T]bool)
	var result []T
	for _, elm := range slice {
		if _, ok := inResult[elm]; !ok {
			inResult[elm] = true
			result = append(result, elm)
		}
	}
	return result
}

// GetMonthRange returns the start and end of a given month.
func GetMonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1).Add(time.Hour*23 + time.Minute*59 + time.Second*59)
	return start, end
}

// PostingLock serializes document posting (payments, receipts) on one key.
// Redis lock is a best-effort optimization: when Redis is not configured the
// posting path still serializes on the database transaction.
func PostingLock(ctx context.Context, lockType string, key string, moduleName string, functionName string) (func(), error) {
	logger := config.GetLogger()
	locker := config.GetRedisLock()
	if locker == nil {
		return func() {}, nil
	}
	lockKey := fmt.Sprintf("%s:%s", lockType, key)
	lock, err := locker.Obtain(ctx, lockKey, 30*time.Second, nil)
	if err == redislock.ErrNotObtained {
		config.LogError(logger, moduleName, functionName, "Could not obtain lock", lockKey, err)
		return nil, errors.New("document is being processed, try again")
	} else if err != nil {
		config.LogError(logger, moduleName, functionName, "Error obtaining lock", lockKey, err)
		return nil, err
	}
	return func() { _ = lock.Release(ctx) }, nil
}
