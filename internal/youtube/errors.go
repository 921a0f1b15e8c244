package youtube

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/ytget/yt-liked-searcher/internal/apperrors"
)

// Reasons the API reports for quota and rate limiting
var quotaReasons = map[string]bool{
	"quotaExceeded":         true,
	"rateLimitExceeded":     true,
	"dailyLimitExceeded":    true,
	"userRateLimitExceeded": true,
}

// classify maps an API call failure onto the application error types
func classify(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return apperrors.NewAuthenticationError("saved credentials were rejected", err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized:
			return apperrors.NewAuthenticationError("YouTube rejected the credentials", err)
		case apiErr.Code == http.StatusTooManyRequests:
			return apperrors.NewQuotaExceededError("too many requests", err)
		case apiErr.Code == http.StatusForbidden && hasQuotaReason(apiErr):
			return apperrors.NewQuotaExceededError("YouTube API quota exceeded", err)
		case apiErr.Code == http.StatusForbidden:
			return apperrors.NewAuthenticationError("access to liked videos denied", err)
		default:
			return apperrors.NewNetworkError("YouTube API request failed", err)
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewNetworkError("request cancelled", err)
	}
	return apperrors.NewNetworkError("cannot reach YouTube", err)
}

func hasQuotaReason(apiErr *googleapi.Error) bool {
	for _, item := range apiErr.Errors {
		if quotaReasons[item.Reason] {
			return true
		}
	}
	return false
}
