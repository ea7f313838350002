package dashboard

import (
	"context"
	stderrors "errors"

	"weatherdash.app/pkg/errors"
)

// Notice returns the message shown to the user when a run fails
func Notice(err error) string {
	switch errors.TypeOf(err) {
	case errors.ValidationError:
		return "Enter a location to search."
	case errors.NotFoundError:
		return "No matching location was found. Check the spelling and try again."
	case errors.NetworkError:
		return "The weather service could not be reached. Please try again."
	case errors.TimeoutError:
		return "The weather service took too long to respond. Please try again."
	case errors.MalformedResponseError:
		return "The weather service returned an unexpected response. Please try again."
	default:
		return "Something went wrong while loading the weather."
	}
}

func outcomeOf(err error) string {
	if stderrors.Is(err, context.Canceled) {
		return "canceled"
	}
	switch errors.TypeOf(err) {
	case errors.ValidationError:
		return "validation"
	case errors.NotFoundError:
		return "not_found"
	case errors.NetworkError:
		return "network"
	case errors.TimeoutError:
		return "timeout"
	case errors.MalformedResponseError:
		return "malformed"
	case errors.StaleResponseError:
		return "stale"
	default:
		return "error"
	}
}
