package api

import (
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/hueforge/hueforge/internal/errors"
	"github.com/hueforge/hueforge/internal/http/response"
)

// EnvelopeVersion is the "v" field of every response.
const EnvelopeVersion = response.Version

// EnvelopeTransformer wraps every huma response body in the shared
// envelope: {"v":1,"success":...,"data":...} or, for errors,
// {"v":1,"success":false,"error":...,"code":...,"details":...}.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	code, _ := strconv.Atoi(status)

	switch val := v.(type) {
	case response.Envelope:
		return val, nil
	case *APIError:
		return response.Fail(val.Code, val.Message, val.Details), nil
	case error:
		return response.Fail(statusToCode(code), val.Error(), nil), nil
	}

	if code >= 400 {
		return response.Fail(statusToCode(code), "", v), nil
	}
	return response.Ok(v), nil
}

// statusToCode maps HTTP status codes to our domain error codes.
func statusToCode(status int) string {
	switch status {
	case 400, 422:
		return string(domainerrors.CodeValidation)
	case 404:
		return string(domainerrors.CodeNotFound)
	case 429:
		return string(domainerrors.CodeRateLimited)
	case 502:
		return string(domainerrors.CodeNetworkFailure)
	default:
		return string(domainerrors.CodeInternal)
	}
}
