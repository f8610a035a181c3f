package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var classStatus = map[domain.ErrorClass]int{
	domain.ErrorClassParameter:     http.StatusBadRequest,
	domain.ErrorClassState:         http.StatusConflict,
	domain.ErrorClassEconomic:      http.StatusUnprocessableEntity,
	domain.ErrorClassAuthorization: http.StatusForbidden,
	domain.ErrorClassCollaborator:  http.StatusPaymentRequired,
	domain.ErrorClassNotFound:      http.StatusNotFound,
}

// StatusOf maps a domain error to its http status, fallback is used for
// errors outside the domain taxonomy.
func StatusOf(err error, fallback int) int {
	if errors.Is(err, query.ErrNotFound) {
		return http.StatusNotFound
	}
	if status, ok := classStatus[domain.ClassOf(err)]; ok {
		return status
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
