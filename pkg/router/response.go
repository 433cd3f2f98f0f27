package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yatube-lab/backend/pkg/errorx"
)

type response struct {
	Code     int64             `json:"code"`
	Error    string            `json:"error,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
	Data     any               `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{
		Code: 0,
		Data: data,
	}
}

func newErrorResponse(err error) (int, response) {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return errorx.HTTPStatus(errx.Code), response{
			Code:     int64(errx.Code),
			Error:    errx.Message,
			Fields:   errx.Fields,
			Redirect: errx.Redirect,
		}
	}

	return http.StatusInternalServerError, response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func writeResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, newResponse(data))
}

func writeError(c *gin.Context, err error) {
	status, resp := newErrorResponse(err)
	c.JSON(status, resp)
}
