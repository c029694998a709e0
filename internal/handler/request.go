package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sicei-api/internal/validation"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
	"github.com/noah-isme/sicei-api/pkg/response"
)

// pathID parses the :id segment. Anything that is not a positive integer
// cannot name a record, so it is answered with notFound.
func pathID(c *gin.Context, notFound error) (int64, bool) {
	id, ok := validation.Identifier(validation.String(c.Param("id")))
	if !ok {
		response.Error(c, notFound)
		return 0, false
	}
	return id, true
}

// bindPayload decodes the body as a JSON object.
func bindPayload(c *gin.Context) (validation.Payload, bool) {
	payload, err := validation.DecodePayload(c.Request.Body)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrMalformedJSON.Code, appErrors.ErrMalformedJSON.Status, appErrors.ErrMalformedJSON.Message))
		return nil, false
	}
	return payload, true
}

// bindJSON decodes the body into a typed request.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrMalformedJSON.Code, appErrors.ErrMalformedJSON.Status, appErrors.ErrMalformedJSON.Message))
		return false
	}
	return true
}
