package handler

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"mealmate/pkg/errors"
)

// bindUpdate decodes the request body as a provided-field set for a partial
// update: only the keys the client sent get written, so counters and other
// server-maintained fields survive an edit that does not mention them. The
// _id is never updatable.
func bindUpdate(c echo.Context) (bson.M, error) {
	fields := bson.M{}
	if err := c.Bind(&fields); err != nil {
		return nil, errors.BadRequest("Invalid update body", err)
	}

	delete(fields, "_id")
	if len(fields) == 0 {
		return nil, errors.BadRequest("No fields to update", nil)
	}

	return fields, nil
}
