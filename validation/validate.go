package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/hjortab/hjort-api/utils"
)

const payloadKey = "validatedPayload"

var validate = validator.New(validator.WithRequiredStructEnabled())

// schema is implemented by every payload type; it maps
// "StructField.rule" to the fixed client-facing message.
type schema interface {
	Messages() map[string]string
}

// normalizer is implemented by payloads that derive extra values from
// the raw input, like parsing the reservation date string.
type normalizer interface {
	normalize() error
}

// Body returns a middleware that decodes the request body into T in
// strict mode (unknown fields rejected), runs the field rules and, on
// success, stores the normalized payload on the context. Violations
// are collected per field and answered as a 400 array, so the
// controller behind it never sees a malformed payload.
func Body[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload T

		dec := json.NewDecoder(c.Request.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
			utils.RespondValidationErrors(c, []utils.ResponseError{decodeError(err)})
			c.Abort()
			return
		}
		// An absent body counts as an empty object, so the field rules
		// below report every missing field instead of a decode error.

		if errs := checkFields(&payload); len(errs) > 0 {
			utils.RespondValidationErrors(c, errs)
			c.Abort()
			return
		}

		if n, ok := any(&payload).(normalizer); ok {
			if err := n.normalize(); err != nil {
				utils.RespondServerError(c, err)
				c.Abort()
				return
			}
		}

		c.Set(payloadKey, payload)
		c.Next()
	}
}

// Payload returns the payload stored by Body. Calling it on a route
// without the matching Body middleware is a programming error.
func Payload[T any](c *gin.Context) T {
	return c.MustGet(payloadKey).(T)
}

func checkFields(payload any) []utils.ResponseError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []utils.ResponseError{{Field: "body", Message: "Invalid request body."}}
	}

	messages := map[string]string{}
	if s, ok := payload.(schema); ok {
		messages = s.Messages()
	}

	out := make([]utils.ResponseError, 0, len(verrs))
	for _, fe := range verrs {
		field := jsonFieldName(payload, fe.StructField())
		message, ok := messages[fe.StructField()+"."+fe.Tag()]
		if !ok {
			message = fmt.Sprintf("The %s field is invalid.", field)
		}
		out = append(out, utils.ResponseError{Field: field, Message: message})
	}
	return out
}

func decodeError(err error) utils.ResponseError {
	msg := err.Error()
	if strings.HasPrefix(msg, "json: unknown field") {
		return utils.ResponseError{
			Field:   "body",
			Message: "Unrecognized key in object: " + strings.TrimPrefix(msg, "json: unknown field "),
		}
	}
	return utils.ResponseError{Field: "body", Message: "Invalid JSON in request body."}
}

// jsonFieldName resolves the wire name of a struct field so error
// bodies refer to the same keys the client sent.
func jsonFieldName(payload any, structField string) string {
	t := reflect.TypeOf(payload)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return structField
	}
	tag := strings.Split(f.Tag.Get("json"), ",")[0]
	if tag == "" || tag == "-" {
		return structField
	}
	return tag
}
