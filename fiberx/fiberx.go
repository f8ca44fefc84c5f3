package fiberx

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/Abraxas-365/faultable/faultx"
)

// ErrorHandler returns a fiber.ErrorHandler that renders every error as a
// fault page. Faults render themselves, *fiber.Error values are mapped onto
// the registered kind for their code, and anything else becomes a 500 with
// the original error kept as the cause.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return Render(c, toFault(err))
	}
}

// Render writes the fault's status, headers and HTML body to the context.
// Content-Type replaces Fiber's default; every other header is added as its
// own entry so duplicates survive.
func Render(c *fiber.Ctx, f *faultx.Fault) error {
	resp := f.Response()

	status := resp.Status
	if status < 100 || status > 999 {
		status = fiber.StatusInternalServerError
	}
	c.Status(status)

	for _, h := range resp.Headers {
		if strings.EqualFold(h.Name, fiber.HeaderContentType) {
			c.Set(fiber.HeaderContentType, h.Value)
			continue
		}
		c.Response().Header.Add(h.Name, h.Value)
	}

	return c.SendString(resp.Body)
}

func toFault(err error) *faultx.Fault {
	if f, ok := faultx.AsFault(err); ok {
		return f
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		// Fiber fills Message with the generic status text; only a caller
		// supplied message becomes the description.
		description := ""
		if fe.Message != "" && fe.Message != utils.StatusMessage(fe.Code) {
			description = fe.Message
		}

		var opts []faultx.Option
		if description != "" {
			opts = append(opts, faultx.WithDescription(description))
		}
		opts = append(opts, faultx.WithCause(err))

		if kind, ok := faultx.Registered(fe.Code); ok {
			return kind.New(opts...)
		}
		return faultx.NewKind(fe.Code, description).New(faultx.WithCause(err))
	}

	return faultx.InternalServerError.New(faultx.WithCause(err))
}
