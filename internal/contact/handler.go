package contact

import (
	"github.com/gofiber/fiber/v2"
)

// Handler delegates contact operations to the contact service.

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/contacts/", h.createContact)
	app.Get("/contacts/", h.getContacts)
	app.Get("/contacts/:id", h.getContact)
	app.Put("/contacts/:id", h.updateContact)
	app.Delete("/contacts/:id", h.deleteContact)
}

// request payloads

// contactCreateRequest accepts an optional id so that clients sending one are
// not rejected; the value is discarded and the server assigns its own.
type contactCreateRequest struct {
	ID      *string `json:"id"`
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (h *Handler) createContact(c *fiber.Ctx) error {
	payload := new(contactCreateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	required := []struct {
		name  string
		value *string
	}{
		{"name", payload.Name},
		{"phone", payload.Phone},
		{"email", payload.Email},
		{"address", payload.Address},
	}
	for _, f := range required {
		if f.value == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": f.name + " is required"})
		}
	}

	created, err := h.service.Create(Contact{
		Name:    *payload.Name,
		Phone:   *payload.Phone,
		Email:   *payload.Email,
		Address: *payload.Address,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(created)
}

func (h *Handler) getContacts(c *fiber.Ctx) error {
	contacts, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(contacts)
}

func (h *Handler) getContact(c *fiber.Ctx) error {
	contact, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Contact not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(contact)
}

func (h *Handler) updateContact(c *fiber.Ctx) error {
	payload := new(UpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(c.Params("id"), *payload)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Contact not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *Handler) deleteContact(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Contact not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "Contact deleted successfully"})
}
