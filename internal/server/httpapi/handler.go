package httpapi

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/recordsync/internal/server/records"
)

const addedMessage = "Item added successfully!"

type addRequest struct {
	Content string `json:"content"`
}

type addResponse struct {
	Message string         `json:"message"`
	Item    records.Record `json:"item"`
}

func (s *Server) listRecords(c *fiber.Ctx) error {
	items, err := s.records.List(c.UserContext())
	if err != nil {
		s.logger.Error(c.UserContext(), "list failed", "request_id", requestIDFromCtx(c), "error", err)
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
	return c.JSON(items)
}

// addRecord accepts any JSON object body regardless of Content-Type. Missing
// or empty content is stored as is.
func (s *Server) addRecord(c *fiber.Ctx) error {
	var req addRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
	}

	rec, err := s.records.Add(c.UserContext(), req.Content)
	if err != nil {
		s.logger.Error(c.UserContext(), "add failed", "request_id", requestIDFromCtx(c), "error", err)
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}

	s.logger.Debug(c.UserContext(), "record added", "request_id", requestIDFromCtx(c), "id", rec.ID)
	return c.JSON(addResponse{Message: addedMessage, Item: rec})
}
