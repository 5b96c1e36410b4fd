package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sysprobe/cpusnap/internal/diag"
)

// CPU snapshot endpoint. A fresh snapshot is built per request;
// construction is stateless, so concurrent requests need no coordination.
func (s *Server) getCPU(c *fiber.Ctx) error {
	return c.JSON(s.reader.Snapshot())
}

// CPU snapshot plus consistency warnings
func (s *Server) getCPUDiagnostics(c *fiber.Ctx) error {
	info := s.reader.Snapshot()
	warnings := diag.Check(c.UserContext(), info)

	return c.JSON(fiber.Map{
		"cpu":      info,
		"warnings": warnings,
	})
}
