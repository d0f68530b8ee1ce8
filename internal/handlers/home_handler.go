package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the role-gated liveness probes.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler { return &HomeHandler{} }

// @Summary      User home probe
// @Tags         Home
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /user/home [get]
func (h *HomeHandler) UserHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome, user."})
}

// @Summary      Admin home probe
// @Tags         Home
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /admin/home [get]
func (h *HomeHandler) AdminHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome, admin."})
}
