package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecomauth/internal/services"
)

type MailHandler struct {
	userService services.UserService
}

func NewMailHandler(userService services.UserService) *MailHandler {
	return &MailHandler{userService: userService}
}

// @Summary      Confirm an account
// @Description  Exchanges a verification token for account activation
// @Tags         Mail
// @Produce      plain
// @Param        token  query     string  true  "Verification token"
// @Success      200    {string}  string
// @Failure      400    {string}  string
// @Failure      410    {string}  string
// @Router       /mail/confirm [get]
func (h *MailHandler) Confirm(c *gin.Context) {
	token := c.Query("token")

	outcome, err := h.userService.Confirm(c.Request.Context(), token)
	if err != nil {
		log.Printf("[auth][confirm] failed: err=%v", err)
		c.String(http.StatusInternalServerError, "Confirmation failed. Please try again later.")
		return
	}

	switch outcome {
	case services.ConfirmActivated:
		c.String(http.StatusOK, "Tài khoản của bạn đã được kích hoạt.")
	case services.ConfirmTokenExpired:
		c.String(http.StatusGone, "The verification link has expired. Please request a new one.")
	default:
		c.String(http.StatusBadRequest, "Invalid verification link.")
	}
}
