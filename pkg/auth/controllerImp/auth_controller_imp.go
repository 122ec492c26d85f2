package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jardin/pkg/apperr"
	"jardin/pkg/auth"
	"jardin/pkg/auth/controller"
	usersvc "jardin/pkg/user/service"
)

type authCtrl struct {
	users  usersvc.UserService
	secret string
}

func New(users usersvc.UserService, secret string) controller.AuthController {
	return &authCtrl{users: users, secret: secret}
}

func (h *authCtrl) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		if apperr.IsValidation(err) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return apperr.Resolve(c, err)
	}
	token, err := auth.IssueToken(h.secret, u)
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": u})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	u, err := h.users.GetUserByID(uid)
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
