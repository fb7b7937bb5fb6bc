package handler

import (
    "context"      // provides context with cancellation for DB calls
    "database/sql" // SQL sentinel errors
    "net/http"     // HTTP status codes and primitives
    "strings"      // string manipulation utilities
    "time"         // timeouts for DB calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/wedspace/wedspace-api/internal/config"     // app configuration
    "github.com/wedspace/wedspace-api/internal/repository" // DB repositories
    "github.com/wedspace/wedspace-api/internal/utils"      // helper functions (hashing)
)

// AuthHandler bundles dependencies for the register and login
// endpoints.  No session or token is issued: the client persists the
// returned user id and sends it with later requests.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Whatsapp string `json:"whatsapp"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Whatsapp string `json:"whatsapp"`
}

// Register: create user and return its public record.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Semua field harus diisi"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Whatsapp = strings.TrimSpace(req.Whatsapp)
	if req.Username == "" || req.Password == "" || req.Whatsapp == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Semua field harus diisi"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Password, req.Whatsapp, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrUsernameExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username sudah digunakan"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Registrasi berhasil",
		"user":    userPart{ID: uid, Username: req.Username, Whatsapp: req.Whatsapp},
	})
}

// Login: verify the password against its stored bcrypt hash and return
// the user record.  The same 401 is returned for an unknown username
// and a wrong password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username dan password harus diisi"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username dan password harus diisi"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Username atau password salah"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Username atau password salah"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login berhasil",
		"user":    userPart{ID: u.ID, Username: u.Username, Whatsapp: u.Whatsapp},
	})
}
