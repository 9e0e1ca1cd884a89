package handlers

import (
	"log/slog"
	"time"

	"vinylstore/internal/config"
	"vinylstore/internal/middleware"
	"vinylstore/internal/services"
	"vinylstore/pkg/googleauth"

	"github.com/gofiber/fiber/v2"
)

// stateCookie carries the OAuth state nonce between the redirect and the
// callback.
const stateCookie = "oauth_state"

// AuthHandler handles the Google OAuth login flow and logout.
type AuthHandler struct {
	authService *services.AuthService
	oauthClient *googleauth.Client
	cfg         *config.Config
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, oauthClient *googleauth.Client, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		oauthClient: oauthClient,
		cfg:         cfg,
		logger:      logger,
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Get("/google", h.HandleGoogleLogin)
	authRoutes.Get("/google/callback", h.HandleGoogleCallback)
	authRoutes.Get("/logout", h.HandleLogout)
}

// HandleGoogleLogin redirects the browser to the Google consent page with a
// fresh state nonce bound to this browser via a short-lived cookie.
func (h *AuthHandler) HandleGoogleLogin(c *fiber.Ctx) error {
	state, err := googleauth.GenerateState()
	if err != nil {
		h.logger.Error("failed to generate OAuth state", "error", err)
		return fail(c, fiber.StatusInternalServerError, "Failed to start login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(10 * time.Minute),
	})

	return c.Redirect(h.oauthClient.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// HandleGoogleCallback completes the OAuth flow: it verifies the state,
// exchanges the code, fetches the Google profile, signs the user in, and
// sets the session cookie.
func (h *AuthHandler) HandleGoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(stateCookie) {
		h.logger.Warn("OAuth callback with mismatched state")
		return fail(c, fiber.StatusUnauthorized, "Invalid OAuth state")
	}
	h.clearCookie(c, stateCookie)

	code := c.Query("code")
	if code == "" {
		return fail(c, fiber.StatusUnauthorized, "Missing authorization code")
	}

	oauthToken, err := h.oauthClient.Exchange(c.Context(), code)
	if err != nil {
		h.logger.Error("OAuth code exchange failed", "error", err)
		return fail(c, fiber.StatusInternalServerError, "Failed to authenticate")
	}

	profile, err := h.oauthClient.FetchProfile(c.Context(), oauthToken)
	if err != nil {
		h.logger.Error("failed to fetch Google profile", "error", err)
		return fail(c, fiber.StatusInternalServerError, "Failed to authenticate")
	}

	token, err := h.authService.SignIn(*profile)
	if err != nil {
		h.logger.Error("sign-in failed", "email", profile.Email, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Failed to authenticate")
	}

	h.logger.Info("login successful", "email", profile.Email)
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(h.cfg.TokenTTL),
	})

	return c.Redirect("/api/vinyl/all", fiber.StatusFound)
}

// HandleLogout clears the session cookie. Tokens presented via the bearer
// header stay valid until natural expiry; there is no revocation list.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	h.clearCookie(c, middleware.SessionCookie)
	return success(c, fiber.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}
