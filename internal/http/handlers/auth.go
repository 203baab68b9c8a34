package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"student_dashboard/internal/http/middleware"
	"student_dashboard/internal/logger"
	"student_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleLogin redirects the browser into the Google consent flow.
func (h *Handler) GoogleLogin(c *gin.Context) {
	if h.OAuth.ClientID == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "google sign-in not configured"})
		return
	}
	c.Redirect(http.StatusFound, h.OAuth.AuthCodeURL(c.Query("state")))
}

// GoogleCallback exchanges the auth code, reads the user's profile and hands
// the frontend a signed session token via redirect. The Google access token
// travels inside the session; nothing is stored server-side.
func (h *Handler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}

	ctx := c.Request.Context()
	tok, err := h.OAuth.Exchange(ctx, code)
	if err != nil {
		logger.Warn("oauth exchange failed", "err", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "code exchange failed"})
		return
	}

	resp, err := h.OAuth.Client(ctx, tok).Get(userinfoURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "userinfo fetch failed"})
		return
	}
	defer resp.Body.Close()

	var profile struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil || profile.Email == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "invalid userinfo response"})
		return
	}

	token, err := service.GenerateSession(service.Session{
		Email:       profile.Email,
		Name:        profile.Name,
		Picture:     profile.Picture,
		GoogleToken: tok.AccessToken,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	q := url.Values{"token": {token}}
	c.Redirect(http.StatusFound, h.FrontURL+"/auth/callback?"+q.Encode())
}

// Me returns the identity baked into the session token.
func (h *Handler) Me(c *gin.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"email":            sess.Email,
		"name":             sess.Name,
		"picture":          sess.Picture,
		"classroom_linked": sess.GoogleToken != "",
	})
}
