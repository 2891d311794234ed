package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie carries the id of the browser's form session.
const SessionCookie = "address_form_session"

// session returns the caller's form session id, issuing a new one when the
// cookie is missing or malformed.
func session(c *gin.Context) string {
	if v, err := c.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(v); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, 0, "/", "", c.Request.TLS != nil, true)
	return id
}
