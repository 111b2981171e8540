package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/circuitshelf/componentstore-api/models"
)

const (
	userKey = "user"
	cartKey = "cart"
)

func init() {
	// The cart is stored as a typed value in the cookie store.
	gob.Register(models.Cart{})
}

// CurrentUser returns the logged-in username, if any.
func CurrentUser(c *gin.Context) (string, bool) {
	username, ok := sessions.Default(c).Get(userKey).(string)
	return username, ok && username != ""
}

func SetUser(c *gin.Context, username string) error {
	s := sessions.Default(c)
	s.Set(userKey, username)
	return s.Save()
}

func ClearUser(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(userKey)
	return s.Save()
}

// Cart loads the session cart, or an empty one for a fresh session.
func Cart(c *gin.Context) models.Cart {
	if cart, ok := sessions.Default(c).Get(cartKey).(models.Cart); ok {
		return cart
	}
	return models.NewCart()
}

func SaveCart(c *gin.Context, cart models.Cart) error {
	s := sessions.Default(c)
	s.Set(cartKey, cart)
	return s.Save()
}
