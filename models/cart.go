package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Cart is the per-session shopping cart, keyed by the composite cart key.
// It travels in the session cookie: handlers load it, mutate their copy and
// save it back, so there is no shared cart state between sessions.
type Cart map[string]CartItem

// CartItem holds the quantity plus the name, image and unit price captured
// when the line was added. The price is a snapshot: catalog changes after
// add time never affect an existing line.
type CartItem struct {
	Quantity int
	Name     string
	Image    string
	Price    float64
}

// CartLine is a display row produced by Lines.
type CartLine struct {
	CartKey   string  `json:"cart_key"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"qty"`
	Subtotal  float64 `json:"subtotal"`
}

func NewCart() Cart { return Cart{} }

// CartKey builds the composite line key. The image is part of the key so the
// same product with a different selected image tracks as a separate line.
func CartKey(productID uint, image string) string {
	return fmt.Sprintf("%d_%s", productID, image)
}

func cartKeyProductID(key string) uint {
	id, _ := strconv.ParseUint(strings.SplitN(key, "_", 2)[0], 10, 64)
	return uint(id)
}

// Add inserts a new line with quantity 1, or bumps the quantity when the
// same (product, image) pair is already in the cart. Returns the line key.
func (c Cart) Add(productID uint, name, image string, price float64) string {
	key := CartKey(productID, image)
	if item, ok := c[key]; ok {
		item.Quantity++
		c[key] = item
		return key
	}
	c[key] = CartItem{Quantity: 1, Name: name, Image: image, Price: price}
	return key
}

// Increase bumps a line's quantity. Reports false when the key is absent.
func (c Cart) Increase(key string) bool {
	item, ok := c[key]
	if !ok {
		return false
	}
	item.Quantity++
	c[key] = item
	return true
}

// Decrease lowers a line's quantity, deleting the line at quantity 1 so no
// zero or negative quantities ever persist. Reports false when the key is
// absent.
func (c Cart) Decrease(key string) bool {
	item, ok := c[key]
	if !ok {
		return false
	}
	if item.Quantity > 1 {
		item.Quantity--
		c[key] = item
	} else {
		delete(c, key)
	}
	return true
}

// Remove deletes a line. Reports false when the key is absent.
func (c Cart) Remove(key string) bool {
	if _, ok := c[key]; !ok {
		return false
	}
	delete(c, key)
	return true
}

func (c Cart) Clear() {
	for key := range c {
		delete(c, key)
	}
}

func (c Cart) Empty() bool { return len(c) == 0 }

// Lines flattens the cart for display, with subtotal = price * quantity per
// line and the grand total. Keys sort lexically so the listing is stable.
func (c Cart) Lines() ([]CartLine, float64) {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]CartLine, 0, len(keys))
	var total float64
	for _, key := range keys {
		item := c[key]
		subtotal := item.Price * float64(item.Quantity)
		total += subtotal
		lines = append(lines, CartLine{
			CartKey:   key,
			ProductID: cartKeyProductID(key),
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
	}
	return lines, total
}
