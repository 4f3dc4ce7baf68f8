// Package docs registers the OpenAPI description served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/products": {"get": {"tags": ["Products"], "summary": "List products", "produces": ["application/json"], "responses": {"200": {"description": "Catalog"}, "502": {"description": "Commerce backend unreachable"}}}},
        "/products/{id}": {"get": {"tags": ["Products"], "summary": "Get a product", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Product detail"}, "404": {"description": "Product not found"}}}},
        "/products/{id}/reviews": {"post": {"tags": ["Products"], "summary": "Review a product", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Stored review"}, "400": {"description": "Missing or invalid fields"}}}},
        "/cart": {
            "get": {"tags": ["Cart"], "summary": "Get the cart", "responses": {"200": {"description": "Cart summary"}}},
            "delete": {"tags": ["Cart"], "summary": "Clear the cart", "responses": {"200": {"description": "Empty cart"}, "500": {"description": "Storage failure"}}}
        },
        "/cart/persisted": {"get": {"tags": ["Cart"], "summary": "Get the stored cart", "responses": {"200": {"description": "Stored cart entries"}}}},
        "/cart/items": {"post": {"tags": ["Cart"], "summary": "Add a product to the cart", "responses": {"201": {"description": "Cart after the add"}, "400": {"description": "Validation error"}}}},
        "/cart/items/{id}": {"delete": {"tags": ["Cart"], "summary": "Remove a product from the cart", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Cart after the removal"}}}},
        "/cart/items/{id}/increase": {"post": {"tags": ["Cart"], "summary": "Increase a quantity", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Cart after the change"}, "404": {"description": "Item not in cart"}}}},
        "/cart/items/{id}/decrease": {"post": {"tags": ["Cart"], "summary": "Decrease a quantity", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Cart after the change"}, "404": {"description": "Item not in cart"}}}},
        "/wishlist": {
            "get": {"tags": ["Wishlist"], "summary": "Get the wishlist", "responses": {"200": {"description": "Wishlist entries"}}},
            "post": {"tags": ["Wishlist"], "summary": "Add a product to the wishlist", "responses": {"201": {"description": "Wishlist after the add"}, "400": {"description": "Validation error"}}}
        },
        "/wishlist/persisted": {"get": {"tags": ["Wishlist"], "summary": "Get the stored wishlist", "responses": {"200": {"description": "Stored wishlist entries"}}}},
        "/wishlist/items/{id}": {"delete": {"tags": ["Wishlist"], "summary": "Remove a product from the wishlist", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Wishlist after the removal"}}}},
        "/checkout": {"post": {"tags": ["Checkout"], "summary": "Place an order", "responses": {"201": {"description": "Order placed"}, "400": {"description": "Missing fields or empty cart"}, "401": {"description": "No signed-in user"}, "502": {"description": "Commerce backend rejected or unreachable"}}}},
        "/checkout/state": {"get": {"tags": ["Checkout"], "summary": "Get the checkout state", "responses": {"200": {"description": "Current checkout state"}}}},
        "/orders": {"get": {"tags": ["Orders"], "summary": "List the user's orders", "responses": {"200": {"description": "Orders"}, "401": {"description": "No signed-in user"}}}},
        "/session": {
            "get": {"tags": ["Session"], "summary": "Get the session", "responses": {"200": {"description": "Session state"}}},
            "delete": {"tags": ["Session"], "summary": "Sign out", "responses": {"200": {"description": "Signed out"}}}
        },
        "/session/login": {"post": {"tags": ["Session"], "summary": "Sign in", "responses": {"200": {"description": "Signed in"}, "400": {"description": "Missing or malformed fields"}, "502": {"description": "Invalid email or password"}}}},
        "/session/register": {"post": {"tags": ["Session"], "summary": "Create an account", "responses": {"201": {"description": "Registered and signed in"}, "400": {"description": "Missing or malformed fields"}}}},
        "/session/addresses": {"post": {"tags": ["Session"], "summary": "Add a shipping address", "responses": {"201": {"description": "Updated address book"}, "400": {"description": "Empty address"}, "401": {"description": "No signed-in user"}}}},
        "/notifications": {"get": {"tags": ["Notifications"], "summary": "Drain pending notifications", "responses": {"200": {"description": "Pending notifications"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Shopity API",
	Description:      "Local cart, wishlist, checkout and session state over the Shopity commerce backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
