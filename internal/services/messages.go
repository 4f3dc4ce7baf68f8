package service

// User-facing notification texts.
const (
	MsgItemAddedToCart         = "Item added to cart"
	MsgItemAlreadyInCart       = "Item already in cart"
	MsgCartCleared             = "Cart cleared"
	MsgItemAddedToWishlist     = "Item added to wishlist"
	MsgItemAlreadyInWishlist   = "Item already in wishlist"
	MsgItemRemovedFromWishlist = "Item removed from wishlist"
	MsgOrderPlaced             = "Order placed successfully"
	MsgOrderFailed             = "Error while placing order"
	MsgEnterAddress            = "Please enter an address"
	MsgLoggedIn                = "Logged in successfully"
	MsgRegistered              = "Account created successfully"
	MsgLoggedOut               = "Logged out"
	MsgAddressAdded            = "Address added"
)
