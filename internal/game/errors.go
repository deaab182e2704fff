package game

import "errors"

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientTokens = errors.New("insufficient prestige tokens")
	ErrUnknownUpgrade     = errors.New("unknown upgrade")
	ErrLockedByLevel      = errors.New("locked by level")
	ErrIneligiblePrestige = errors.New("prestige requirements not met")
	ErrNoActiveEvent      = errors.New("no active event")
	ErrBadEventOption     = errors.New("event option out of range")
	ErrNoPathChoice       = errors.New("upgrade has no path choice")
	ErrPathAlreadyChosen  = errors.New("path already chosen")
	ErrAlreadyOwned       = errors.New("already owned")
	ErrUnknownShopItem    = errors.New("unknown shop item")
	ErrAutoPrestigeLocked = errors.New("auto-prestige not purchased")
	ErrCorruptSave        = errors.New("corrupt save document")
)
