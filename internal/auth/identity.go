package auth

// Identity is produced once by the authentication middleware and passed
// explicitly into handlers and usecases.
type Identity struct {
	UserID    uint
	Role      string
	SessionID string
}

func (id Identity) IsShopOwner() bool {
	return id.Role == "shopOwner"
}
