package ports

import "context"

// FavoritesAPI — внешний API мутации избранного (PATCH liked-флага).
// token — bearer-токен пользователя, прокидывается как есть.
type FavoritesAPI interface {
	SetLiked(ctx context.Context, userID, vendorID string, liked bool, token string) error
}
