package remote

import (
	"context"
	"errors"
	"fmt"
)

// ErrFavoriteUpdate — отказ мутации избранного во внешнем API.
var ErrFavoriteUpdate = errors.New("favorite update failed")

// favoritePatch — тело PATCH-запроса внешнего API избранного.
// Имена полей заданы бэкендом: branchName — это id вендора.
type favoritePatch struct {
	UserID     string `json:"userId"`
	BranchName string `json:"branchName"`
	Liked      bool   `json:"liked"`
	FieldValue string `json:"field_value"`
}

// SetLiked — выставить/снять liked-флаг вендора у пользователя.
// token прокидывается bearer-заголовком как есть.
func (c *Client) SetLiked(ctx context.Context, userID, vendorID string, liked bool, token string) error {
	if c.endpoints.Favorites == "" {
		return fmt.Errorf("%w: no favorites endpoint", ErrFavoriteUpdate)
	}

	body := favoritePatch{
		UserID:     userID,
		BranchName: vendorID,
		Liked:      liked,
		FieldValue: vendorID,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Patch(c.endpoints.Favorites)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFavoriteUpdate, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrFavoriteUpdate, resp.StatusCode())
	}
	return nil
}
