package response

import "github.com/syncbazar/syncbazar-api/internal/domain"

type Login struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
