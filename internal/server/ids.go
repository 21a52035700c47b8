package server

import "github.com/google/uuid"

func RandId(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
