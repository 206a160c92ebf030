package converter

import (
	"promptvault/internal/entity/db"
	"promptvault/internal/entity/dto"
)

// UserToSummary converts a db.User to dto.UserSummary, dropping the password.
func UserToSummary(u *db.User) dto.UserSummary {
	if u == nil {
		return dto.UserSummary{}
	}
	return dto.UserSummary{
		ID:       u.ID,
		Username: u.Username,
	}
}
