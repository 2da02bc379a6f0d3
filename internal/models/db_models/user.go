package db_models

import (
	"github.com/lib/pq"
)

const (
	RoleAdmin     = "admin"
	RoleStudent   = "student"
	RoleClubOwner = "club_owner"
	RoleCoach     = "coach"
)

const (
	BadgeReviewer       = "reviewer"
	BadgeCommenter      = "commenter"
	BadgeActiveMember   = "active_member"
	BadgeTopContributor = "top_contributor"
)

type User struct {
	BaseModel
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Role         string         `gorm:"default:student" json:"role"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	IsClubOwner  bool           `gorm:"default:false" json:"is_club_owner"`
	Badges       pq.StringArray `gorm:"type:text[]" json:"badges"`

	OwnedClubs   []Club        `gorm:"foreignKey:OwnerID" json:"-"`
	Reviews      []Review      `gorm:"foreignKey:UserID" json:"-"`
	Comments     []Comment     `gorm:"foreignKey:UserID" json:"-"`
	Reservations []Reservation `gorm:"foreignKey:UserID" json:"-"`
}

// AddBadge appends a badge once; re-awarding is a no-op.
func (u *User) AddBadge(badge string) {
	if u.HasBadge(badge) {
		return
	}
	u.Badges = append(u.Badges, badge)
}

func (u *User) HasBadge(badge string) bool {
	for _, b := range u.Badges {
		if b == badge {
			return true
		}
	}
	return false
}
