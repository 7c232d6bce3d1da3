package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a team note on an applicant.
// A private comment is visible to its author only.
type Comment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ApplicantID uuid.UUID  `gorm:"type:uuid;not null;index" json:"applicantId"`
	Applicant   *Applicant `gorm:"foreignKey:ApplicantID" json:"-"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"authorId"`
	Author      *User      `gorm:"foreignKey:AuthorID" json:"-"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	IsPrivate   bool       `gorm:"not null;default:false" json:"isPrivate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// RecordID implements integrity.Authored.
func (c Comment) RecordID() uuid.UUID { return c.ID }

// AuthorRef implements integrity.Authored.
func (c Comment) AuthorRef() uuid.UUID { return c.AuthorID }

// AuthorResolved implements integrity.Authored.
func (c Comment) AuthorResolved() bool { return c.Author != nil }

// CommentView is a Comment joined with its author.
type CommentView struct {
	Comment
	Author Author `json:"author"`
}

// View projects c for listings.
func (c Comment) View() CommentView {
	v := CommentView{Comment: c}
	if c.Author != nil {
		v.Author = c.Author.AsAuthor()
	}
	return v
}
