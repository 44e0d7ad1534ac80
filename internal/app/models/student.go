package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/uninits/backend/internal/pkg/scholarid"
)

// DefaultProfileImage is the sentinel filename used until a student uploads
// a photo, and the value poisoned filenames are healed back to.
const DefaultProfileImage = "default.png"

// Student is one document in the students collection.
//
// ScholarID is deliberately untyped: legacy documents were seeded with the
// ID stored as a BSON number while registration writes it as a string, and
// both representations must keep matching the same logical student. New
// writes always use the canonical string form.
//
// The GPA fields are pointers so a semester that was computed as 0.0 stays
// distinguishable from one that has not been computed at all.
type Student struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ScholarID    interface{}        `bson:"scholarId" json:"scholarId"`
	Email        string             `bson:"email,omitempty" json:"email"`
	UserName     string             `bson:"userName,omitempty" json:"userName"`
	Name         string             `bson:"name,omitempty" json:"name"`
	ProfileImage string             `bson:"profileImage,omitempty" json:"profileImage"`
	CGPA         *float64           `bson:"cgpa,omitempty" json:"cgpa,omitempty"`
	SGPACurr     *float64           `bson:"sgpa_curr,omitempty" json:"sgpa_curr,omitempty"`
	SGPAPrev     *float64           `bson:"sgpa_prev,omitempty" json:"sgpa_prev,omitempty"`
}

// ScholarIDString returns the canonical string form of the stored scholar
// ID regardless of how the document persisted it.
func (s *Student) ScholarIDString() string {
	return scholarid.Normalize(s.ScholarID)
}

// Registered reports whether the student completed registration. Existence
// without an email is a pre-seeded, incomplete account.
func (s *Student) Registered() bool {
	return s.Email != ""
}

// DisplayName returns the student's name, falling back to the username the
// way the login payload always has.
func (s *Student) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.UserName
}
