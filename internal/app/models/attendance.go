package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SubjectAttendance is the per-subject counter pair inside an attendance
// record. SubjectCode is unique within the record's list.
type SubjectAttendance struct {
	SubjectCode string `bson:"subjectCode" json:"subjectCode"`
	Total       int    `bson:"total" json:"total"`
	Attended    int    `bson:"attended" json:"attended"`
}

// AttendanceRecord is the single attendance document for one student,
// created lazily on the first counter update.
type AttendanceRecord struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	ScholarID string              `bson:"scholarId" json:"scholarId"`
	Subjects  []SubjectAttendance `bson:"attendance" json:"attendance"`
}

// Upsert appends a new subject entry or overwrites the counters of an
// existing one. Entry order is preserved and a subject code is never
// duplicated, so repeated identical updates converge.
func (r *AttendanceRecord) Upsert(subjectCode string, total, attended int) {
	for i := range r.Subjects {
		if r.Subjects[i].SubjectCode == subjectCode {
			r.Subjects[i].Total = total
			r.Subjects[i].Attended = attended
			return
		}
	}
	r.Subjects = append(r.Subjects, SubjectAttendance{
		SubjectCode: subjectCode,
		Total:       total,
		Attended:    attended,
	})
}
