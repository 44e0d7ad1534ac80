package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Course is a single entry in a catalog's ordered course list.
type Course struct {
	Code    string `bson:"code" json:"code"`
	Name    string `bson:"name" json:"name"`
	Credits int    `bson:"credits" json:"credits"`
}

// CourseCatalog holds the course list for one (branchCode, semester) pair.
// Catalogs are loaded by the administrative seed and are read-only at
// runtime.
type CourseCatalog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BranchCode  int                `bson:"branchCode" json:"branchCode"`
	BranchShort string             `bson:"branchShort" json:"branchShort"`
	Semester    int                `bson:"semester" json:"semester"`
	Courses     []Course           `bson:"courses" json:"courses"`
}
