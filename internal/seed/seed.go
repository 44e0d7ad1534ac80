package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/uninits/backend/internal/app/models"
	"github.com/uninits/backend/internal/app/repositories"
)

// CreateDefaultData loads the course catalog if it is not present yet. The
// upsert is keyed by (branchCode, semester), so re-running on every startup
// is safe.
func CreateDefaultData(ctx context.Context, courseRepo *repositories.CourseRepository, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default course catalog...")

	var finalErr error
	for _, catalog := range CourseCatalogs() {
		c := catalog
		if err := courseRepo.Upsert(ctx, &c); err != nil {
			lgr.Error().Err(err).Int("branchCode", c.BranchCode).Int("semester", c.Semester).Msg("Error seeding course catalog")
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}

// CourseCatalogs returns the administratively maintained catalog entries.
// Only ECE is loaded so far; other branches are added as their curricula
// are transcribed.
func CourseCatalogs() []models.CourseCatalog {
	return []models.CourseCatalog{
		{
			BranchCode:  4,
			BranchShort: "ECE",
			Semester:    4,
			Courses: []models.Course{
				{Code: "EC-204", Name: "Digital Electronic Circuits", Credits: 3},
				{Code: "EC-205", Name: "Analog Communication", Credits: 4},
				{Code: "EC-206", Name: "Control Systems", Credits: 4},
				{Code: "EC-207", Name: "Probability and Random Process", Credits: 4},
				{Code: "EC-208", Name: "Electrical & Electronic Materials", Credits: 3},
				{Code: "EC-209", Name: "Electromagnetic Fields & Wave Propagation", Credits: 4},
				{Code: "EC-212", Name: "Digital Electronics Laboratory", Credits: 2},
				{Code: "EC-213", Name: "Control Laboratory", Credits: 2},
				{Code: "EC-214", Name: "Analog Communication Laboratory", Credits: 2},
			},
		},
		{
			BranchCode:  4,
			BranchShort: "ECE",
			Semester:    5,
			Courses: []models.Course{
				{Code: "EC-301", Name: "Digital Communication", Credits: 4},
				{Code: "EC-302", Name: "Microprocessors & Microcontrollers", Credits: 3},
				{Code: "EC-303", Name: "Analog Integrated Circuits & Technology", Credits: 4},
				{Code: "EC-304", Name: "Digital Signal Processing", Credits: 4},
				{Code: "EC-305", Name: "Electronic Measurements and Instrumentation", Credits: 3},
				{Code: "EC-306", Name: "Principles of Opto-Electronics and Fibre optics", Credits: 3},
				{Code: "EC-311", Name: "Microprocessor Laboratory", Credits: 2},
				{Code: "EC-312", Name: "Digital Signal Processing Laboratory", Credits: 2},
				{Code: "EC-313", Name: "Digital Communication Laboratory", Credits: 2},
			},
		},
		{
			BranchCode:  4,
			BranchShort: "ECE",
			Semester:    6,
			Courses: []models.Course{
				{Code: "EC-307", Name: "RF and Microwave Engineering", Credits: 4},
				{Code: "EC-308", Name: "Data Communication and Network", Credits: 4},
				{Code: "EC-309", Name: "VLSI Design", Credits: 4},
				{Code: "EC-310", Name: "Power Electronics", Credits: 4},
				{Code: "EC-33X", Name: "Professional Core Elective I", Credits: 3},
				{Code: "EC-38X", Name: "Open Elective I", Credits: 3},
				{Code: "EC-314", Name: "Design Laboratory", Credits: 2},
				{Code: "EC-315", Name: "Data & Optical Communication Laboratory", Credits: 2},
				{Code: "EC-316", Name: "VLSI Design Laboratory", Credits: 2},
			},
		},
		{
			BranchCode:  4,
			BranchShort: "ECE",
			Semester:    7,
			Courses: []models.Course{
				{Code: "EC-401", Name: "Wireless Communication", Credits: 3},
				{Code: "EC-43X", Name: "Professional Core Elective II", Credits: 3},
				{Code: "EC-48X", Name: "Open Elective II", Credits: 3},
				{Code: "MS-401", Name: "Business Management", Credits: 3},
				{Code: "EC-498", Name: "Project I", Credits: 6},
			},
		},
		{
			BranchCode:  4,
			BranchShort: "ECE",
			Semester:    8,
			Courses: []models.Course{
				{Code: "HS-401", Name: "Managerial Economics", Credits: 3},
				{Code: "EC-45X", Name: "Professional Core Elective III", Credits: 3},
				{Code: "EC-49X", Name: "Open Elective III", Credits: 3},
				{Code: "EC-499", Name: "Project II", Credits: 6},
			},
		},
	}
}
