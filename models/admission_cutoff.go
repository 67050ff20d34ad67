package models

// AdmissionCutoff represents the admission_cutoffs table: the lowest admitted
// score and the number of admitted students of one program in a prior year.
type AdmissionCutoff struct {
	Institution   string `db:"institution" json:"institution"`
	ProgramGroup  string `db:"program_group" json:"program_group"`
	ProgramName   string `db:"program_name" json:"program_name"`
	PriorYear     int    `db:"prior_year" json:"prior_year"`
	MinScore      int    `db:"min_score" json:"min_score"`
	SeatsAdmitted int    `db:"seats_admitted" json:"seats_admitted"`
}
